package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"safaribook/entity"
	"safaribook/format"
)

// PaymentPage runs the two-phase pay flow: initiate, then verify. The
// payment receipt is recorded after initiation so a failed verification
// still leaves a paper trail for support.
func (s *Shell) PaymentPage(ctx context.Context) {
	booking, ok := s.state.BookingReceipt()
	if !ok {
		fmt.Fprintln(s.out, "No booking found. Please complete the summary step before paying.")
		return
	}

	sel := s.state.Selection()
	fmt.Fprintf(s.out, "\nBooking #%d · Total %s\n", booking.BookingID, format.Currency(sel.Total))

	fmt.Fprintln(s.out, "Payment methods:")
	fmt.Fprintln(s.out, "  1. UPI")
	fmt.Fprintln(s.out, "  2. Netbanking")
	fmt.Fprintln(s.out, "  3. Card")

	method := s.state.PaymentMethod()
	choice, _ := s.readLine("Choose method: ")
	switch strings.TrimSpace(choice) {
	case "1":
		method = entity.PaymentUPI
	case "2":
		method = entity.PaymentNetbanking
	case "3":
		method = entity.PaymentCard
	}
	if method == "" {
		fmt.Fprintln(s.out, "Select a payment method.")
		return
	}
	s.state.SetPaymentMethod(method)

	if !s.state.Auth().LoggedIn() {
		fmt.Fprintln(s.out, "Login required before payment.")
		return
	}
	token := s.state.Auth().Token

	err := s.withBusy(ctx, "Processing payment… Please do not refresh.", func(ctx context.Context) error {
		init, err := s.api.InitiatePayment(ctx, token, booking.BookingID, uuid.NewString())
		if err != nil {
			return err
		}
		s.state.SetPaymentReceipt(init.PaymentID, init.Status, "")

		verify, err := s.api.VerifyPayment(ctx, token, init.PaymentID)
		if err != nil {
			return err
		}
		s.state.SetPaymentReceipt(init.PaymentID, verify.Status, entity.BookingPaid)
		return nil
	})
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}

	fmt.Fprintln(s.out, "Payment verified. Your safari is booked!")
	s.HistoryPage(ctx)
}
