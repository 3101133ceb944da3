package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"safaribook/bookingflow"
	"safaribook/format"
	"safaribook/forms"
	"safaribook/gateway"
)

// SummaryPage reviews the selection, collects contact details and creates
// the booking. The booking receipt is only written on full success.
func (s *Shell) SummaryPage(ctx context.Context) {
	sel := s.state.Selection()
	if !sel.SlotChosen() {
		fmt.Fprintln(s.out, "No selection found. Please pick a safari and ticket on the booking page.")
		return
	}

	// blank contact fields are seeded from the signed-in user
	auth := s.state.Auth()
	details := s.state.UserDetails()
	if auth.User != nil {
		if auth.User.Name != "" && details.Name == "" {
			s.state.SetUserDetails(bookingflow.UserDetailsPatch{Name: lo.ToPtr(auth.User.Name)})
		}
		if auth.User.Email != "" && details.Email == "" {
			s.state.SetUserDetails(bookingflow.UserDetailsPatch{Email: lo.ToPtr(auth.User.Email)})
		}
		details = s.state.UserDetails()
	}

	fmt.Fprintf(s.out, "\n%s · %d × %s · %s\nTotal %s\n",
		strings.ReplaceAll(sel.TicketType, "_", " "),
		sel.Quantity,
		format.Currency(sel.Price),
		format.Range(sel.StartTime, sel.EndTime),
		format.Currency(sel.Total),
	)

	name := s.readDefault("Full name", details.Name)
	email := s.readDefault("Email", details.Email)
	phone := s.readDefault("Phone", details.Phone)
	s.state.SetUserDetails(bookingflow.UserDetailsPatch{
		Name:  lo.ToPtr(name),
		Email: lo.ToPtr(email),
		Phone: lo.ToPtr(phone),
	})

	form := forms.ContactForm{Name: name, Email: email, Phone: phone}
	if err := form.Validate(); err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}

	if !s.state.Auth().LoggedIn() {
		fmt.Fprintln(s.out, "Login is required to create a booking.")
		s.AuthPage(ctx)
		if !s.state.Auth().LoggedIn() {
			return
		}
	}

	sel = s.state.Selection()
	var res gateway.CreateBookingResponse
	err := s.withBusy(ctx, "Reserving your seats…", func(ctx context.Context) error {
		var err error
		res, err = s.api.CreateBooking(ctx, s.state.Auth().Token, gateway.CreateBookingRequest{
			ShowTicketID: sel.ShowTicketID,
			Quantity:     sel.Quantity,
		}, uuid.NewString())
		return err
	})
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}

	s.state.SetBookingReceipt(res.BookingID, res.Status)
	fmt.Fprintln(s.out, "Booking created. Proceed to payment.")
	s.PaymentPage(ctx)
}
