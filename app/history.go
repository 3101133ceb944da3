package app

import (
	"context"
	"fmt"
	"strings"

	"safaribook/entity"
	"safaribook/format"
	"safaribook/gateway"
)

const historyPageSize = 8

// HistoryPage pages through the user's bookings, newest first. A page
// shorter than the limit is the last one, so forward paging stops there.
func (s *Shell) HistoryPage(ctx context.Context) {
	if !s.state.Auth().LoggedIn() {
		fmt.Fprintln(s.out, "Login to view booking history.")
		return
	}

	page := 1
	for {
		bookings, err := s.loadBookings(ctx, historyPageSize, page)
		if err != nil {
			fmt.Fprintln(s.out, err.Error())
			return
		}
		s.renderBookings(bookings, page)

		line, ok := s.readLine("[n]ext, [p]rev, [b]ack: ")
		if !ok {
			return
		}
		switch strings.TrimSpace(line) {
		case "n":
			if len(bookings) >= historyPageSize {
				page++
			}
		case "p":
			if page > 1 {
				page--
			}
		case "b", "":
			return
		}
	}
}

// ShowHistory fetches and prints one page of bookings. It backs the one-shot
// history command.
func (s *Shell) ShowHistory(ctx context.Context, limit, page int) error {
	bookings, err := s.loadBookings(ctx, limit, page)
	if err != nil {
		return err
	}
	s.renderBookings(bookings, page)
	return nil
}

func (s *Shell) loadBookings(ctx context.Context, limit, page int) ([]entity.BookingRecord, error) {
	if !s.state.Auth().LoggedIn() {
		return nil, fmt.Errorf("login to view booking history")
	}

	var bookings []entity.BookingRecord
	err := s.withBusy(ctx, "Loading your bookings…", func(ctx context.Context) error {
		res, err := s.api.ListBookings(ctx, s.state.Auth().Token, gateway.ListBookingsParams{
			Limit: limit,
			Page:  page,
		})
		if err != nil {
			return err
		}
		bookings = res.Bookings
		return nil
	})
	return bookings, err
}

func (s *Shell) renderBookings(bookings []entity.BookingRecord, page int) {
	if len(bookings) == 0 {
		fmt.Fprintln(s.out, "No bookings found yet.")
		return
	}

	fmt.Fprintf(s.out, "\nYour bookings (page %d):\n", page)
	for _, b := range bookings {
		fmt.Fprintf(s.out, "  #%d · ticket %d × %d · %s · %s\n",
			b.ID, b.ShowTicketID, b.Quantity, b.DisplayStatus(), format.DayBadge(b.CreatedAt))
	}
}
