package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"safaribook/forms"
	"safaribook/gateway"
)

// defaultShowTickets is the seed inventory for a freshly created show.
var defaultShowTickets = []gateway.ShowTicketInput{
	{TicketID: 1, RemainingTickets: 20},
	{TicketID: 2, RemainingTickets: 10},
}

// AdminPage is the panel for elevated roles. Regular users are turned away
// locally; the backend enforces the role again on every call.
func (s *Shell) AdminPage(ctx context.Context) {
	if !s.state.Auth().IsAdmin() {
		fmt.Fprintln(s.out, "Admin access required.")
		return
	}

	for {
		fmt.Fprintln(s.out, "\nAdmin panel:")
		fmt.Fprintln(s.out, "  1. Create user")
		fmt.Fprintln(s.out, "  2. Update user")
		fmt.Fprintln(s.out, "  3. Create show")
		fmt.Fprintln(s.out, "  4. Bookings by email")
		fmt.Fprintln(s.out, "  b. Back")

		line, ok := s.readLine("> ")
		if !ok {
			return
		}

		var err error
		switch strings.TrimSpace(line) {
		case "1":
			form := forms.AdminCreateUserForm{
				Email:    s.readDefault("Email", ""),
				Password: s.readDefault("Password", ""),
				Role:     s.readDefault("Role", "regular_user"),
			}
			err = s.AdminCreateUser(ctx, form)
		case "2":
			form := forms.AdminUpdateUserForm{
				Email:     s.readDefault("Email", ""),
				Role:      s.readDefault("Role (blank keeps current)", ""),
				IsEnabled: strings.TrimSpace(s.readDefault("Enabled (y/n)", "y")) != "n",
			}
			err = s.AdminUpdateUser(ctx, form)
		case "3":
			form := forms.AdminShowForm{
				Name:      s.readDefault("Show name", ""),
				StartTime: s.readDefault("Start (2006-01-02T15:04)", ""),
				EndTime:   s.readDefault("End (2006-01-02T15:04)", ""),
			}
			err = s.AdminCreateShow(ctx, form, nil)
		case "4":
			err = s.AdminLookupBookings(ctx, s.readDefault("User email", ""))
		case "b", "":
			return
		}
		if err != nil {
			fmt.Fprintln(s.out, err.Error())
		}
	}
}

func (s *Shell) AdminCreateUser(ctx context.Context, form forms.AdminCreateUserForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	err := s.withBusy(ctx, "Creating user…", func(ctx context.Context) error {
		_, err := s.api.AdminCreateUser(ctx, s.state.Auth().Token, gateway.AdminCreateUserRequest{
			Email:    form.Email,
			Password: form.Password,
			Role:     form.Role,
		})
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "User created.")
	return nil
}

func (s *Shell) AdminUpdateUser(ctx context.Context, form forms.AdminUpdateUserForm) error {
	if err := form.Validate(); err != nil {
		return err
	}
	err := s.withBusy(ctx, "Updating user…", func(ctx context.Context) error {
		_, err := s.api.AdminUpdateUser(ctx, s.state.Auth().Token, gateway.AdminUpdateUserRequest{
			Email:     form.Email,
			Role:      form.Role,
			IsEnabled: lo.ToPtr(form.IsEnabled),
		})
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "User updated.")
	return nil
}

// AdminCreateShow creates a safari show. A nil tickets slice seeds the
// default inventory.
func (s *Shell) AdminCreateShow(ctx context.Context, form forms.AdminShowForm, tickets []gateway.ShowTicketInput) error {
	if err := form.Validate(); err != nil {
		return err
	}
	if tickets == nil {
		tickets = defaultShowTickets
	}
	var res gateway.CreateShowResponse
	err := s.withBusy(ctx, "Creating show…", func(ctx context.Context) error {
		var err error
		res, err = s.api.AdminCreateShow(ctx, s.state.Auth().Token, gateway.AdminCreateShowRequest{
			Name:      form.Name,
			StartTime: form.StartTime,
			EndTime:   form.EndTime,
			Tickets:   tickets,
		})
		return err
	})
	if err != nil {
		return err
	}
	if res.ShowName != "" {
		fmt.Fprintf(s.out, "Show created: %s\n", res.ShowName)
	} else {
		fmt.Fprintln(s.out, "Show created.")
	}
	return nil
}

func (s *Shell) AdminLookupBookings(ctx context.Context, email string) error {
	var res gateway.ListBookingsResponse
	err := s.withBusy(ctx, "Loading bookings…", func(ctx context.Context) error {
		var err error
		res, err = s.api.AdminBookingsByEmail(ctx, s.state.Auth().Token, email)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d bookings fetched.\n", len(res.Bookings))
	for _, b := range res.Bookings {
		fmt.Fprintf(s.out, "  #%d · ticket %d × %d · %s\n", b.ID, b.ShowTicketID, b.Quantity, b.DisplayStatus())
	}
	return nil
}
