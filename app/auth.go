package app

import (
	"context"
	"fmt"
	"strings"

	"safaribook/forms"
	"safaribook/gateway"
)

// AuthPage prompts for credentials and signs the user in, optionally
// registering first.
func (s *Shell) AuthPage(ctx context.Context) {
	mode := forms.ModeLogin
	choice, ok := s.readLine("[l]ogin or [r]egister: ")
	if !ok {
		return
	}
	if strings.TrimSpace(choice) == "r" {
		mode = forms.ModeRegister
	}

	form := forms.AuthForm{Mode: mode}
	if mode == forms.ModeRegister {
		form.Name = s.readDefault("Full name", "")
	}
	form.Email = s.readDefault("Email", "")
	form.Password = s.readDefault("Password", "")

	if err := s.SignIn(ctx, form); err != nil {
		fmt.Fprintln(s.out, err.Error())
	}
}

// SignIn registers the account when the form asks for it, then logs in and
// commits the resulting session. Nothing is persisted on failure.
func (s *Shell) SignIn(ctx context.Context, form forms.AuthForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	return s.withBusy(ctx, "Authorizing...", func(ctx context.Context) error {
		if form.Mode == forms.ModeRegister {
			_, err := s.api.Register(ctx, gateway.RegisterRequest{
				Name:     form.Name,
				Email:    form.Email,
				Password: form.Password,
			})
			if err != nil {
				return err
			}
		}

		login, err := s.api.Login(ctx, gateway.LoginRequest{
			Email:    form.Email,
			Password: form.Password,
		})
		if err != nil {
			return err
		}
		if err := s.state.SetAuth(login.Session()); err != nil {
			s.log.WithError(err).Warn("could not persist session")
		}

		if form.Mode == forms.ModeRegister {
			fmt.Fprintln(s.out, "Registered and signed in.")
		} else {
			fmt.Fprintln(s.out, "Signed in.")
		}
		return nil
	})
}
