package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"safaribook/app"
	"safaribook/authevents"
	"safaribook/bookingflow"
	"safaribook/config"
	"safaribook/format"
	"safaribook/forms"
	"safaribook/gateway"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logrus.WithError(err).Fatal("command failed")
	}
}

// env carries everything a command needs, built once per invocation.
type env struct {
	shell *app.Shell
}

func newApp() *cli.App {
	var e env

	return &cli.App{
		Name:  "safaribook",
		Usage: "book national park safari tickets from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "api-base",
				Usage: "booking backend base URL (overrides PARK_API_BASE)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "logrus level (overrides PARK_LOG_LEVEL)",
			},
		},
		Before: func(c *cli.Context) error {
			shell, err := buildShell(c)
			if err != nil {
				return err
			}
			e.shell = shell
			return nil
		},
		DefaultCommand: "run",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "interactive booking session",
				Action: func(c *cli.Context) error {
					return e.shell.Run(c.Context)
				},
			},
			{
				Name:  "browse",
				Usage: "list safari timings in a window",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "start", Usage: "window start (2006-01-02 or 2006-01-02T15:04)"},
					&cli.StringFlag{Name: "end", Usage: "window end"},
					&cli.IntFlag{Name: "limit", Value: 9},
					&cli.IntFlag{Name: "page", Value: 1},
				},
				Action: func(c *cli.Context) error {
					start := format.StartOfToday()
					end := format.DaysFrom(start, 7)
					var err error
					if raw := c.String("start"); raw != "" {
						if start, err = app.ParseWindowInput(raw); err != nil {
							return fmt.Errorf("invalid start: %w", err)
						}
					}
					if raw := c.String("end"); raw != "" {
						if end, err = app.ParseWindowInput(raw); err != nil {
							return fmt.Errorf("invalid end: %w", err)
						}
					}
					return e.shell.BrowseWindow(c.Context, start, end, c.Int("limit"), c.Int("page"))
				},
			},
			{
				Name:  "register",
				Usage: "create an account and sign in",
				Flags: authFlags(true),
				Action: func(c *cli.Context) error {
					return e.shell.SignIn(c.Context, forms.AuthForm{
						Mode:     forms.ModeRegister,
						Name:     c.String("name"),
						Email:    c.String("email"),
						Password: c.String("password"),
					})
				},
			},
			{
				Name:  "login",
				Usage: "sign in with an existing account",
				Flags: authFlags(false),
				Action: func(c *cli.Context) error {
					return e.shell.SignIn(c.Context, forms.AuthForm{
						Mode:     forms.ModeLogin,
						Email:    c.String("email"),
						Password: c.String("password"),
					})
				},
			},
			{
				Name:  "logout",
				Usage: "remove the persisted session",
				Action: func(c *cli.Context) error {
					e.shell.Logout()
					return nil
				},
			},
			{
				Name:  "history",
				Usage: "list your bookings",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Value: 8},
					&cli.IntFlag{Name: "page", Value: 1},
				},
				Action: func(c *cli.Context) error {
					return e.shell.ShowHistory(c.Context, c.Int("limit"), c.Int("page"))
				},
			},
			{
				Name:  "admin",
				Usage: "park administration",
				Subcommands: []*cli.Command{
					{
						Name: "create-user",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "email", Required: true},
							&cli.StringFlag{Name: "password", Required: true},
							&cli.StringFlag{Name: "role", Value: "regular_user"},
						},
						Action: func(c *cli.Context) error {
							return e.shell.AdminCreateUser(c.Context, forms.AdminCreateUserForm{
								Email:    c.String("email"),
								Password: c.String("password"),
								Role:     c.String("role"),
							})
						},
					},
					{
						Name: "update-user",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "email", Required: true},
							&cli.StringFlag{Name: "role"},
							&cli.BoolFlag{Name: "enabled", Value: true},
						},
						Action: func(c *cli.Context) error {
							return e.shell.AdminUpdateUser(c.Context, forms.AdminUpdateUserForm{
								Email:     c.String("email"),
								Role:      c.String("role"),
								IsEnabled: c.Bool("enabled"),
							})
						},
					},
					{
						Name: "create-show",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "name", Required: true},
							&cli.StringFlag{Name: "start", Required: true},
							&cli.StringFlag{Name: "end", Required: true},
							&cli.StringSliceFlag{
								Name:  "ticket",
								Usage: "ticket inventory as ticketID:count, repeatable",
							},
						},
						Action: func(c *cli.Context) error {
							tickets, err := parseTicketInputs(c.StringSlice("ticket"))
							if err != nil {
								return err
							}
							return e.shell.AdminCreateShow(c.Context, forms.AdminShowForm{
								Name:      c.String("name"),
								StartTime: c.String("start"),
								EndTime:   c.String("end"),
							}, tickets)
						},
					},
					{
						Name: "bookings",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "email", Required: true},
						},
						Action: func(c *cli.Context) error {
							return e.shell.AdminLookupBookings(c.Context, c.String("email"))
						},
					},
				},
			},
		},
	}
}

func authFlags(withName bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{Name: "password", Required: true},
	}
	if withName {
		flags = append([]cli.Flag{&cli.StringFlag{Name: "name", Required: true}}, flags...)
	}
	return flags
}

func buildShell(c *cli.Context) (*app.Shell, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if base := c.String("api-base"); base != "" {
		cfg.APIBase = base
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	unauthorized := authevents.NewRegistry()
	store, err := bookingflow.NewFileSessionStore(cfg.StateDir)
	if err != nil {
		return nil, err
	}
	state := bookingflow.New(store, unauthorized)

	client := gateway.NewClient(cfg.APIBase, cfg.HTTPTimeout, unauthorized, logger)

	return app.NewShell(os.Stdin, os.Stdout, client, state, unauthorized, cfg.StateDir, logger), nil
}

// parseTicketInputs turns repeated "ticketID:count" flags into the create-show
// inventory. An empty list keeps the server-side defaults.
func parseTicketInputs(raw []string) ([]gateway.ShowTicketInput, error) {
	var tickets []gateway.ShowTicketInput
	for _, item := range raw {
		id, count, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid ticket %q, want ticketID:count", item)
		}
		ticketID, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return nil, fmt.Errorf("invalid ticket id in %q", item)
		}
		remaining, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			return nil, fmt.Errorf("invalid ticket count in %q", item)
		}
		tickets = append(tickets, gateway.ShowTicketInput{
			TicketID:         ticketID,
			RemainingTickets: remaining,
		})
	}
	return tickets, nil
}
