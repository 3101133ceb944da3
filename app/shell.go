// Package app is the terminal rendering of the booking site: a shell with a
// page per step of the flow, all sharing the booking-flow state and the API
// client.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"safaribook/authevents"
	"safaribook/bookingflow"
)

const (
	sessionExpiredNotice = "Session expired. Please log in again."
	noticeDuration       = 4500 * time.Millisecond
)

// Shell drives the page flows. It owns the transient session-expired notice
// and renders the busy label around every network call.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	api      API
	state    *bookingflow.State
	log      logrus.FieldLogger
	now      func() time.Time
	stateDir string
	theme    string

	noticeMu    sync.Mutex
	notice      string
	noticeUntil time.Time
}

func NewShell(
	in io.Reader,
	out io.Writer,
	api API,
	state *bookingflow.State,
	unauthorized *authevents.Registry,
	stateDir string,
	log logrus.FieldLogger,
) *Shell {
	s := &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		api:      api,
		state:    state,
		log:      log,
		now:      time.Now,
		stateDir: stateDir,
		theme:    LoadTheme(stateDir),
	}

	unauthorized.Register(func() {
		s.showNotice(sessionExpiredNotice)
	})

	return s
}

// showNotice displays a transient notice; it disappears on its own after
// noticeDuration.
func (s *Shell) showNotice(text string) {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	s.notice = text
	s.noticeUntil = s.now().Add(noticeDuration)
}

func (s *Shell) currentNotice() string {
	s.noticeMu.Lock()
	defer s.noticeMu.Unlock()
	if s.now().Before(s.noticeUntil) {
		return s.notice
	}
	return ""
}

// Run is the interactive menu loop. It returns when the user quits, the
// input ends or the context is canceled.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Bandipur National Park — safari ticketing")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if notice := s.currentNotice(); notice != "" {
			fmt.Fprintf(s.out, "\n!! %s\n", notice)
		}
		s.printMenu()

		line, ok := s.readLine("> ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(line) {
		case "1":
			s.BrowsePage(ctx)
		case "2":
			s.BookPage(ctx)
		case "3":
			s.SummaryPage(ctx)
		case "4":
			s.PaymentPage(ctx)
		case "5":
			s.HistoryPage(ctx)
		case "6":
			s.AdminPage(ctx)
		case "7":
			s.AuthPage(ctx)
		case "8":
			s.Logout()
		case "9":
			s.ToggleTheme()
		case "0", "q", "quit", "exit":
			return nil
		case "":
		default:
			fmt.Fprintln(s.out, "Unknown choice.")
		}
	}
}

func (s *Shell) printMenu() {
	auth := s.state.Auth()
	who := "not signed in"
	if auth.LoggedIn() {
		who = auth.DisplayName()
	}
	fmt.Fprintf(s.out, "\n[%s · %s theme]\n", who, s.theme)
	fmt.Fprintln(s.out, "1 browse  2 book  3 summary  4 payment  5 history")

	admin := ""
	if auth.IsAdmin() {
		admin = "6 admin  "
	}
	fmt.Fprintf(s.out, "%s7 login/register  8 logout  9 theme  0 quit\n", admin)
}

// Logout clears the session; the next protected action will ask for a login
// instead of retrying.
func (s *Shell) Logout() {
	if err := s.state.ClearAuth(); err != nil {
		s.log.WithError(err).Warn("could not remove persisted session")
	}
	fmt.Fprintln(s.out, "Logged out.")
}

// withBusy mirrors the site's blocking overlay: the label stays up for the
// duration of the call and is cleared no matter how the call ends.
func (s *Shell) withBusy(ctx context.Context, label string, fn func(context.Context) error) error {
	s.state.SetLoadingLabel(label)
	fmt.Fprintf(s.out, "... %s\n", label)
	defer s.state.SetLoadingLabel("")
	return fn(ctx)
}

// readLine prompts and reads one input line; ok is false once input ends.
func (s *Shell) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// readDefault reads one line, keeping the current value on empty input.
func (s *Shell) readDefault(label, current string) string {
	prompt := fmt.Sprintf("%s: ", label)
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}
	line, ok := s.readLine(prompt)
	line = strings.TrimSpace(line)
	if !ok || line == "" {
		return current
	}
	return line
}
