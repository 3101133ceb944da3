package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"safaribook/bookingflow"
	"safaribook/entity"
	"safaribook/format"
	"safaribook/forms"
	"safaribook/gateway"

	"github.com/samber/lo"
)

// ticketOption is one selectable row on the browse and book pages.
type ticketOption struct {
	show   entity.SafariTiming
	ticket entity.SafariTicket
}

// BrowsePage lists the upcoming safaris and lets the user pick a slot. The
// window defaults to the next seven days; changing any filter re-fetches.
func (s *Shell) BrowsePage(ctx context.Context) {
	start := format.StartOfToday()
	end := format.DaysFrom(start, 7)
	limit, page := 9, 1

	for {
		timings, err := s.loadTimings(ctx, start, end, limit, page)
		options := flattenTickets(timings)
		switch {
		case err != nil:
			fmt.Fprintln(s.out, err.Error())
		case len(timings) == 0:
			fmt.Fprintln(s.out, "No safaris in this window.")
		default:
			s.renderTimings(timings)
		}

		fmt.Fprintln(s.out, "pick <n> · n/p page · s <start> · e <end> · l <limit> · b back")
		line, ok := s.readLine("browse> ")
		if !ok {
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "b", "back":
			return
		case "n", "next":
			if len(timings) >= limit {
				page++
			}
		case "p", "prev":
			if page > 1 {
				page--
			}
		case "s", "e":
			if len(fields) < 2 {
				fmt.Fprintln(s.out, "Give a date like 2025-09-14 or 2025-09-14T06:00.")
				continue
			}
			t, err := ParseWindowInput(fields[1])
			if err != nil {
				fmt.Fprintln(s.out, "Give a date like 2025-09-14 or 2025-09-14T06:00.")
				continue
			}
			if fields[0] == "s" {
				start = t
			} else {
				end = t
			}
			page = 1
		case "l", "limit":
			if len(fields) < 2 {
				continue
			}
			if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
				limit = n
				page = 1
			}
		default:
			idx, err := strconv.Atoi(fields[0])
			if err != nil || idx < 1 || idx > len(options) {
				fmt.Fprintln(s.out, "Unknown choice.")
				continue
			}
			opt := options[idx-1]
			if opt.ticket.SoldOut {
				fmt.Fprintln(s.out, "Sold out.")
				continue
			}
			s.selectTicket(opt.show, opt.ticket, 1)
			fmt.Fprintln(s.out, "Slot selected.")
			s.BookPage(ctx)
			return
		}
	}
}

// BrowseWindow fetches and renders one page of timings. It backs the
// one-shot browse command.
func (s *Shell) BrowseWindow(ctx context.Context, start, end time.Time, limit, page int) error {
	timings, err := s.loadTimings(ctx, start, end, limit, page)
	if err != nil {
		return err
	}
	if len(timings) == 0 {
		fmt.Fprintln(s.out, "No safaris in this window.")
		return nil
	}
	s.renderTimings(timings)
	return nil
}

// loadTimings short-circuits on an invalid window; nothing reaches the
// network until the filter is valid again.
func (s *Shell) loadTimings(ctx context.Context, start, end time.Time, limit, page int) ([]entity.SafariTiming, error) {
	if err := forms.ValidateWindow(start, end); err != nil {
		return nil, err
	}

	var timings []entity.SafariTiming
	err := s.withBusy(ctx, "Loading timings…", func(ctx context.Context) error {
		res, err := s.api.FetchTimings(ctx, gateway.TimingsParams{
			Start: start,
			End:   end,
			Limit: limit,
			Page:  page,
		})
		if err != nil {
			return err
		}
		timings = res.Results
		return nil
	})
	return timings, err
}

func (s *Shell) renderTimings(timings []entity.SafariTiming) {
	idx := 0
	for _, show := range timings {
		fmt.Fprintf(s.out, "\nSafari %s · %s to %s\n",
			format.DayBadge(show.StartTime), format.TimeOnly(show.StartTime), format.TimeOnly(show.EndTime))
		for _, ticket := range show.Tickets {
			idx++
			label := lo.Ternary(ticket.SoldOut, "sold out", fmt.Sprintf("%d left", ticket.RemainingTickets))
			fmt.Fprintf(s.out, "  [%d] %-16s %s · %s\n",
				idx, kindLabel(ticket), format.Currency(float64(ticket.Price)), label)
		}
	}
}

func (s *Shell) selectTicket(show entity.SafariTiming, ticket entity.SafariTicket, quantity int) {
	s.state.UpdateSelection(bookingflow.SelectionPatch{
		ShowID:       lo.ToPtr(show.ShowID),
		ShowTicketID: lo.ToPtr(ticket.ShowTicketID),
		TicketType:   lo.ToPtr(ticket.Kind()),
		StartTime:    lo.ToPtr(show.StartTime),
		EndTime:      lo.ToPtr(show.EndTime),
		Price:        lo.ToPtr(float64(ticket.Price)),
		Quantity:     lo.ToPtr(quantity),
	})
}

func flattenTickets(timings []entity.SafariTiming) []ticketOption {
	var options []ticketOption
	for _, show := range timings {
		for _, ticket := range show.Tickets {
			options = append(options, ticketOption{show: show, ticket: ticket})
		}
	}
	return options
}

func kindLabel(ticket entity.SafariTicket) string {
	return strings.ReplaceAll(ticket.Kind(), "_", " ")
}

// ParseWindowInput accepts the date and date-time shapes the filter inputs
// take, interpreted in local time.
func ParseWindowInput(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return format.ParseWire(value)
}
