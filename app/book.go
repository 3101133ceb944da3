package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"safaribook/entity"
	"safaribook/format"
	"safaribook/gateway"
)

// BookPage lets the user change the selected ticket and step the quantity.
// The quantity is capped by the remaining inventory of the selected ticket
// at selection time; availability itself stays the server's call.
func (s *Shell) BookPage(ctx context.Context) {
	start := format.StartOfToday()
	end := format.DaysFrom(start, 7)

	var timings []entity.SafariTiming
	err := s.withBusy(ctx, "Loading availability…", func(ctx context.Context) error {
		res, err := s.api.FetchTimings(ctx, gateway.TimingsParams{Start: start, End: end, Limit: 30})
		if err != nil {
			return err
		}
		timings = res.Results
		return nil
	})
	if err != nil {
		fmt.Fprintln(s.out, err.Error())
		return
	}

	// first open ticket is preselected when nothing is chosen yet
	if !s.state.Selection().SlotChosen() {
		show, found := lo.Find(timings, func(t entity.SafariTiming) bool {
			return lo.SomeBy(t.Tickets, func(tk entity.SafariTicket) bool { return !tk.SoldOut })
		})
		if found {
			ticket, _ := lo.Find(show.Tickets, func(tk entity.SafariTicket) bool { return !tk.SoldOut })
			s.selectTicket(show, ticket, s.state.Selection().Quantity)
		}
	}

	options := flattenTickets(timings)

	for {
		s.renderBookSummary()
		fmt.Fprintln(s.out, "pick <n> · + / - quantity · c continue · b back")
		line, ok := s.readLine("book> ")
		if !ok {
			return
		}

		switch strings.TrimSpace(line) {
		case "b", "back":
			return
		case "+":
			s.stepQuantity(options, +1)
		case "-":
			s.stepQuantity(options, -1)
		case "c", "continue":
			if !s.state.Selection().SlotChosen() {
				fmt.Fprintln(s.out, "Pick a safari slot first.")
				continue
			}
			s.SummaryPage(ctx)
			return
		case "":
		default:
			idx, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || idx < 1 || idx > len(options) {
				s.renderTimings(timings)
				continue
			}
			opt := options[idx-1]
			if opt.ticket.SoldOut {
				fmt.Fprintln(s.out, "Sold out.")
				continue
			}
			s.selectTicket(opt.show, opt.ticket, s.state.Selection().Quantity)
		}
	}
}

// stepQuantity clamps to at least one and at most the remaining tickets of
// the current selection when it is known.
func (s *Shell) stepQuantity(options []ticketOption, delta int) {
	sel := s.state.Selection()
	next := sel.Quantity + delta
	if next < 1 {
		next = 1
	}

	current, found := lo.Find(options, func(o ticketOption) bool {
		return o.ticket.ShowTicketID == sel.ShowTicketID
	})
	if found && next > current.ticket.RemainingTickets {
		next = current.ticket.RemainingTickets
	}
	s.state.SetQuantity(next)
}

func (s *Shell) renderBookSummary() {
	sel := s.state.Selection()
	ticketLabel := "select a type"
	slotLabel := "—"
	if sel.SlotChosen() {
		ticketLabel = strings.ReplaceAll(sel.TicketType, "_", " ")
		slotLabel = format.Range(sel.StartTime, sel.EndTime)
	}
	fmt.Fprintf(s.out, "\nTicket   %s\nSlot     %s\nPrice    %s\nQuantity %d\nTotal    %s\n",
		ticketLabel, slotLabel, format.Currency(sel.Price), sel.Quantity, format.Currency(sel.Total))
}
