package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Rupees tolerates the backend sending prices as numbers, numeric strings or
// null, all of which appear in the wild.
type Rupees float64

func (r *Rupees) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*r = 0
			return nil
		}
		*r = Rupees(v)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*r = Rupees(f)
	return nil
}

type SafariTicket struct {
	ShowTicketID     int    `json:"showTicketId"`
	TicketID         int    `json:"ticketId"`
	TicketKind       string `json:"ticketKind"`
	Price            Rupees `json:"price"`
	RemainingTickets int    `json:"remainingTickets"`
	SoldOut          bool   `json:"soldOut"`
}

// Kind returns the display kind, defaulting the backend's blank kind.
func (t SafariTicket) Kind() string {
	if t.TicketKind == "" {
		return "regular_ticket"
	}
	return t.TicketKind
}

// SafariTiming is a scheduled safari occurrence with its ticket offerings.
// Timings are never cached beyond the current page; every filter change
// re-fetches them.
type SafariTiming struct {
	ShowID    int            `json:"showId"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
	Tickets   []SafariTicket `json:"tickets"`
}

type BookingRecord struct {
	ID           int    `json:"id"`
	ShowTicketID int    `json:"showTicketId"`
	Quantity     int    `json:"quantity"`
	Status       string `json:"status,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

func (b BookingRecord) DisplayStatus() string {
	if b.Status == "" {
		return "pending"
	}
	return b.Status
}
