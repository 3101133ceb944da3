package entity

// Selection is the in-progress choice of slot, ticket kind and quantity.
// Total is derived from Price and Quantity and is never written directly.
type Selection struct {
	ShowID       int
	ShowTicketID int
	TicketType   string
	StartTime    string
	EndTime      string
	Price        float64
	Quantity     int
	Total        float64
}

func (s Selection) SlotChosen() bool {
	return s.ShowTicketID != 0
}

// UserDetails is the contact block on the booking summary. It survives a
// flow reset so a repeat customer does not re-enter it.
type UserDetails struct {
	Name  string
	Email string
	Phone string
}
