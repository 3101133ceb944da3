// Package bookingflow holds the single source of truth for the cross-page
// booking flow: the current selection, the authenticated session, receipts
// and the busy indicator.
package bookingflow

import (
	"errors"
	"sync"

	"safaribook/authevents"
	"safaribook/entity"
)

// State owns the Session and Selection entities. All mutation goes through
// its methods; session and receipt changes are only committed on full
// success of the call that produced them, so every observable state is a
// previously-valid one.
type State struct {
	mu    sync.Mutex
	store SessionStore

	auth          entity.Session
	selection     entity.Selection
	userDetails   entity.UserDetails
	paymentMethod entity.PaymentMethod
	booking       *entity.BookingReceipt
	payment       *entity.PaymentReceipt
	loadingLabel  string
}

func defaultSelection() entity.Selection {
	return entity.Selection{Quantity: 1}
}

// New hydrates the session from the store and subscribes to the unauthorized
// channel for the lifetime of the application session. An absent entry means
// logged out; an unparsable one is discarded so the next startup is clean.
func New(store SessionStore, unauthorized *authevents.Registry) *State {
	s := &State{store: store, selection: defaultSelection()}

	session, err := store.Load()
	switch {
	case err == nil:
		s.auth = session
	case errors.Is(err, ErrNoSession):
	default:
		_ = store.Clear()
	}

	unauthorized.Register(func() {
		_ = s.ClearAuth()
	})

	return s
}

func (s *State) Auth() entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

// SetAuth replaces the session. It is persisted whenever a token is present
// and removed from storage when absent.
func (s *State) SetAuth(session entity.Session) error {
	s.mu.Lock()
	s.auth = session
	s.mu.Unlock()

	if session.Token != "" {
		return s.store.Save(session)
	}
	return s.store.Clear()
}

// ClearAuth empties the session and removes the persisted entry.
func (s *State) ClearAuth() error {
	return s.SetAuth(entity.Session{})
}

// SelectionPatch is a partial update to the selection; nil fields keep their
// previous values.
type SelectionPatch struct {
	ShowID       *int
	ShowTicketID *int
	TicketType   *string
	StartTime    *string
	EndTime      *string
	Price        *float64
	Quantity     *int
}

// applySelection is the one place Total is derived, so the
// total = price x quantity invariant cannot drift between mutators.
func applySelection(prev entity.Selection, patch SelectionPatch) entity.Selection {
	next := prev
	if patch.ShowID != nil {
		next.ShowID = *patch.ShowID
	}
	if patch.ShowTicketID != nil {
		next.ShowTicketID = *patch.ShowTicketID
	}
	if patch.TicketType != nil {
		next.TicketType = *patch.TicketType
	}
	if patch.StartTime != nil {
		next.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		next.EndTime = *patch.EndTime
	}
	if patch.Price != nil {
		next.Price = *patch.Price
	}
	if patch.Quantity != nil {
		next.Quantity = *patch.Quantity
	}
	if next.Quantity < 1 {
		next.Quantity = 1
	}
	next.Total = next.Price * float64(next.Quantity)
	return next
}

func (s *State) Selection() entity.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// UpdateSelection merges the patch into the selection and recomputes the
// total.
func (s *State) UpdateSelection(patch SelectionPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = applySelection(s.selection, patch)
}

// SetQuantity clamps n to at least 1 and recomputes the total from the
// current price.
func (s *State) SetQuantity(n int) {
	s.UpdateSelection(SelectionPatch{Quantity: &n})
}

func (s *State) PaymentMethod() entity.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paymentMethod
}

func (s *State) SetPaymentMethod(method entity.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentMethod = method
}

func (s *State) UserDetails() entity.UserDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userDetails
}

// UserDetailsPatch is a partial update to the contact block.
type UserDetailsPatch struct {
	Name  *string
	Email *string
	Phone *string
}

func (s *State) SetUserDetails(patch UserDetailsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Name != nil {
		s.userDetails.Name = *patch.Name
	}
	if patch.Email != nil {
		s.userDetails.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.userDetails.Phone = *patch.Phone
	}
}

func (s *State) BookingReceipt() (entity.BookingReceipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booking == nil {
		return entity.BookingReceipt{}, false
	}
	return *s.booking, true
}

// SetBookingReceipt writes the receipt issued by booking creation. An empty
// status keeps the prior one.
func (s *State) SetBookingReceipt(bookingID int, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := ""
	if s.booking != nil {
		prev = s.booking.Status
	}
	if status == "" {
		status = prev
	}
	s.booking = &entity.BookingReceipt{BookingID: bookingID, Status: status}
}

func (s *State) PaymentReceipt() (entity.PaymentReceipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payment == nil {
		return entity.PaymentReceipt{}, false
	}
	return *s.payment, true
}

// SetPaymentReceipt writes the payment receipt. Empty status keeps the prior
// one; a non-empty bookingStatus also advances the booking receipt.
func (s *State) SetPaymentReceipt(paymentID int, status, bookingStatus string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := ""
	if s.payment != nil {
		prev = s.payment.Status
	}
	if status == "" {
		status = prev
	}
	s.payment = &entity.PaymentReceipt{PaymentID: paymentID, Status: status}
	if bookingStatus != "" && s.booking != nil {
		s.booking.Status = bookingStatus
	}
}

func (s *State) LoadingLabel() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingLabel
}

// SetLoadingLabel sets the human-readable busy indicator consumed by the
// shell; the empty string clears it.
func (s *State) SetLoadingLabel(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadingLabel = label
}

// ResetBookingFlow restores the selection and receipts to their defaults
// while preserving the contact details and payment method.
func (s *State) ResetBookingFlow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = defaultSelection()
	s.booking = nil
	s.payment = nil
	s.loadingLabel = ""
}
