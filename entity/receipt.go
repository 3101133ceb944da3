package entity

type PaymentMethod string

const (
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetbanking PaymentMethod = "netbanking"
	PaymentCard       PaymentMethod = "card"
)

// Payment receipt phases. A payment is first initiated, then verified; the
// flow never skips the initiated phase.
const (
	PaymentInitiated = "initiated"
	PaymentVerified  = "verified"
)

const BookingPaid = "paid"

// BookingReceipt is issued by booking creation. The ID is immutable; the
// status is advanced by the payment flow.
type BookingReceipt struct {
	BookingID int
	Status    string
}

// PaymentReceipt is issued by payment initiation and advanced by
// verification.
type PaymentReceipt struct {
	PaymentID int
	Status    string
}
