package models

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentOverdue  PaymentStatus = "overdue"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentOverdue, PaymentRefunded:
		return true
	}
	return false
}

// Payment is linked 1:1 to a booking. Nothing enforces that the booking
// points back via PaymentID; fixtures and callers may leave either side
// unset.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"bookingId"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
