package models

import "time"

// BookingStatus values. Transitions are invoked imperatively by callers;
// there is no legality guard (a completed booking can be set back to
// pending), matching the behavior this system replaces.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a student's claim on a seat in an offering.
type Booking struct {
	ID        string        `json:"id"`
	StudentID string        `json:"studentId"`
	ItemID    string        `json:"itemId"`
	ItemType  ItemType      `json:"itemType"`
	Status    BookingStatus `json:"status"`
	PaymentID string        `json:"paymentId,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	Status    *BookingStatus `json:"status"`
	PaymentID *string        `json:"paymentId"`
}

func (p BookingUpdate) Apply(b Booking) Booking {
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.PaymentID != nil {
		b.PaymentID = *p.PaymentID
	}
	return b
}
