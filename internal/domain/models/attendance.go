package models

import "time"

// Attendance is written once after a session has taken place.
type Attendance struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"bookingId"`
	StudentID  string    `json:"studentId"`
	ClassID    string    `json:"classId"`
	Attended   bool      `json:"attended"`
	Notes      string    `json:"notes,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}
