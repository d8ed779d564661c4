package models

import "time"

// ItemType discriminates the three bookable offering kinds.
type ItemType string

const (
	ItemClass  ItemType = "class"
	ItemCourse ItemType = "course"
	ItemEvent  ItemType = "event"
)

func (t ItemType) Valid() bool {
	return t == ItemClass || t == ItemCourse || t == ItemEvent
}

// Class is a single-date offering.
type Class struct {
	ID              string    `json:"id"`
	TeacherID       string    `json:"teacherId"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	Location        string    `json:"location,omitempty"`
	Capacity        int       `json:"capacity"`
	BookedCount     int       `json:"bookedCount"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Course is a weekly recurring offering with child sessions.
type Course struct {
	ID            string       `json:"id"`
	TeacherID     string       `json:"teacherId"`
	Title         string       `json:"title"`
	Description   string       `json:"description,omitempty"`
	StartDate     time.Time    `json:"startDate"`
	EndDate       time.Time    `json:"endDate"`
	Weekday       time.Weekday `json:"weekday"`
	TimeOfDay     string       `json:"timeOfDay,omitempty"` // "18:00"
	Capacity      int          `json:"capacity"`
	EnrolledCount int          `json:"enrolledCount"`
	Price         float64      `json:"price"`
	Currency      string       `json:"currency"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// CourseSession is one dated occurrence of a course.
type CourseSession struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	Date      time.Time `json:"date"`
	Cancelled bool      `json:"cancelled"`
	Notes     string    `json:"notes,omitempty"`
}

// Event is a single-date offering with a category tag.
type Event struct {
	ID          string    `json:"id"`
	TeacherID   string    `json:"teacherId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category,omitempty"`
	Location    string    `json:"location,omitempty"`
	Capacity    int       `json:"capacity"`
	BookedCount int       `json:"bookedCount"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AvailableSpots is the one place availability math lives.
// It can go negative: booking creation does not reject full offerings.
func AvailableSpots(capacity, booked int) int {
	return capacity - booked
}
