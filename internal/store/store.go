// Package store defines the repository contracts the services depend on.
// Two implementations exist: memstore (seeded, fixture-sized, the default)
// and sqlstore (MySQL, selected when DB_DSN is configured).
package store

import (
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type UserRepo interface {
	Create(u models.User) (models.User, error)
	GetByID(id string) (models.User, error)
	GetByEmail(email string) (models.User, error)
	Update(id string, patch models.UserUpdate) (models.User, error)
	ListByRole(role domain.Role) ([]models.User, error)
}

type ClassRepo interface {
	Create(c models.Class) (models.Class, error)
	GetByID(id string) (models.Class, error)
	Update(c models.Class) (models.Class, error)
	Delete(id string) error
	List() ([]models.Class, error)
	// AdjustBooked shifts BookedCount by delta. Callers are the booking
	// workflow only; nothing else may touch the counter.
	AdjustBooked(id string, delta int) error
}

type CourseRepo interface {
	Create(c models.Course) (models.Course, error)
	GetByID(id string) (models.Course, error)
	Update(c models.Course) (models.Course, error)
	Delete(id string) error
	List() ([]models.Course, error)
	CreateSession(s models.CourseSession) (models.CourseSession, error)
	ListSessions(courseID string) ([]models.CourseSession, error)
	AdjustEnrolled(id string, delta int) error
}

type EventRepo interface {
	Create(e models.Event) (models.Event, error)
	GetByID(id string) (models.Event, error)
	Update(e models.Event) (models.Event, error)
	Delete(id string) error
	List() ([]models.Event, error)
	AdjustBooked(id string, delta int) error
}

type BookingRepo interface {
	Create(b models.Booking) (models.Booking, error)
	GetByID(id string) (models.Booking, error)
	Update(id string, patch models.BookingUpdate) (models.Booking, error)
	Delete(id string) error
	List() ([]models.Booking, error)
	ListByStudent(studentID string) ([]models.Booking, error)
}

type PaymentRepo interface {
	Create(p models.Payment) (models.Payment, error)
	GetByID(id string) (models.Payment, error)
	Update(p models.Payment) (models.Payment, error)
	List() ([]models.Payment, error)
}

type AttendanceRepo interface {
	Create(a models.Attendance) (models.Attendance, error)
	ListByClass(classID string) ([]models.Attendance, error)
}

// Store aggregates the per-entity repositories.
type Store interface {
	Users() UserRepo
	Classes() ClassRepo
	Courses() CourseRepo
	Events() EventRepo
	Bookings() BookingRepo
	Payments() PaymentRepo
	Attendance() AttendanceRepo
}
