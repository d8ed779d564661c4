// Package memstore is the in-memory store, one mutex-guarded type over
// plain slices. Lookups stay linear scans; data volumes are
// fixture-sized. Nothing survives a restart.
package memstore

import (
	"sync"

	"yogabook/internal/domain/models"
	"yogabook/internal/store"
)

type Store struct {
	mu         sync.RWMutex
	users      []models.User
	classes    []models.Class
	courses    []models.Course
	sessions   []models.CourseSession
	events     []models.Event
	bookings   []models.Booking
	payments   []models.Payment
	attendance []models.Attendance
}

func New() *Store {
	return &Store{}
}

func (s *Store) Users() store.UserRepo            { return userRepo{s} }
func (s *Store) Classes() store.ClassRepo         { return classRepo{s} }
func (s *Store) Courses() store.CourseRepo        { return courseRepo{s} }
func (s *Store) Events() store.EventRepo          { return eventRepo{s} }
func (s *Store) Bookings() store.BookingRepo      { return bookingRepo{s} }
func (s *Store) Payments() store.PaymentRepo      { return paymentRepo{s} }
func (s *Store) Attendance() store.AttendanceRepo { return attendanceRepo{s} }

var _ store.Store = (*Store)(nil)
