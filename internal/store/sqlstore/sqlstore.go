// Package sqlstore is the MySQL implementation of the store interfaces,
// the hardened alternative to memstore. Plain database/sql, one table
// per entity, schema managed by goose (internal/db).
package sqlstore

import (
	"database/sql"

	"yogabook/internal/store"
)

type Store struct {
	DB *sql.DB
}

func New(conn *sql.DB) *Store {
	return &Store{DB: conn}
}

func (s *Store) Users() store.UserRepo            { return userRepo{s.DB} }
func (s *Store) Classes() store.ClassRepo         { return classRepo{s.DB} }
func (s *Store) Courses() store.CourseRepo        { return courseRepo{s.DB} }
func (s *Store) Events() store.EventRepo          { return eventRepo{s.DB} }
func (s *Store) Bookings() store.BookingRepo      { return bookingRepo{s.DB} }
func (s *Store) Payments() store.PaymentRepo      { return paymentRepo{s.DB} }
func (s *Store) Attendance() store.AttendanceRepo { return attendanceRepo{s.DB} }

var _ store.Store = (*Store)(nil)

func orEmpty(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
