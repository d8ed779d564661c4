package services

import (
	"time"

	"yogabook/internal/authz"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/store"
	"yogabook/pkg/logger"
)

// AttendanceService records who actually showed up to a class session.
// Teacher-only on both sides.
type AttendanceService struct {
	Store     store.Store
	RequestID string
}

func (s AttendanceService) Record(actor domain.Actor, a models.Attendance) (models.Attendance, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Attendance{}, err
	}
	if a.BookingID == "" {
		return models.Attendance{}, domain.ValidationError{Msg: "bookingId is required"}
	}
	if a.ClassID == "" {
		return models.Attendance{}, domain.ValidationError{Msg: "classId is required"}
	}
	booking, err := s.Store.Bookings().GetByID(a.BookingID)
	if err != nil {
		return models.Attendance{}, err
	}
	if a.StudentID == "" {
		a.StudentID = booking.StudentID
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	created, err := s.Store.Attendance().Create(a)
	if err != nil {
		return models.Attendance{}, err
	}
	logger.Event(s.RequestID, "attendance", "recorded", created.ID)
	return created, nil
}

func (s AttendanceService) ListForClass(actor domain.Actor, classID string) ([]models.Attendance, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return nil, err
	}
	if _, err := s.Store.Classes().GetByID(classID); err != nil {
		return nil, err
	}
	return s.Store.Attendance().ListByClass(classID)
}
