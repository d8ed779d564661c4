package services

import (
	"fmt"

	"yogabook/internal/authz"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/query"
	"yogabook/internal/store"
	"yogabook/pkg/logger"
)

// BookingService runs the booking workflow. Status transitions carry no
// legality guard: Confirm/Cancel/Complete are conveniences over Update,
// and callers can jump between any two states. Creating a booking does
// not reject a full offering and does not touch its counter; the counter
// moves on confirm (+1) and on cancel of a confirmed booking (-1).
type BookingService struct {
	Store     store.Store
	RequestID string
}

func (s BookingService) Create(actor domain.Actor, studentID, itemID string, itemType models.ItemType) (models.Booking, error) {
	if studentID == "" {
		return models.Booking{}, domain.ValidationError{Field: "studentId", Msg: "required"}
	}
	if itemID == "" {
		return models.Booking{}, domain.ValidationError{Field: "itemId", Msg: "required"}
	}
	if !itemType.Valid() {
		return models.Booking{}, domain.ValidationError{Field: "itemType", Msg: "must be class, course or event"}
	}
	if err := authz.CanManageBookingFor(actor, studentID); err != nil {
		return models.Booking{}, err
	}

	student, err := s.Store.Users().GetByID(studentID)
	if err != nil {
		return models.Booking{}, err
	}
	if student.Role != domain.RoleStudent {
		return models.Booking{}, domain.ValidationError{Field: "studentId", Msg: "not a student"}
	}
	if _, err := resolveOffering(s.Store, itemType, itemID); err != nil {
		return models.Booking{}, err
	}

	created, err := s.Store.Bookings().Create(models.Booking{
		StudentID: studentID,
		ItemID:    itemID,
		ItemType:  itemType,
		Status:    models.BookingPending,
	})
	if err != nil {
		return models.Booking{}, err
	}

	logger.Event(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%s student_id=%s item=%s/%s", created.ID, studentID, itemType, itemID))
	return created, nil
}

func (s BookingService) Get(actor domain.Actor, id string) (models.Booking, error) {
	b, err := s.Store.Bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := authz.CanAccessBooking(actor, b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

// List shows students their own bookings; teachers see everything.
func (s BookingService) List(actor domain.Actor, page, pageSize int) (query.Page[models.Booking], error) {
	if err := authz.RequireActor(actor); err != nil {
		return query.Page[models.Booking]{}, err
	}

	var (
		bookings []models.Booking
		err      error
	)
	if actor.IsTeacher() {
		bookings, err = s.Store.Bookings().List()
	} else {
		bookings, err = s.Store.Bookings().ListByStudent(actor.UserID)
	}
	if err != nil {
		return query.Page[models.Booking]{}, err
	}
	return query.Paginate(bookings, page, pageSize), nil
}

func (s BookingService) Update(actor domain.Actor, id string, patch models.BookingUpdate) (models.Booking, error) {
	b, err := s.Store.Bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := authz.CanAccessBooking(actor, b); err != nil {
		return models.Booking{}, err
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "unknown status"}
	}
	return s.Store.Bookings().Update(id, patch)
}

func (s BookingService) Delete(actor domain.Actor, id string) error {
	b, err := s.Store.Bookings().GetByID(id)
	if err != nil {
		return err
	}
	if err := authz.CanAccessBooking(actor, b); err != nil {
		return err
	}
	if err := s.Store.Bookings().Delete(id); err != nil {
		return err
	}
	logger.Event(s.RequestID, "booking", "delete", "booking_id="+id)
	return nil
}

func (s BookingService) Confirm(actor domain.Actor, id string) (models.Booking, error) {
	return s.transition(actor, id, models.BookingConfirmed)
}

func (s BookingService) Cancel(actor domain.Actor, id string) (models.Booking, error) {
	return s.transition(actor, id, models.BookingCancelled)
}

func (s BookingService) Complete(actor domain.Actor, id string) (models.Booking, error) {
	return s.transition(actor, id, models.BookingCompleted)
}

func (s BookingService) transition(actor domain.Actor, id string, to models.BookingStatus) (models.Booking, error) {
	b, err := s.Store.Bookings().GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	if err := authz.CanAccessBooking(actor, b); err != nil {
		return models.Booking{}, err
	}

	prev := b.Status
	updated, err := s.Store.Bookings().Update(id, models.BookingUpdate{Status: &to})
	if err != nil {
		return models.Booking{}, err
	}

	switch {
	case to == models.BookingConfirmed && prev != models.BookingConfirmed:
		err = adjustOfferingCounter(s.Store, b.ItemType, b.ItemID, 1)
	case to == models.BookingCancelled && prev == models.BookingConfirmed:
		err = adjustOfferingCounter(s.Store, b.ItemType, b.ItemID, -1)
	}
	if err != nil {
		logger.Event(s.RequestID, "booking", "counter", "adjust warning: "+err.Error())
	}

	logger.Event(s.RequestID, "booking", string(to),
		fmt.Sprintf("booking_id=%s prev=%s", id, prev))
	return updated, nil
}
