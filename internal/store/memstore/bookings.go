package memstore

import (
	"time"

	"github.com/google/uuid"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type bookingRepo struct{ s *Store }

func (r bookingRepo) Create(b models.Booking) (models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	r.s.bookings = append(r.s.bookings, b)
	return b, nil
}

func (r bookingRepo) GetByID(id string) (models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, b := range r.s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (r bookingRepo) Update(id string, patch models.BookingUpdate) (models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, b := range r.s.bookings {
		if b.ID != id {
			continue
		}
		updated := patch.Apply(b)
		updated.UpdatedAt = time.Now()
		r.s.bookings[i] = updated
		return updated, nil
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

func (r bookingRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, b := range r.s.bookings {
		if b.ID == id {
			r.s.bookings = append(r.s.bookings[:i], r.s.bookings[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "booking"}
}

func (r bookingRepo) List() ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Booking, len(r.s.bookings))
	copy(out, r.s.bookings)
	return out, nil
}

func (r bookingRepo) ListByStudent(studentID string) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Booking{}
	for _, b := range r.s.bookings {
		if b.StudentID == studentID {
			out = append(out, b)
		}
	}
	return out, nil
}
