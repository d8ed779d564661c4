package memstore

import (
	"time"

	"github.com/google/uuid"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type paymentRepo struct{ s *Store }

func (r paymentRepo) Create(p models.Payment) (models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.s.payments = append(r.s.payments, p)
	return p, nil
}

func (r paymentRepo) GetByID(id string) (models.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.payments {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Payment{}, domain.NotFoundError{Resource: "payment"}
}

func (r paymentRepo) Update(p models.Payment) (models.Payment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.payments {
		if existing.ID == p.ID {
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = time.Now()
			r.s.payments[i] = p
			return p, nil
		}
	}
	return models.Payment{}, domain.NotFoundError{Resource: "payment"}
}

func (r paymentRepo) List() ([]models.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Payment, len(r.s.payments))
	copy(out, r.s.payments)
	return out, nil
}

type attendanceRepo struct{ s *Store }

func (r attendanceRepo) Create(a models.Attendance) (models.Attendance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}
	r.s.attendance = append(r.s.attendance, a)
	return a, nil
}

func (r attendanceRepo) ListByClass(classID string) ([]models.Attendance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Attendance{}
	for _, a := range r.s.attendance {
		if a.ClassID == classID {
			out = append(out, a)
		}
	}
	return out, nil
}
