package memstore

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type userRepo struct{ s *Store }

func cloneUser(u models.User) models.User {
	u.Specialties = append([]string(nil), u.Specialties...)
	return u
}

func (r userRepo) Create(u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	for _, existing := range r.s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	r.s.users = append(r.s.users, cloneUser(u))
	return cloneUser(u), nil
}

func (r userRepo) GetByID(id string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (r userRepo) GetByEmail(email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (r userRepo) Update(id string, patch models.UserUpdate) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, u := range r.s.users {
		if u.ID != id {
			continue
		}
		updated := patch.Apply(u)
		updated.UpdatedAt = time.Now()
		r.s.users[i] = cloneUser(updated)
		return cloneUser(updated), nil
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (r userRepo) ListByRole(role domain.Role) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if role == "" || u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}
