package memstore

import (
	"time"

	"github.com/google/uuid"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type classRepo struct{ s *Store }

func (r classRepo) Create(c models.Class) (models.Class, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	r.s.classes = append(r.s.classes, c)
	return c, nil
}

func (r classRepo) GetByID(id string) (models.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Class{}, domain.NotFoundError{Resource: "class"}
}

func (r classRepo) Update(c models.Class) (models.Class, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.classes {
		if existing.ID == c.ID {
			c.CreatedAt = existing.CreatedAt
			c.UpdatedAt = time.Now()
			r.s.classes[i] = c
			return c, nil
		}
	}
	return models.Class{}, domain.NotFoundError{Resource: "class"}
}

func (r classRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, c := range r.s.classes {
		if c.ID == id {
			r.s.classes = append(r.s.classes[:i], r.s.classes[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "class"}
}

func (r classRepo) List() ([]models.Class, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Class, len(r.s.classes))
	copy(out, r.s.classes)
	return out, nil
}

func (r classRepo) AdjustBooked(id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.classes {
		if r.s.classes[i].ID == id {
			r.s.classes[i].BookedCount += delta
			r.s.classes[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.NotFoundError{Resource: "class"}
}

type courseRepo struct{ s *Store }

func (r courseRepo) Create(c models.Course) (models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	r.s.courses = append(r.s.courses, c)
	return c, nil
}

func (r courseRepo) GetByID(id string) (models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.courses {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Course{}, domain.NotFoundError{Resource: "course"}
}

func (r courseRepo) Update(c models.Course) (models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.courses {
		if existing.ID == c.ID {
			c.CreatedAt = existing.CreatedAt
			c.UpdatedAt = time.Now()
			r.s.courses[i] = c
			return c, nil
		}
	}
	return models.Course{}, domain.NotFoundError{Resource: "course"}
}

func (r courseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, c := range r.s.courses {
		if c.ID == id {
			r.s.courses = append(r.s.courses[:i], r.s.courses[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "course"}
}

func (r courseRepo) List() ([]models.Course, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Course, len(r.s.courses))
	copy(out, r.s.courses)
	return out, nil
}

func (r courseRepo) CreateSession(sess models.CourseSession) (models.CourseSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	r.s.sessions = append(r.s.sessions, sess)
	return sess, nil
}

func (r courseRepo) ListSessions(courseID string) ([]models.CourseSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.CourseSession{}
	for _, sess := range r.s.sessions {
		if sess.CourseID == courseID {
			out = append(out, sess)
		}
	}
	return out, nil
}

func (r courseRepo) AdjustEnrolled(id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.courses {
		if r.s.courses[i].ID == id {
			r.s.courses[i].EnrolledCount += delta
			r.s.courses[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.NotFoundError{Resource: "course"}
}

type eventRepo struct{ s *Store }

func (r eventRepo) Create(e models.Event) (models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	r.s.events = append(r.s.events, e)
	return e, nil
}

func (r eventRepo) GetByID(id string) (models.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, e := range r.s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, domain.NotFoundError{Resource: "event"}
}

func (r eventRepo) Update(e models.Event) (models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.events {
		if existing.ID == e.ID {
			e.CreatedAt = existing.CreatedAt
			e.UpdatedAt = time.Now()
			r.s.events[i] = e
			return e, nil
		}
	}
	return models.Event{}, domain.NotFoundError{Resource: "event"}
}

func (r eventRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, e := range r.s.events {
		if e.ID == id {
			r.s.events = append(r.s.events[:i], r.s.events[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "event"}
}

func (r eventRepo) List() ([]models.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Event, len(r.s.events))
	copy(out, r.s.events)
	return out, nil
}

func (r eventRepo) AdjustBooked(id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.events {
		if r.s.events[i].ID == id {
			r.s.events[i].BookedCount += delta
			r.s.events[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.NotFoundError{Resource: "event"}
}
