package services

import (
	"yogabook/internal/authz"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/query"
	"yogabook/internal/store"
	"yogabook/pkg/logger"
)

// UserService covers profiles and the teacher-only student roster.
// Users are seeded or registered, never deleted in-session.
type UserService struct {
	Store     store.Store
	RequestID string
}

// Get allows anyone authenticated to read their own profile and
// teachers to read anyone's.
func (s UserService) Get(actor domain.Actor, id string) (models.User, error) {
	if err := authz.RequireActor(actor); err != nil {
		return models.User{}, err
	}
	if actor.UserID != id && !actor.IsTeacher() {
		return models.User{}, domain.ForbiddenError{Msg: "not your profile"}
	}
	return s.Store.Users().GetByID(id)
}

func (s UserService) UpdateProfile(actor domain.Actor, id string, patch models.UserUpdate) (models.User, error) {
	if err := authz.CanUpdateProfile(actor, id); err != nil {
		return models.User{}, err
	}
	updated, err := s.Store.Users().Update(id, patch)
	if err != nil {
		return models.User{}, err
	}
	logger.Event(s.RequestID, "user", "update_profile", "user_id="+id)
	return updated, nil
}

// ListStudents is teacher-only per the rule table.
func (s UserService) ListStudents(actor domain.Actor, search string, page, pageSize int) (query.Page[models.User], error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return query.Page[models.User]{}, err
	}

	students, err := s.Store.Users().ListByRole(domain.RoleStudent)
	if err != nil {
		return query.Page[models.User]{}, err
	}

	students = query.FilterBySearch(students, search, func(u models.User) []string {
		return []string{u.Name, u.Email, u.Phone}
	})
	return query.Paginate(students, page, pageSize), nil
}
