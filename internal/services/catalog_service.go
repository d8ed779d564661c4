package services

import (
	"yogabook/internal/authz"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/query"
	"yogabook/internal/store"
	"yogabook/pkg/logger"
)

// CatalogService owns the bookable offerings: drop-in classes, multi-week
// courses with their sessions, and one-off events. Listings are public;
// every write requires the teacher role.
type CatalogService struct {
	Store     store.Store
	RequestID string
}

func (s CatalogService) ListClasses(search string, page, pageSize int) (query.Page[models.Class], error) {
	all, err := s.Store.Classes().List()
	if err != nil {
		return query.Page[models.Class]{}, err
	}
	filtered := query.FilterBySearch(all, search, func(c models.Class) []string {
		return []string{c.Title, c.Description, c.Location}
	})
	return query.Paginate(filtered, page, pageSize), nil
}

func (s CatalogService) GetClass(id string) (models.Class, error) {
	return s.Store.Classes().GetByID(id)
}

func (s CatalogService) CreateClass(actor domain.Actor, c models.Class) (models.Class, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Class{}, err
	}
	if err := s.validateOffering(c.Title, c.TeacherID, c.Capacity, c.Price); err != nil {
		return models.Class{}, err
	}
	if c.Date.IsZero() {
		return models.Class{}, domain.ValidationError{Msg: "date is required"}
	}
	created, err := s.Store.Classes().Create(c)
	if err != nil {
		return models.Class{}, err
	}
	logger.Event(s.RequestID, "catalog", "class_created", created.ID)
	return created, nil
}

func (s CatalogService) UpdateClass(actor domain.Actor, id string, c models.Class) (models.Class, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Class{}, err
	}
	existing, err := s.Store.Classes().GetByID(id)
	if err != nil {
		return models.Class{}, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := s.validateOffering(c.Title, c.TeacherID, c.Capacity, c.Price); err != nil {
		return models.Class{}, err
	}
	return s.Store.Classes().Update(c)
}

func (s CatalogService) DeleteClass(actor domain.Actor, id string) error {
	if err := authz.RequireTeacher(actor); err != nil {
		return err
	}
	return s.Store.Classes().Delete(id)
}

func (s CatalogService) ListCourses(search string, page, pageSize int) (query.Page[models.Course], error) {
	all, err := s.Store.Courses().List()
	if err != nil {
		return query.Page[models.Course]{}, err
	}
	filtered := query.FilterBySearch(all, search, func(c models.Course) []string {
		return []string{c.Title, c.Description}
	})
	return query.Paginate(filtered, page, pageSize), nil
}

func (s CatalogService) GetCourse(id string) (models.Course, error) {
	return s.Store.Courses().GetByID(id)
}

func (s CatalogService) CreateCourse(actor domain.Actor, c models.Course) (models.Course, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Course{}, err
	}
	if err := s.validateOffering(c.Title, c.TeacherID, c.Capacity, c.Price); err != nil {
		return models.Course{}, err
	}
	if c.StartDate.IsZero() || c.EndDate.IsZero() {
		return models.Course{}, domain.ValidationError{Msg: "start and end dates are required"}
	}
	if c.EndDate.Before(c.StartDate) {
		return models.Course{}, domain.ValidationError{Msg: "end date before start date"}
	}
	created, err := s.Store.Courses().Create(c)
	if err != nil {
		return models.Course{}, err
	}
	// one session per matching weekday between the two dates
	for d := created.StartDate; !d.After(created.EndDate); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != created.Weekday {
			continue
		}
		if _, err := s.Store.Courses().CreateSession(models.CourseSession{
			CourseID: created.ID,
			Date:     d,
		}); err != nil {
			return models.Course{}, err
		}
	}
	logger.Event(s.RequestID, "catalog", "course_created", created.ID)
	return created, nil
}

func (s CatalogService) UpdateCourse(actor domain.Actor, id string, c models.Course) (models.Course, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Course{}, err
	}
	existing, err := s.Store.Courses().GetByID(id)
	if err != nil {
		return models.Course{}, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	if err := s.validateOffering(c.Title, c.TeacherID, c.Capacity, c.Price); err != nil {
		return models.Course{}, err
	}
	return s.Store.Courses().Update(c)
}

func (s CatalogService) DeleteCourse(actor domain.Actor, id string) error {
	if err := authz.RequireTeacher(actor); err != nil {
		return err
	}
	return s.Store.Courses().Delete(id)
}

func (s CatalogService) ListSessions(courseID string) ([]models.CourseSession, error) {
	if _, err := s.Store.Courses().GetByID(courseID); err != nil {
		return nil, err
	}
	return s.Store.Courses().ListSessions(courseID)
}

func (s CatalogService) ListEvents(search string, page, pageSize int) (query.Page[models.Event], error) {
	all, err := s.Store.Events().List()
	if err != nil {
		return query.Page[models.Event]{}, err
	}
	filtered := query.FilterBySearch(all, search, func(e models.Event) []string {
		return []string{e.Title, e.Description, e.Category, e.Location}
	})
	return query.Paginate(filtered, page, pageSize), nil
}

func (s CatalogService) GetEvent(id string) (models.Event, error) {
	return s.Store.Events().GetByID(id)
}

func (s CatalogService) CreateEvent(actor domain.Actor, e models.Event) (models.Event, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Event{}, err
	}
	if err := s.validateOffering(e.Title, e.TeacherID, e.Capacity, e.Price); err != nil {
		return models.Event{}, err
	}
	if e.Date.IsZero() {
		return models.Event{}, domain.ValidationError{Msg: "date is required"}
	}
	created, err := s.Store.Events().Create(e)
	if err != nil {
		return models.Event{}, err
	}
	logger.Event(s.RequestID, "catalog", "event_created", created.ID)
	return created, nil
}

func (s CatalogService) UpdateEvent(actor domain.Actor, id string, e models.Event) (models.Event, error) {
	if err := authz.RequireTeacher(actor); err != nil {
		return models.Event{}, err
	}
	existing, err := s.Store.Events().GetByID(id)
	if err != nil {
		return models.Event{}, err
	}
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	if err := s.validateOffering(e.Title, e.TeacherID, e.Capacity, e.Price); err != nil {
		return models.Event{}, err
	}
	return s.Store.Events().Update(e)
}

func (s CatalogService) DeleteEvent(actor domain.Actor, id string) error {
	if err := authz.RequireTeacher(actor); err != nil {
		return err
	}
	return s.Store.Events().Delete(id)
}

func (s CatalogService) validateOffering(title, teacherID string, capacity int, price float64) error {
	if title == "" {
		return domain.ValidationError{Msg: "title is required"}
	}
	if teacherID == "" {
		return domain.ValidationError{Msg: "teacherId is required"}
	}
	if capacity < 0 {
		return domain.ValidationError{Msg: "capacity must not be negative"}
	}
	if price < 0 {
		return domain.ValidationError{Msg: "price must not be negative"}
	}
	owner, err := s.Store.Users().GetByID(teacherID)
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Msg: "teacher not found"}
		}
		return err
	}
	if owner.Role != domain.RoleTeacher {
		return domain.ValidationError{Msg: "owner is not a teacher"}
	}
	return nil
}
