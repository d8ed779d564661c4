package services

import (
	"sort"
	"time"

	"yogabook/internal/authz"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/store"
)

// UpcomingItem is the common shape courses and events collapse to on the
// dashboard. Courses contribute their start date.
type UpcomingItem struct {
	ID             string          `json:"id"`
	ItemType       models.ItemType `json:"itemType"`
	Title          string          `json:"title"`
	TeacherID      string          `json:"teacherId"`
	Date           time.Time       `json:"date"`
	AvailableSpots int             `json:"availableSpots"`
}

type DashboardState struct {
	NextSession       *UpcomingItem  `json:"nextSession"`
	RemainingUpcoming []UpcomingItem `json:"remainingUpcoming"`
	AllUpcoming       []UpcomingItem `json:"allUpcoming"`
}

// BuildDashboard is pure and deterministic: merge courses and events,
// keep items dated on or after the start of referenceDate's day, sort
// ascending by date (courses before events on equal dates, by merge
// order), and split off the first entry as the next session.
func BuildDashboard(courses []models.Course, events []models.Event, referenceDate time.Time) DashboardState {
	dayStart := time.Date(
		referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
		0, 0, 0, 0, referenceDate.Location(),
	)

	all := make([]UpcomingItem, 0, len(courses)+len(events))
	for _, c := range courses {
		if c.StartDate.Before(dayStart) {
			continue
		}
		all = append(all, UpcomingItem{
			ID:             c.ID,
			ItemType:       models.ItemCourse,
			Title:          c.Title,
			TeacherID:      c.TeacherID,
			Date:           c.StartDate,
			AvailableSpots: models.AvailableSpots(c.Capacity, c.EnrolledCount),
		})
	}
	for _, e := range events {
		if e.Date.Before(dayStart) {
			continue
		}
		all = append(all, UpcomingItem{
			ID:             e.ID,
			ItemType:       models.ItemEvent,
			Title:          e.Title,
			TeacherID:      e.TeacherID,
			Date:           e.Date,
			AvailableSpots: models.AvailableSpots(e.Capacity, e.BookedCount),
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})

	state := DashboardState{AllUpcoming: all, RemainingUpcoming: []UpcomingItem{}}
	if len(all) > 0 {
		next := all[0]
		state.NextSession = &next
		state.RemainingUpcoming = all[1:]
	}
	return state
}

// DashboardService feeds BuildDashboard from the store. Students see the
// offerings they hold a live booking on; teachers see everything.
type DashboardService struct {
	Store store.Store
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s DashboardService) ForActor(actor domain.Actor) (DashboardState, error) {
	if err := authz.RequireActor(actor); err != nil {
		return DashboardState{}, err
	}

	courses, err := s.Store.Courses().List()
	if err != nil {
		return DashboardState{}, err
	}
	events, err := s.Store.Events().List()
	if err != nil {
		return DashboardState{}, err
	}

	if actor.IsStudent() {
		bookings, err := s.Store.Bookings().ListByStudent(actor.UserID)
		if err != nil {
			return DashboardState{}, err
		}
		booked := map[string]bool{}
		for _, b := range bookings {
			if b.Status != models.BookingCancelled {
				booked[b.ItemID] = true
			}
		}

		keptCourses := courses[:0:0]
		for _, c := range courses {
			if booked[c.ID] {
				keptCourses = append(keptCourses, c)
			}
		}
		keptEvents := events[:0:0]
		for _, e := range events {
			if booked[e.ID] {
				keptEvents = append(keptEvents, e)
			}
		}
		courses, events = keptCourses, keptEvents
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return BuildDashboard(courses, events, now()), nil
}
