package services

import (
	"testing"
	"time"

	"yogabook/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildDashboardReferenceScenario(t *testing.T) {
	// Reference Friday 2025-01-10: one course starting 01-13, events on
	// 01-09 (past) and 01-15.
	courses := []models.Course{
		{ID: "c1", Title: "Beginners Course", StartDate: day(2025, 1, 13), Capacity: 10},
	}
	events := []models.Event{
		{ID: "e1", Title: "Past Workshop", Date: day(2025, 1, 9), Capacity: 20},
		{ID: "e2", Title: "Full Moon Flow", Date: day(2025, 1, 15), Capacity: 20},
	}

	state := BuildDashboard(courses, events, day(2025, 1, 10))

	if len(state.AllUpcoming) != 2 {
		t.Fatalf("allUpcoming has %d entries, want 2", len(state.AllUpcoming))
	}
	if state.AllUpcoming[0].ID != "c1" || state.AllUpcoming[1].ID != "e2" {
		t.Fatalf("wrong order: %s, %s", state.AllUpcoming[0].ID, state.AllUpcoming[1].ID)
	}
	if state.NextSession == nil || state.NextSession.ID != "c1" {
		t.Fatalf("nextSession = %+v, want course c1", state.NextSession)
	}
	if len(state.RemainingUpcoming) != 1 || state.RemainingUpcoming[0].ID != "e2" {
		t.Fatalf("remainingUpcoming wrong: %+v", state.RemainingUpcoming)
	}
}

func TestBuildDashboardEmptyInput(t *testing.T) {
	state := BuildDashboard(nil, nil, day(2025, 1, 10))

	if state.NextSession != nil {
		t.Fatalf("nextSession should be nil, got %+v", state.NextSession)
	}
	if len(state.AllUpcoming) != 0 || len(state.RemainingUpcoming) != 0 {
		t.Fatalf("expected empty state, got %+v", state)
	}
}

func TestBuildDashboardSplitInvariants(t *testing.T) {
	courses := []models.Course{
		{ID: "c1", StartDate: day(2025, 3, 3)},
		{ID: "c2", StartDate: day(2025, 2, 1)},
	}
	events := []models.Event{
		{ID: "e1", Date: day(2025, 2, 14)},
		{ID: "e2", Date: day(2025, 1, 20)},
		{ID: "e3", Date: day(2024, 12, 31)},
	}

	ref := day(2025, 1, 15)
	state := BuildDashboard(courses, events, ref)

	dayStart := day(2025, 1, 15)
	for _, item := range state.AllUpcoming {
		if item.Date.Before(dayStart) {
			t.Fatalf("item %s dated before reference day: %s", item.ID, item.Date)
		}
	}
	for i := 1; i < len(state.AllUpcoming); i++ {
		if state.AllUpcoming[i].Date.Before(state.AllUpcoming[i-1].Date) {
			t.Fatalf("not sorted ascending at %d", i)
		}
	}
	if state.NextSession == nil || state.NextSession.ID != state.AllUpcoming[0].ID {
		t.Fatal("nextSession must equal allUpcoming[0]")
	}
	if want := len(state.AllUpcoming) - 1; len(state.RemainingUpcoming) != want {
		t.Fatalf("remainingUpcoming length %d, want %d", len(state.RemainingUpcoming), want)
	}
}

func TestBuildDashboardItemIncludedOnReferenceDay(t *testing.T) {
	// date >= startOfDay(referenceDate): an event later the same day stays.
	events := []models.Event{
		{ID: "e1", Date: time.Date(2025, 1, 10, 18, 0, 0, 0, time.Local)},
	}
	state := BuildDashboard(nil, events, time.Date(2025, 1, 10, 9, 30, 0, 0, time.Local))

	if state.NextSession == nil || state.NextSession.ID != "e1" {
		t.Fatalf("same-day event dropped: %+v", state.NextSession)
	}
}

func TestBuildDashboardAvailability(t *testing.T) {
	courses := []models.Course{
		{ID: "c1", StartDate: day(2025, 5, 1), Capacity: 12, EnrolledCount: 9},
	}
	events := []models.Event{
		{ID: "e1", Date: day(2025, 5, 2), Capacity: 20, BookedCount: 25},
	}

	state := BuildDashboard(courses, events, day(2025, 4, 1))

	if state.AllUpcoming[0].AvailableSpots != 3 {
		t.Fatalf("course spots = %d, want 3", state.AllUpcoming[0].AvailableSpots)
	}
	// negative availability is reported as-is
	if state.AllUpcoming[1].AvailableSpots != -5 {
		t.Fatalf("event spots = %d, want -5", state.AllUpcoming[1].AvailableSpots)
	}
}
