package fixtures

import (
	"testing"

	"yogabook/internal/domain"
	"yogabook/internal/store/memstore"
)

func TestApplyDefaultScenario(t *testing.T) {
	st := memstore.New()
	if err := Apply(st, "default"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	teachers, _ := st.Users().ListByRole(domain.RoleTeacher)
	students, _ := st.Users().ListByRole(domain.RoleStudent)
	if len(teachers) != 2 || len(students) != 3 {
		t.Fatalf("users seeded wrong: %d teachers, %d students", len(teachers), len(students))
	}

	classes, _ := st.Classes().List()
	courses, _ := st.Courses().List()
	events, _ := st.Events().List()
	if len(classes) != 2 || len(courses) != 1 || len(events) != 1 {
		t.Fatalf("offerings seeded wrong: %d/%d/%d", len(classes), len(courses), len(events))
	}

	sessions, _ := st.Courses().ListSessions(courses[0].ID)
	if len(sessions) != 6 {
		t.Fatalf("course sessions = %d, want 6", len(sessions))
	}

	bookings, _ := st.Bookings().List()
	payments, _ := st.Payments().List()
	if len(bookings) != 3 || len(payments) != 2 {
		t.Fatalf("bookings/payments seeded wrong: %d/%d", len(bookings), len(payments))
	}
}

func TestApplyEmptyScenarioSeedsUsersOnly(t *testing.T) {
	st := memstore.New()
	if err := Apply(st, "empty"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	classes, _ := st.Classes().List()
	bookings, _ := st.Bookings().List()
	if len(classes) != 0 || len(bookings) != 0 {
		t.Fatalf("empty scenario seeded offerings or bookings")
	}
	users, _ := st.Users().ListByRole("")
	if len(users) == 0 {
		t.Fatal("empty scenario must still seed users")
	}
}

func TestApplyUnknownScenario(t *testing.T) {
	err := Apply(memstore.New(), "does-not-exist")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
