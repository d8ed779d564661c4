package authz

import (
	"testing"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

var (
	teacher = domain.Actor{UserID: "t1", Role: domain.RoleTeacher}
	student = domain.Actor{UserID: "s1", Role: domain.RoleStudent}
	nobody  = domain.Actor{}
)

func TestRequireTeacher(t *testing.T) {
	if err := RequireTeacher(teacher); err != nil {
		t.Fatalf("teacher rejected: %v", err)
	}
	if err := RequireTeacher(student); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for student, got %v", err)
	}
	if err := RequireTeacher(nobody); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for anonymous, got %v", err)
	}
}

func TestCanUpdateProfileSameUserOnly(t *testing.T) {
	if err := CanUpdateProfile(student, "s1"); err != nil {
		t.Fatalf("own profile rejected: %v", err)
	}
	if err := CanUpdateProfile(student, "s2"); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	// teachers get no special power over other people's profiles
	if err := CanUpdateProfile(teacher, "s1"); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for teacher on foreign profile, got %v", err)
	}
}

func TestCanAccessBooking(t *testing.T) {
	b := models.Booking{ID: "b1", StudentID: "s1"}

	if err := CanAccessBooking(student, b); err != nil {
		t.Fatalf("owning student rejected: %v", err)
	}
	if err := CanAccessBooking(teacher, b); err != nil {
		t.Fatalf("teacher rejected: %v", err)
	}
	other := domain.Actor{UserID: "s2", Role: domain.RoleStudent}
	if err := CanAccessBooking(other, b); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for foreign student, got %v", err)
	}
	if err := CanAccessBooking(nobody, b); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCanViewTeacherFinance(t *testing.T) {
	if err := CanViewTeacherFinance(teacher, "t1"); err != nil {
		t.Fatalf("own finance rejected: %v", err)
	}
	if err := CanViewTeacherFinance(teacher, "t2"); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for other teacher, got %v", err)
	}
	if err := CanViewTeacherFinance(student, "t1"); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for student, got %v", err)
	}
}
