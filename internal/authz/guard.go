// Package authz implements the actor rule table. Identity arrives as an
// explicit domain.Actor; nothing here reads ambient state.
package authz

import (
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

// RequireActor rejects anonymous callers.
func RequireActor(a domain.Actor) error {
	if a.Anonymous() {
		return domain.UnauthorizedError{}
	}
	return nil
}

// RequireTeacher allows teachers only (e.g. listing all students).
func RequireTeacher(a domain.Actor) error {
	if err := RequireActor(a); err != nil {
		return err
	}
	if !a.IsTeacher() {
		return domain.ForbiddenError{Msg: "teacher role required"}
	}
	return nil
}

// CanUpdateProfile allows a user to update their own profile only.
func CanUpdateProfile(a domain.Actor, userID string) error {
	if err := RequireActor(a); err != nil {
		return err
	}
	if a.UserID != userID {
		return domain.ForbiddenError{Msg: "may only update own profile"}
	}
	return nil
}

// CanAccessBooking covers view/create/update/cancel/delete: the booking's
// student, or any teacher.
func CanAccessBooking(a domain.Actor, b models.Booking) error {
	return CanManageBookingFor(a, b.StudentID)
}

// CanManageBookingFor is the same rule keyed by student id, used on the
// create path before a booking exists.
func CanManageBookingFor(a domain.Actor, studentID string) error {
	if err := RequireActor(a); err != nil {
		return err
	}
	if a.IsTeacher() || a.UserID == studentID {
		return nil
	}
	return domain.ForbiddenError{Msg: "not your booking"}
}

// CanViewTeacherFinance restricts payments/revenue to the same teacher;
// students are always forbidden.
func CanViewTeacherFinance(a domain.Actor, teacherID string) error {
	if err := RequireActor(a); err != nil {
		return err
	}
	if !a.IsTeacher() || a.UserID != teacherID {
		return domain.ForbiddenError{Msg: "finance data is visible to the owning teacher only"}
	}
	return nil
}
