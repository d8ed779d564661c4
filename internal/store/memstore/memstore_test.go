package memstore

import (
	"testing"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

func TestUserCreateAssignsIDAndRejectsDuplicateEmail(t *testing.T) {
	s := New()

	u, err := s.Users().Create(models.User{Email: "maya@studio.dev", Name: "Maya", Role: domain.RoleTeacher})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected generated id")
	}

	_, err = s.Users().Create(models.User{Email: "MAYA@studio.dev", Name: "Other", Role: domain.RoleStudent})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}
}

func TestUserUpdatePatchSemantics(t *testing.T) {
	s := New()
	u, _ := s.Users().Create(models.User{Email: "jo@studio.dev", Name: "Jo", Phone: "123", Role: domain.RoleStudent})

	name := "Jo Ann"
	got, err := s.Users().Update(u.ID, models.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Name != "Jo Ann" {
		t.Fatalf("name not updated: %q", got.Name)
	}
	if got.Phone != "123" {
		t.Fatalf("absent field was wiped: %q", got.Phone)
	}
}

func TestReturnedUserDoesNotAliasStoredSlice(t *testing.T) {
	s := New()
	u, _ := s.Users().Create(models.User{
		Email:       "t@studio.dev",
		Name:        "T",
		Role:        domain.RoleTeacher,
		Specialties: []string{"vinyasa"},
	})

	u.Specialties[0] = "mutated"

	stored, _ := s.Users().GetByID(u.ID)
	if stored.Specialties[0] != "vinyasa" {
		t.Fatalf("stored value was mutated through returned copy")
	}
}

func TestAdjustBookedShiftsCounter(t *testing.T) {
	s := New()
	c, _ := s.Classes().Create(models.Class{Title: "Morning Flow", Capacity: 10, BookedCount: 3})

	if err := s.Classes().AdjustBooked(c.ID, 1); err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if err := s.Classes().AdjustBooked(c.ID, -2); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	got, _ := s.Classes().GetByID(c.ID)
	if got.BookedCount != 2 {
		t.Fatalf("bookedCount = %d, want 2", got.BookedCount)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	s := New()
	if _, err := s.Bookings().GetByID("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := s.Events().Delete("nope"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBookingListByStudent(t *testing.T) {
	s := New()
	s.Bookings().Create(models.Booking{StudentID: "s1", ItemID: "c1", ItemType: models.ItemClass, Status: models.BookingPending})
	s.Bookings().Create(models.Booking{StudentID: "s2", ItemID: "c1", ItemType: models.ItemClass, Status: models.BookingPending})
	s.Bookings().Create(models.Booking{StudentID: "s1", ItemID: "e1", ItemType: models.ItemEvent, Status: models.BookingConfirmed})

	got, err := s.Bookings().ListByStudent("s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookings for s1, got %d", len(got))
	}
}
