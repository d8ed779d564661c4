package services

import (
	"testing"
	"time"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/store/memstore"
)

func seedBookingFixture(t *testing.T) (*memstore.Store, models.User, models.User, models.Class) {
	t.Helper()
	s := memstore.New()

	teacher, err := s.Users().Create(models.User{Email: "maya@studio.dev", Name: "Maya", Role: domain.RoleTeacher})
	if err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	student, err := s.Users().Create(models.User{Email: "jo@studio.dev", Name: "Jo", Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("seed student: %v", err)
	}
	class, err := s.Classes().Create(models.Class{
		TeacherID: teacher.ID,
		Title:     "Morning Flow",
		Date:      time.Now().Add(48 * time.Hour),
		Capacity:  2,
		Price:     15,
		Currency:  "EUR",
	})
	if err != nil {
		t.Fatalf("seed class: %v", err)
	}
	return s, teacher, student, class
}

func TestCreateBookingStartsPendingWithFreshID(t *testing.T) {
	s, _, student, class := seedBookingFixture(t)
	svc := BookingService{Store: s}
	actor := domain.Actor{UserID: student.ID, Role: domain.RoleStudent}

	first, err := svc.Create(actor, student.ID, class.ID, models.ItemClass)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.Status != models.BookingPending {
		t.Fatalf("status = %s, want pending", first.Status)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}

	second, err := svc.Create(actor, student.ID, class.ID, models.ItemClass)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("ids must be distinct, both %s", first.ID)
	}
}

func TestCreateBookingDoesNotEnforceCapacity(t *testing.T) {
	// The counters are not touched on creation and a full offering is
	// not rejected; this pins the behavior of the system being replaced.
	s, teacher, student, class := seedBookingFixture(t)
	svc := BookingService{Store: s}
	teacherActor := domain.Actor{UserID: teacher.ID, Role: domain.RoleTeacher}

	for i := 0; i < 5; i++ {
		b, err := svc.Create(teacherActor, student.ID, class.ID, models.ItemClass)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if _, err := svc.Confirm(teacherActor, b.ID); err != nil {
			t.Fatalf("confirm %d: %v", i, err)
		}
	}

	got, _ := s.Classes().GetByID(class.ID)
	if got.BookedCount != 5 {
		t.Fatalf("bookedCount = %d, want 5", got.BookedCount)
	}
	if spots := models.AvailableSpots(got.Capacity, got.BookedCount); spots != -3 {
		t.Fatalf("availableSpots = %d, want -3 (overbooking allowed)", spots)
	}
}

func TestConfirmAndCancelMoveTheCounter(t *testing.T) {
	s, teacher, student, class := seedBookingFixture(t)
	svc := BookingService{Store: s}
	actor := domain.Actor{UserID: teacher.ID, Role: domain.RoleTeacher}

	b, err := svc.Create(actor, student.ID, class.ID, models.ItemClass)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Confirm(actor, b.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	c, _ := s.Classes().GetByID(class.ID)
	if c.BookedCount != 1 {
		t.Fatalf("bookedCount after confirm = %d, want 1", c.BookedCount)
	}

	// confirming again must not double-count
	if _, err := svc.Confirm(actor, b.ID); err != nil {
		t.Fatalf("re-confirm: %v", err)
	}
	c, _ = s.Classes().GetByID(class.ID)
	if c.BookedCount != 1 {
		t.Fatalf("bookedCount after re-confirm = %d, want 1", c.BookedCount)
	}

	if _, err := svc.Cancel(actor, b.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	c, _ = s.Classes().GetByID(class.ID)
	if c.BookedCount != 0 {
		t.Fatalf("bookedCount after cancel = %d, want 0", c.BookedCount)
	}

	// cancelling a pending booking never decrements
	b2, _ := svc.Create(actor, student.ID, class.ID, models.ItemClass)
	if _, err := svc.Cancel(actor, b2.ID); err != nil {
		t.Fatalf("cancel pending: %v", err)
	}
	c, _ = s.Classes().GetByID(class.ID)
	if c.BookedCount != 0 {
		t.Fatalf("bookedCount after cancelling pending = %d, want 0", c.BookedCount)
	}
}

func TestStatusJumpsAreNotGuarded(t *testing.T) {
	s, teacher, student, class := seedBookingFixture(t)
	svc := BookingService{Store: s}
	actor := domain.Actor{UserID: teacher.ID, Role: domain.RoleTeacher}

	b, _ := svc.Create(actor, student.ID, class.ID, models.ItemClass)
	if _, err := svc.Complete(actor, b.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	back := models.BookingPending
	got, err := svc.Update(actor, b.ID, models.BookingUpdate{Status: &back})
	if err != nil {
		t.Fatalf("completed -> pending should be accepted: %v", err)
	}
	if got.Status != models.BookingPending {
		t.Fatalf("status = %s, want pending", got.Status)
	}
}

func TestBookingAccessRules(t *testing.T) {
	s, _, student, class := seedBookingFixture(t)
	svc := BookingService{Store: s}
	owner := domain.Actor{UserID: student.ID, Role: domain.RoleStudent}

	b, err := svc.Create(owner, student.ID, class.ID, models.ItemClass)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	other, _ := s.Users().Create(models.User{Email: "sam@studio.dev", Name: "Sam", Role: domain.RoleStudent})
	otherActor := domain.Actor{UserID: other.ID, Role: domain.RoleStudent}

	if _, err := svc.Get(otherActor, b.ID); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for foreign student, got %v", err)
	}
	if _, err := svc.Create(otherActor, student.ID, class.ID, models.ItemClass); !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden creating for someone else, got %v", err)
	}
	if _, err := svc.Get(domain.Actor{}, b.ID); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for anonymous, got %v", err)
	}
}

func TestCreateBookingValidations(t *testing.T) {
	s, teacher, student, _ := seedBookingFixture(t)
	svc := BookingService{Store: s}
	actor := domain.Actor{UserID: student.ID, Role: domain.RoleStudent}

	if _, err := svc.Create(actor, student.ID, "missing", models.ItemClass); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing offering, got %v", err)
	}
	if _, err := svc.Create(actor, student.ID, "x", "workshop"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown item type, got %v", err)
	}

	teacherActor := domain.Actor{UserID: teacher.ID, Role: domain.RoleTeacher}
	if _, err := svc.Create(teacherActor, teacher.ID, "x", models.ItemClass); !domain.IsValidation(err) {
		t.Fatalf("expected validation error booking for a teacher, got %v", err)
	}
}
