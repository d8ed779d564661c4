package sqlstore

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

func TestBookingCreateAndGet(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := bookingRepo{conn}
	created, err := repo.Create(models.Booking{
		StudentID: "s1", ItemID: "c1", ItemType: models.ItemClass,
		Status: models.BookingPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "student_id", "item_id", "item_type", "status", "payment_id", "created_at", "updated_at",
	}).AddRow(created.ID, "s1", "c1", "class", "pending", nil, now, now)
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs(created.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != models.BookingPending || got.PaymentID != "" {
		t.Fatalf("unexpected booking: %+v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "student_id", "item_id", "item_type", "status", "payment_id", "created_at", "updated_at",
		}))

	repo := bookingRepo{conn}
	if _, err := repo.GetByID("missing"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClassAdjustBooked(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec("UPDATE classes SET booked_count = booked_count").
		WithArgs(1, sqlmock.AnyArg(), "cls-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := classRepo{conn}
	if err := repo.AdjustBooked("cls-1", 1); err != nil {
		t.Fatalf("adjust: %v", err)
	}

	mock.ExpectExec("UPDATE classes SET booked_count = booked_count").
		WithArgs(-1, sqlmock.AnyArg(), "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AdjustBooked("gone", -1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for unknown class, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserCreateDuplicateEmailMapsToConflict(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer conn.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errDuplicate{})

	repo := userRepo{conn}
	_, err = repo.Create(models.User{Email: "jo@studio.dev", Name: "Jo", Role: domain.RoleStudent})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

type errDuplicate struct{}

func (errDuplicate) Error() string {
	return "Error 1062 (23000): Duplicate entry 'jo@studio.dev' for key 'users.uniq_users_email'"
}
