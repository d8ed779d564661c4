package sqlstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"yogabook/internal/db"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type bookingRepo struct{ conn *sql.DB }

const bookingColumns = `id, student_id, item_id, item_type, status, payment_id, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var (
		b         models.Booking
		paymentID sql.NullString
	)
	err := row.Scan(&b.ID, &b.StudentID, &b.ItemID, &b.ItemType, &b.Status, &paymentID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Booking{}, err
	}
	b.PaymentID = orEmpty(paymentID)
	return b, nil
}

func (r bookingRepo) Create(b models.Booking) (models.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	_, err := r.conn.Exec(`
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.StudentID, b.ItemID, b.ItemType, b.Status,
		db.NullIfEmpty(b.PaymentID), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "insert booking", Err: err}
	}
	return b, nil
}

func (r bookingRepo) GetByID(id string) (models.Booking, error) {
	row := r.conn.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "query booking", Err: err}
	}
	return b, nil
}

func (r bookingRepo) Update(id string, patch models.BookingUpdate) (models.Booking, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return models.Booking{}, err
	}
	updated := patch.Apply(existing)
	updated.UpdatedAt = time.Now()

	_, err = r.conn.Exec(`
		UPDATE bookings SET status = ?, payment_id = ?, updated_at = ? WHERE id = ?`,
		updated.Status, db.NullIfEmpty(updated.PaymentID), updated.UpdatedAt, id,
	)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "update booking", Err: err}
	}
	return updated, nil
}

func (r bookingRepo) Delete(id string) error {
	return deleteByID(r.conn, "bookings", "booking", id)
}

func (r bookingRepo) List() ([]models.Booking, error) {
	return r.list(`SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at, id`)
}

func (r bookingRepo) ListByStudent(studentID string) ([]models.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE student_id = ? ORDER BY created_at, id`, studentID)
}

func (r bookingRepo) list(q string, args ...any) ([]models.Booking, error) {
	rows, err := r.conn.Query(q, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list bookings", Err: err}
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan booking", Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
