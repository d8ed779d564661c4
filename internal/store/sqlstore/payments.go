package sqlstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"yogabook/internal/db"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type paymentRepo struct{ conn *sql.DB }

const paymentColumns = `id, booking_id, amount, currency, status, paid_at,
	transaction_id, payment_method, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (models.Payment, error) {
	var (
		p             models.Payment
		paidAt        sql.NullTime
		txnID, method sql.NullString
	)
	err := row.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Currency, &p.Status,
		&paidAt, &txnID, &method, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Payment{}, err
	}
	if paidAt.Valid {
		t := paidAt.Time
		p.PaidAt = &t
	}
	p.TransactionID = orEmpty(txnID)
	p.PaymentMethod = orEmpty(method)
	return p, nil
}

func (r paymentRepo) Create(p models.Payment) (models.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	var paidAt any
	if p.PaidAt != nil {
		paidAt = *p.PaidAt
	}
	_, err := r.conn.Exec(`
		INSERT INTO payments (`+paymentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.BookingID, p.Amount, p.Currency, p.Status, paidAt,
		db.NullIfEmpty(p.TransactionID), db.NullIfEmpty(p.PaymentMethod),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return models.Payment{}, domain.InternalError{Msg: "insert payment", Err: err}
	}
	return p, nil
}

func (r paymentRepo) GetByID(id string) (models.Payment, error) {
	row := r.conn.QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)
	p, err := scanPayment(row)
	if err == sql.ErrNoRows {
		return models.Payment{}, domain.NotFoundError{Resource: "payment"}
	}
	if err != nil {
		return models.Payment{}, domain.InternalError{Msg: "query payment", Err: err}
	}
	return p, nil
}

func (r paymentRepo) Update(p models.Payment) (models.Payment, error) {
	p.UpdatedAt = time.Now()

	var paidAt any
	if p.PaidAt != nil {
		paidAt = *p.PaidAt
	}
	res, err := r.conn.Exec(`
		UPDATE payments SET booking_id = ?, amount = ?, currency = ?, status = ?,
			paid_at = ?, transaction_id = ?, payment_method = ?, updated_at = ?
		WHERE id = ?`,
		p.BookingID, p.Amount, p.Currency, p.Status, paidAt,
		db.NullIfEmpty(p.TransactionID), db.NullIfEmpty(p.PaymentMethod),
		p.UpdatedAt, p.ID,
	)
	if err != nil {
		return models.Payment{}, domain.InternalError{Msg: "update payment", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Payment{}, domain.NotFoundError{Resource: "payment"}
	}
	return p, nil
}

func (r paymentRepo) List() ([]models.Payment, error) {
	rows, err := r.conn.Query(`SELECT ` + paymentColumns + ` FROM payments ORDER BY created_at, id`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list payments", Err: err}
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan payment", Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type attendanceRepo struct{ conn *sql.DB }

func (r attendanceRepo) Create(a models.Attendance) (models.Attendance, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.RecordedAt.IsZero() {
		a.RecordedAt = time.Now()
	}

	_, err := r.conn.Exec(`
		INSERT INTO attendance (id, booking_id, student_id, class_id, attended, notes, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.BookingID, a.StudentID, a.ClassID, a.Attended,
		db.NullIfEmpty(a.Notes), a.RecordedAt,
	)
	if err != nil {
		return models.Attendance{}, domain.InternalError{Msg: "insert attendance", Err: err}
	}
	return a, nil
}

func (r attendanceRepo) ListByClass(classID string) ([]models.Attendance, error) {
	rows, err := r.conn.Query(`
		SELECT id, booking_id, student_id, class_id, attended, notes, recorded_at
		FROM attendance WHERE class_id = ? ORDER BY recorded_at, id`, classID)
	if err != nil {
		return nil, domain.InternalError{Msg: "list attendance", Err: err}
	}
	defer rows.Close()

	out := []models.Attendance{}
	for rows.Next() {
		var (
			a     models.Attendance
			notes sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.BookingID, &a.StudentID, &a.ClassID, &a.Attended, &notes, &a.RecordedAt); err != nil {
			return nil, domain.InternalError{Msg: "scan attendance", Err: err}
		}
		a.Notes = orEmpty(notes)
		out = append(out, a)
	}
	return out, rows.Err()
}
