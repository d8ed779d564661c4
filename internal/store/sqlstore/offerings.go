package sqlstore

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"yogabook/internal/db"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type classRepo struct{ conn *sql.DB }

const classColumns = `id, teacher_id, title, description, date, duration_minutes,
	location, capacity, booked_count, price, currency, created_at, updated_at`

func scanClass(row interface{ Scan(...any) error }) (models.Class, error) {
	var (
		c                     models.Class
		description, location sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.TeacherID, &c.Title, &description, &c.Date, &c.DurationMinutes,
		&location, &c.Capacity, &c.BookedCount, &c.Price, &c.Currency,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return models.Class{}, err
	}
	c.Description = orEmpty(description)
	c.Location = orEmpty(location)
	return c, nil
}

func (r classRepo) Create(c models.Class) (models.Class, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	_, err := r.conn.Exec(`
		INSERT INTO classes (`+classColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.TeacherID, c.Title, db.NullIfEmpty(c.Description), c.Date, c.DurationMinutes,
		db.NullIfEmpty(c.Location), c.Capacity, c.BookedCount, c.Price, c.Currency,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return models.Class{}, domain.InternalError{Msg: "insert class", Err: err}
	}
	return c, nil
}

func (r classRepo) GetByID(id string) (models.Class, error) {
	row := r.conn.QueryRow(`SELECT `+classColumns+` FROM classes WHERE id = ?`, id)
	c, err := scanClass(row)
	if err == sql.ErrNoRows {
		return models.Class{}, domain.NotFoundError{Resource: "class"}
	}
	if err != nil {
		return models.Class{}, domain.InternalError{Msg: "query class", Err: err}
	}
	return c, nil
}

func (r classRepo) Update(c models.Class) (models.Class, error) {
	c.UpdatedAt = time.Now()
	res, err := r.conn.Exec(`
		UPDATE classes SET teacher_id = ?, title = ?, description = ?, date = ?,
			duration_minutes = ?, location = ?, capacity = ?, booked_count = ?,
			price = ?, currency = ?, updated_at = ?
		WHERE id = ?`,
		c.TeacherID, c.Title, db.NullIfEmpty(c.Description), c.Date,
		c.DurationMinutes, db.NullIfEmpty(c.Location), c.Capacity, c.BookedCount,
		c.Price, c.Currency, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return models.Class{}, domain.InternalError{Msg: "update class", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Class{}, domain.NotFoundError{Resource: "class"}
	}
	return r.GetByID(c.ID)
}

func (r classRepo) Delete(id string) error {
	return deleteByID(r.conn, "classes", "class", id)
}

func (r classRepo) List() ([]models.Class, error) {
	rows, err := r.conn.Query(`SELECT ` + classColumns + ` FROM classes ORDER BY date, id`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list classes", Err: err}
	}
	defer rows.Close()

	out := []models.Class{}
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan class", Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r classRepo) AdjustBooked(id string, delta int) error {
	return adjustCounter(r.conn, "classes", "booked_count", "class", id, delta)
}

type courseRepo struct{ conn *sql.DB }

const courseColumns = `id, teacher_id, title, description, start_date, end_date,
	weekday, time_of_day, capacity, enrolled_count, price, currency, created_at, updated_at`

func scanCourse(row interface{ Scan(...any) error }) (models.Course, error) {
	var (
		c                      models.Course
		description, timeOfDay sql.NullString
		weekday                int
	)
	err := row.Scan(
		&c.ID, &c.TeacherID, &c.Title, &description, &c.StartDate, &c.EndDate,
		&weekday, &timeOfDay, &c.Capacity, &c.EnrolledCount, &c.Price, &c.Currency,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return models.Course{}, err
	}
	c.Description = orEmpty(description)
	c.TimeOfDay = orEmpty(timeOfDay)
	c.Weekday = time.Weekday(weekday)
	return c, nil
}

func (r courseRepo) Create(c models.Course) (models.Course, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	_, err := r.conn.Exec(`
		INSERT INTO courses (`+courseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.TeacherID, c.Title, db.NullIfEmpty(c.Description), c.StartDate, c.EndDate,
		int(c.Weekday), db.NullIfEmpty(c.TimeOfDay), c.Capacity, c.EnrolledCount,
		c.Price, c.Currency, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return models.Course{}, domain.InternalError{Msg: "insert course", Err: err}
	}
	return c, nil
}

func (r courseRepo) GetByID(id string) (models.Course, error) {
	row := r.conn.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	c, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return models.Course{}, domain.NotFoundError{Resource: "course"}
	}
	if err != nil {
		return models.Course{}, domain.InternalError{Msg: "query course", Err: err}
	}
	return c, nil
}

func (r courseRepo) Update(c models.Course) (models.Course, error) {
	c.UpdatedAt = time.Now()
	res, err := r.conn.Exec(`
		UPDATE courses SET teacher_id = ?, title = ?, description = ?, start_date = ?,
			end_date = ?, weekday = ?, time_of_day = ?, capacity = ?, enrolled_count = ?,
			price = ?, currency = ?, updated_at = ?
		WHERE id = ?`,
		c.TeacherID, c.Title, db.NullIfEmpty(c.Description), c.StartDate, c.EndDate,
		int(c.Weekday), db.NullIfEmpty(c.TimeOfDay), c.Capacity, c.EnrolledCount,
		c.Price, c.Currency, c.UpdatedAt, c.ID,
	)
	if err != nil {
		return models.Course{}, domain.InternalError{Msg: "update course", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Course{}, domain.NotFoundError{Resource: "course"}
	}
	return r.GetByID(c.ID)
}

func (r courseRepo) Delete(id string) error {
	return deleteByID(r.conn, "courses", "course", id)
}

func (r courseRepo) List() ([]models.Course, error) {
	rows, err := r.conn.Query(`SELECT ` + courseColumns + ` FROM courses ORDER BY start_date, id`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list courses", Err: err}
	}
	defer rows.Close()

	out := []models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan course", Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r courseRepo) CreateSession(s models.CourseSession) (models.CourseSession, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	_, err := r.conn.Exec(`
		INSERT INTO course_sessions (id, course_id, date, cancelled, notes)
		VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.CourseID, s.Date, s.Cancelled, db.NullIfEmpty(s.Notes),
	)
	if err != nil {
		return models.CourseSession{}, domain.InternalError{Msg: "insert course session", Err: err}
	}
	return s, nil
}

func (r courseRepo) ListSessions(courseID string) ([]models.CourseSession, error) {
	rows, err := r.conn.Query(`
		SELECT id, course_id, date, cancelled, notes
		FROM course_sessions WHERE course_id = ? ORDER BY date`, courseID)
	if err != nil {
		return nil, domain.InternalError{Msg: "list course sessions", Err: err}
	}
	defer rows.Close()

	out := []models.CourseSession{}
	for rows.Next() {
		var (
			s     models.CourseSession
			notes sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.CourseID, &s.Date, &s.Cancelled, &notes); err != nil {
			return nil, domain.InternalError{Msg: "scan course session", Err: err}
		}
		s.Notes = orEmpty(notes)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r courseRepo) AdjustEnrolled(id string, delta int) error {
	return adjustCounter(r.conn, "courses", "enrolled_count", "course", id, delta)
}

type eventRepo struct{ conn *sql.DB }

const eventColumns = `id, teacher_id, title, description, date, category,
	location, capacity, booked_count, price, currency, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (models.Event, error) {
	var (
		e                               models.Event
		description, category, location sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.TeacherID, &e.Title, &description, &e.Date, &category,
		&location, &e.Capacity, &e.BookedCount, &e.Price, &e.Currency,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}
	e.Description = orEmpty(description)
	e.Category = orEmpty(category)
	e.Location = orEmpty(location)
	return e, nil
}

func (r eventRepo) Create(e models.Event) (models.Event, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now

	_, err := r.conn.Exec(`
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.TeacherID, e.Title, db.NullIfEmpty(e.Description), e.Date,
		db.NullIfEmpty(e.Category), db.NullIfEmpty(e.Location), e.Capacity, e.BookedCount,
		e.Price, e.Currency, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return models.Event{}, domain.InternalError{Msg: "insert event", Err: err}
	}
	return e, nil
}

func (r eventRepo) GetByID(id string) (models.Event, error) {
	row := r.conn.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return models.Event{}, domain.NotFoundError{Resource: "event"}
	}
	if err != nil {
		return models.Event{}, domain.InternalError{Msg: "query event", Err: err}
	}
	return e, nil
}

func (r eventRepo) Update(e models.Event) (models.Event, error) {
	e.UpdatedAt = time.Now()
	res, err := r.conn.Exec(`
		UPDATE events SET teacher_id = ?, title = ?, description = ?, date = ?,
			category = ?, location = ?, capacity = ?, booked_count = ?,
			price = ?, currency = ?, updated_at = ?
		WHERE id = ?`,
		e.TeacherID, e.Title, db.NullIfEmpty(e.Description), e.Date,
		db.NullIfEmpty(e.Category), db.NullIfEmpty(e.Location), e.Capacity, e.BookedCount,
		e.Price, e.Currency, e.UpdatedAt, e.ID,
	)
	if err != nil {
		return models.Event{}, domain.InternalError{Msg: "update event", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Event{}, domain.NotFoundError{Resource: "event"}
	}
	return r.GetByID(e.ID)
}

func (r eventRepo) Delete(id string) error {
	return deleteByID(r.conn, "events", "event", id)
}

func (r eventRepo) List() ([]models.Event, error) {
	rows, err := r.conn.Query(`SELECT ` + eventColumns + ` FROM events ORDER BY date, id`)
	if err != nil {
		return nil, domain.InternalError{Msg: "list events", Err: err}
	}
	defer rows.Close()

	out := []models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan event", Err: err}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r eventRepo) AdjustBooked(id string, delta int) error {
	return adjustCounter(r.conn, "events", "booked_count", "event", id, delta)
}

func adjustCounter(conn *sql.DB, table, column, resource, id string, delta int) error {
	res, err := conn.Exec(
		`UPDATE `+table+` SET `+column+` = `+column+` + ?, updated_at = ? WHERE id = ?`,
		delta, time.Now(), id,
	)
	if err != nil {
		return domain.InternalError{Msg: "adjust " + column, Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

func deleteByID(conn *sql.DB, table, resource, id string) error {
	res, err := conn.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "delete " + resource, Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
