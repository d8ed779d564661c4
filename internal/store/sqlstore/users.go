package sqlstore

import (
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"yogabook/internal/db"
	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
)

type userRepo struct{ conn *sql.DB }

const userColumns = `id, email, name, phone, role, password_hash,
	emergency_contact, medical_notes, bio, specialties, website,
	created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var (
		u                                       models.User
		phone, emergency, medical, bio, website sql.NullString
		specialties                             sql.NullString
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &phone, &u.Role, &u.PasswordHash,
		&emergency, &medical, &bio, &specialties, &website,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}
	u.Phone = orEmpty(phone)
	u.EmergencyContact = orEmpty(emergency)
	u.MedicalNotes = orEmpty(medical)
	u.Bio = orEmpty(bio)
	u.Website = orEmpty(website)
	if specialties.Valid && specialties.String != "" {
		u.Specialties = strings.Split(specialties.String, ",")
	}
	return u, nil
}

func joinSpecialties(s []string) any {
	if len(s) == 0 {
		return nil
	}
	return strings.Join(s, ",")
}

func (r userRepo) Create(u models.User) (models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	_, err := r.conn.Exec(`
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, strings.ToLower(u.Email), u.Name, db.NullIfEmpty(u.Phone), u.Role, u.PasswordHash,
		db.NullIfEmpty(u.EmergencyContact), db.NullIfEmpty(u.MedicalNotes),
		db.NullIfEmpty(u.Bio), joinSpecialties(u.Specialties), db.NullIfEmpty(u.Website),
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
		}
		return models.User{}, domain.InternalError{Msg: "insert user", Err: err}
	}
	return u, nil
}

func (r userRepo) GetByID(id string) (models.User, error) {
	row := r.conn.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "query user", Err: err}
	}
	return u, nil
}

func (r userRepo) GetByEmail(email string) (models.User, error) {
	row := r.conn.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = ?`, strings.ToLower(email))
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "query user", Err: err}
	}
	return u, nil
}

func (r userRepo) Update(id string, patch models.UserUpdate) (models.User, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return models.User{}, err
	}
	updated := patch.Apply(existing)
	updated.UpdatedAt = time.Now()

	_, err = r.conn.Exec(`
		UPDATE users SET name = ?, phone = ?, emergency_contact = ?,
			medical_notes = ?, bio = ?, specialties = ?, website = ?, updated_at = ?
		WHERE id = ?`,
		updated.Name, db.NullIfEmpty(updated.Phone), db.NullIfEmpty(updated.EmergencyContact),
		db.NullIfEmpty(updated.MedicalNotes), db.NullIfEmpty(updated.Bio),
		joinSpecialties(updated.Specialties), db.NullIfEmpty(updated.Website), updated.UpdatedAt,
		id,
	)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "update user", Err: err}
	}
	return updated, nil
}

func (r userRepo) ListByRole(role domain.Role) ([]models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users`
	args := []any{}
	if role != "" {
		q += ` WHERE role = ?`
		args = append(args, role)
	}
	q += ` ORDER BY created_at, id`

	rows, err := r.conn.Query(q, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "list users", Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "scan user", Err: err}
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
