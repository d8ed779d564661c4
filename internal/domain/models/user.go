package models

import (
	"time"

	"yogabook/internal/domain"
)

// User covers both roles; the role-specific profile fields are only
// meaningful for the matching role and stay empty otherwise.
type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone,omitempty"`
	Role         domain.Role `json:"role"`
	PasswordHash string      `json:"-"`

	// student profile
	EmergencyContact string `json:"emergencyContact,omitempty"`
	MedicalNotes     string `json:"medicalNotes,omitempty"`

	// teacher profile
	Bio         string   `json:"bio,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Website     string   `json:"website,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate supports PATCH-style updates via key presence.
type UserUpdate struct {
	Name             *string   `json:"name"`
	Phone            *string   `json:"phone"`
	EmergencyContact *string   `json:"emergencyContact"`
	MedicalNotes     *string   `json:"medicalNotes"`
	Bio              *string   `json:"bio"`
	Specialties      *[]string `json:"specialties"`
	Website          *string   `json:"website"`
}

// Apply merges the patch into u, leaving absent fields untouched.
func (p UserUpdate) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.EmergencyContact != nil {
		u.EmergencyContact = *p.EmergencyContact
	}
	if p.MedicalNotes != nil {
		u.MedicalNotes = *p.MedicalNotes
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Specialties != nil {
		u.Specialties = append([]string(nil), (*p.Specialties)...)
	}
	if p.Website != nil {
		u.Website = *p.Website
	}
	return u
}
