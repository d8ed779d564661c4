package domain

// Role discriminates the two kinds of users.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleStudent
}

// Actor is the authenticated identity every guarded operation receives
// explicitly. The zero value means "no identity presented".
type Actor struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

func (a Actor) Anonymous() bool { return a.UserID == "" }

func (a Actor) IsTeacher() bool { return a.Role == RoleTeacher }

func (a Actor) IsStudent() bool { return a.Role == RoleStudent }
