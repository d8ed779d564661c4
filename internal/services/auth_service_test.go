package services

import (
	"testing"
	"time"

	"yogabook/internal/domain"
	"yogabook/internal/store/memstore"
)

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	svc := AuthService{Store: memstore.New(), Secret: []byte("test-secret"), TokenTTL: time.Hour}

	user, err := svc.Register(RegisterInput{
		Email:    "Jo@Studio.Dev",
		Name:     "Jo",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "jo@studio.dev" {
		t.Fatalf("email not normalized: %q", user.Email)
	}
	if user.Role != domain.RoleStudent {
		t.Fatalf("default role = %s, want student", user.Role)
	}
	if user.PasswordHash == "correct-horse" {
		t.Fatal("password stored in clear")
	}

	token, got, err := svc.Login("jo@studio.dev", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || got.ID != user.ID {
		t.Fatalf("unexpected login result: token=%q user=%+v", token, got)
	}

	if _, _, err := svc.Login("jo@studio.dev", "wrong"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for bad password, got %v", err)
	}
	if _, _, err := svc.Login("nobody@studio.dev", "x"); !domain.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}

func TestRegisterValidations(t *testing.T) {
	svc := AuthService{Store: memstore.New(), Secret: []byte("test-secret")}

	if _, err := svc.Register(RegisterInput{Name: "X", Password: "longenough"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation for missing email, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@b.c", Name: "X", Password: "short"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation for short password, got %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@b.c", Name: "X", Password: "longenough", Role: "admin"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation for unknown role, got %v", err)
	}

	if _, err := svc.Register(RegisterInput{Email: "a@b.c", Name: "X", Password: "longenough"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(RegisterInput{Email: "a@b.c", Name: "Y", Password: "longenough"}); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate email, got %v", err)
	}
}

func TestListStudentsRoleRule(t *testing.T) {
	st := memstore.New()
	authsvc := AuthService{Store: st, Secret: []byte("s")}

	teacher, _ := authsvc.Register(RegisterInput{Email: "maya@studio.dev", Name: "Maya", Password: "longenough", Role: domain.RoleTeacher})
	student, _ := authsvc.Register(RegisterInput{Email: "jo@studio.dev", Name: "Jo", Password: "longenough"})
	authsvc.Register(RegisterInput{Email: "sam@studio.dev", Name: "Sam", Password: "longenough"})

	usvc := UserService{Store: st}

	page, err := usvc.ListStudents(domain.Actor{UserID: teacher.ID, Role: domain.RoleTeacher}, "", 1, 10)
	if err != nil {
		t.Fatalf("teacher list: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("total = %d, want 2", page.Total)
	}

	_, err = usvc.ListStudents(domain.Actor{UserID: student.ID, Role: domain.RoleStudent}, "", 1, 10)
	if !domain.IsForbidden(err) {
		t.Fatalf("expected forbidden for student, got %v", err)
	}
}
