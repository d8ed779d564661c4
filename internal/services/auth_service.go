package services

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/store"
	"yogabook/pkg/logger"
)

// AuthService issues the tokens that become the Actor on later calls.
type AuthService struct {
	Store     store.Store
	Secret    []byte
	TokenTTL  time.Duration
	RequestID string
}

type RegisterInput struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Phone    string      `json:"phone"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

func (s AuthService) Register(in RegisterInput) (models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if in.Email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "required"}
	}
	if in.Name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if len(in.Password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "minimum 8 characters"}
	}
	if in.Role == "" {
		in.Role = domain.RoleStudent
	}
	if !in.Role.Valid() {
		return models.User{}, domain.ValidationError{Field: "role", Msg: "must be teacher or student"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	created, err := s.Store.Users().Create(models.User{
		Email:        in.Email,
		Name:         in.Name,
		Phone:        strings.TrimSpace(in.Phone),
		Role:         in.Role,
		PasswordHash: string(hash),
	})
	if err != nil {
		return models.User{}, err
	}

	logger.Event(s.RequestID, "auth", "register", "user_id="+created.ID+" role="+string(created.Role))
	return created, nil
}

// Login verifies credentials and returns a signed token plus the user.
func (s AuthService) Login(email, password string) (string, models.User, error) {
	user, err := s.Store.Users().GetByEmail(strings.TrimSpace(email))
	if err != nil {
		// same answer for unknown email and bad password
		return "", models.User{}, domain.UnauthorizedError{Msg: "wrong email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, domain.UnauthorizedError{Msg: "wrong email or password"}
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "sign token", Err: err}
	}

	logger.Event(s.RequestID, "auth", "login", "user_id="+user.ID)
	return signed, user, nil
}
