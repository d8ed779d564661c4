package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "yogabook/internal/config"
	"yogabook/internal/http/handlers"
	"yogabook/internal/store/memstore"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := intconfig.Env{JWTSecret: "test-secret", TokenTTL: time.Hour}
	a := handlers.API{Store: memstore.New(), Secret: env.JWTSecret, TokenTTL: env.TokenTTL}
	return NewRouter(env, a)
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthIsPublic(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health returned %d", w.Code)
	}
}

func TestProtectedRouteWithoutTokenIs401(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, http.MethodGet, "/api/bookings", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStudentListingStudentsIs403(t *testing.T) {
	r := setupRouter(t)

	reg := doJSON(r, http.MethodPost, "/api/auth/register",
		`{"email":"jo@studio.dev","name":"Jo","password":"password123"}`, "")
	if reg.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", reg.Code, reg.Body.String())
	}

	login := doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email":"jo@studio.dev","password":"password123"}`, "")
	if login.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", login.Code, login.Body.String())
	}
	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &payload); err != nil || payload.Token == "" {
		t.Fatalf("no token in login response: %s", login.Body.String())
	}

	w := doJSON(r, http.MethodGet, "/api/students", "", payload.Token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestInvalidTokenIs401(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, http.MethodGet, "/api/dashboard", "", "not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
