package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogabook/internal/http/middleware"
	"yogabook/internal/services"
)

func (a API) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Store:     a.Store,
		Secret:    []byte(a.Secret),
		TokenTTL:  a.TokenTTL,
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) Register(c *gin.Context) {
	var in services.RegisterInput
	if !BindJSONOrError(c, &in) {
		return
	}

	user, err := a.authService(c).Register(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (a API) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !BindJSONOrError(c, &in) {
		return
	}

	token, user, err := a.authService(c).Login(in.Email, in.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
