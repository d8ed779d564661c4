package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogabook/internal/domain/models"
	"yogabook/internal/http/middleware"
	"yogabook/internal/services"
)

func (a API) userService(c *gin.Context) services.UserService {
	return services.UserService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a API) GetUser(c *gin.Context) {
	user, err := a.userService(c).Get(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a API) UpdateUser(c *gin.Context) {
	var patch models.UserUpdate
	if !BindJSONOrError(c, &patch) {
		return
	}

	user, err := a.userService(c).UpdateProfile(middleware.GetActor(c), c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (a API) ListStudents(c *gin.Context) {
	page, pageSize := pageParams(c)
	out, err := a.userService(c).ListStudents(middleware.GetActor(c), c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
