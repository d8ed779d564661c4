package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogabook/internal/http/middleware"
	"yogabook/internal/services"
)

func (a API) Dashboard(c *gin.Context) {
	svc := services.DashboardService{Store: a.Store}
	state, err := svc.ForActor(middleware.GetActor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
