package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogabook/internal/domain/models"
	"yogabook/internal/http/middleware"
	"yogabook/internal/services"
)

func (a API) attendanceService(c *gin.Context) services.AttendanceService {
	return services.AttendanceService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a API) RecordAttendance(c *gin.Context) {
	var in models.Attendance
	if !BindJSONOrError(c, &in) {
		return
	}

	created, err := a.attendanceService(c).Record(middleware.GetActor(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (a API) ListClassAttendance(c *gin.Context) {
	records, err := a.attendanceService(c).ListForClass(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": records})
}
