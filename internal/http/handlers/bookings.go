package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogabook/internal/domain"
	"yogabook/internal/domain/models"
	"yogabook/internal/http/middleware"
	"yogabook/internal/services"
)

func (a API) bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a API) CreateBooking(c *gin.Context) {
	var in struct {
		StudentID string          `json:"studentId"`
		ItemID    string          `json:"itemId"`
		ItemType  models.ItemType `json:"itemType"`
	}
	if !BindJSONOrError(c, &in) {
		return
	}

	actor := middleware.GetActor(c)
	if in.StudentID == "" {
		// students book for themselves by default
		in.StudentID = actor.UserID
	}

	booking, err := a.bookingService(c).Create(actor, in.StudentID, in.ItemID, in.ItemType)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (a API) ListBookings(c *gin.Context) {
	page, pageSize := pageParams(c)
	out, err := a.bookingService(c).List(middleware.GetActor(c), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a API) GetBooking(c *gin.Context) {
	booking, err := a.bookingService(c).Get(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (a API) UpdateBooking(c *gin.Context) {
	var patch models.BookingUpdate
	if !BindJSONOrError(c, &patch) {
		return
	}

	booking, err := a.bookingService(c).Update(middleware.GetActor(c), c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (a API) DeleteBooking(c *gin.Context) {
	if err := a.bookingService(c).Delete(middleware.GetActor(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (a API) ConfirmBooking(c *gin.Context) {
	a.transitionBooking(c, a.bookingService(c).Confirm)
}

func (a API) CancelBooking(c *gin.Context) {
	a.transitionBooking(c, a.bookingService(c).Cancel)
}

func (a API) CompleteBooking(c *gin.Context) {
	a.transitionBooking(c, a.bookingService(c).Complete)
}

func (a API) transitionBooking(c *gin.Context, op func(actor domain.Actor, id string) (models.Booking, error)) {
	booking, err := op(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (a API) BookingInvoice(c *gin.Context) {
	svc := services.DocsService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateInvoice(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
