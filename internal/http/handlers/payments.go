package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogabook/internal/http/middleware"
	"yogabook/internal/services"
)

func (a API) paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

func (a API) CreatePayment(c *gin.Context) {
	var in struct {
		BookingID string  `json:"bookingId"`
		Amount    float64 `json:"amount"`
		Currency  string  `json:"currency"`
	}
	if !BindJSONOrError(c, &in) {
		return
	}

	payment, err := a.paymentService(c).Create(middleware.GetActor(c), in.BookingID, in.Amount, in.Currency)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (a API) GetPayment(c *gin.Context) {
	payment, err := a.paymentService(c).Get(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (a API) MarkPaymentPaid(c *gin.Context) {
	var in struct {
		Method string `json:"method"`
	}
	// body is optional
	if c.Request.Body != nil {
		_ = c.ShouldBindJSON(&in)
	}

	payment, err := a.paymentService(c).MarkPaid(middleware.GetActor(c), c.Param("id"), in.Method)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (a API) PaymentReceipt(c *gin.Context) {
	svc := services.DocsService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateReceipt(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (a API) TeacherPayments(c *gin.Context) {
	page, pageSize := pageParams(c)
	out, err := a.paymentService(c).ListForTeacher(middleware.GetActor(c), c.Param("id"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a API) TeacherRevenue(c *gin.Context) {
	summary, err := a.paymentService(c).Revenue(middleware.GetActor(c), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
