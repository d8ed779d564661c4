package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "yogabook/internal/config"
	h "yogabook/internal/http/handlers"
	"yogabook/internal/http/middleware"
	"yogabook/pkg/logger"
)

func NewRouter(env intconfig.Env, a h.API) *gin.Engine {
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.L().Warn("failed to set trusted proxies: " + err.Error())
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.RequireAuth(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		api.POST("/auth/register", a.Register)
		api.POST("/auth/login", a.Login)

		// Catalog: reads are public, writes are teacher-only (enforced
		// in the service layer, the routes just require a valid token).
		classes := api.Group("/classes")
		classes.GET("", a.ListClasses)
		classes.GET("/:id", a.GetClass)
		classes.POST("", auth, a.CreateClass)
		classes.PUT("/:id", auth, a.UpdateClass)
		classes.DELETE("/:id", auth, a.DeleteClass)
		classes.GET("/:id/attendance", auth, a.ListClassAttendance)

		courses := api.Group("/courses")
		courses.GET("", a.ListCourses)
		courses.GET("/:id", a.GetCourse)
		courses.GET("/:id/sessions", a.ListCourseSessions)
		courses.POST("", auth, a.CreateCourse)
		courses.PUT("/:id", auth, a.UpdateCourse)
		courses.DELETE("/:id", auth, a.DeleteCourse)

		events := api.Group("/events")
		events.GET("", a.ListEvents)
		events.GET("/:id", a.GetEvent)
		events.POST("", auth, a.CreateEvent)
		events.PUT("/:id", auth, a.UpdateEvent)
		events.DELETE("/:id", auth, a.DeleteEvent)

		api.GET("/students", auth, a.ListStudents)
		api.GET("/users/:id", auth, a.GetUser)
		api.PUT("/users/:id", auth, a.UpdateUser)

		api.GET("/dashboard", auth, a.Dashboard)

		bookings := api.Group("/bookings", auth)
		bookings.POST("", a.CreateBooking)
		bookings.GET("", a.ListBookings)
		bookings.GET("/:id", a.GetBooking)
		bookings.PUT("/:id", a.UpdateBooking)
		bookings.DELETE("/:id", a.DeleteBooking)
		bookings.PUT("/:id/confirm", a.ConfirmBooking)
		bookings.PUT("/:id/cancel", a.CancelBooking)
		bookings.PUT("/:id/complete", a.CompleteBooking)
		bookings.GET("/:id/invoice", a.BookingInvoice)

		payments := api.Group("/payments", auth)
		payments.POST("", a.CreatePayment)
		payments.GET("/:id", a.GetPayment)
		payments.PUT("/:id/mark-paid", a.MarkPaymentPaid)
		payments.GET("/:id/receipt", a.PaymentReceipt)

		teachers := api.Group("/teachers", auth)
		teachers.GET("/:id/payments", a.TeacherPayments)
		teachers.GET("/:id/revenue", a.TeacherRevenue)

		api.POST("/attendance", auth, a.RecordAttendance)
	}

	h.SetRouter(r)
	return r
}
