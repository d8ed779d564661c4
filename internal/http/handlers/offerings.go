package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yogabook/internal/domain/models"
	"yogabook/internal/http/middleware"
	"yogabook/internal/query"
	"yogabook/internal/services"
)

func (a API) catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{Store: a.Store, RequestID: middleware.GetRequestID(c)}
}

// Offering detail payloads carry the derived spot count alongside the
// raw entity. It can be negative when overbooked.
type classView struct {
	models.Class
	AvailableSpots int `json:"availableSpots"`
}

type courseView struct {
	models.Course
	AvailableSpots int `json:"availableSpots"`
}

type eventView struct {
	models.Event
	AvailableSpots int `json:"availableSpots"`
}

func newClassView(c models.Class) classView {
	return classView{c, models.AvailableSpots(c.Capacity, c.BookedCount)}
}

func newCourseView(c models.Course) courseView {
	return courseView{c, models.AvailableSpots(c.Capacity, c.EnrolledCount)}
}

func newEventView(e models.Event) eventView {
	return eventView{e, models.AvailableSpots(e.Capacity, e.BookedCount)}
}

func viewPage[T, V any](p query.Page[T], view func(T) V) query.Page[V] {
	out := query.Page[V]{
		Data:       make([]V, 0, len(p.Data)),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
	for _, item := range p.Data {
		out.Data = append(out.Data, view(item))
	}
	return out
}

// Classes

func (a API) ListClasses(c *gin.Context) {
	page, pageSize := pageParams(c)
	out, err := a.catalogService(c).ListClasses(c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewPage(out, newClassView))
}

func (a API) GetClass(c *gin.Context) {
	class, err := a.catalogService(c).GetClass(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newClassView(class))
}

func (a API) CreateClass(c *gin.Context) {
	var in models.Class
	if !BindJSONOrError(c, &in) {
		return
	}
	created, err := a.catalogService(c).CreateClass(middleware.GetActor(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newClassView(created))
}

func (a API) UpdateClass(c *gin.Context) {
	var in models.Class
	if !BindJSONOrError(c, &in) {
		return
	}
	updated, err := a.catalogService(c).UpdateClass(middleware.GetActor(c), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newClassView(updated))
}

func (a API) DeleteClass(c *gin.Context) {
	if err := a.catalogService(c).DeleteClass(middleware.GetActor(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// Courses

func (a API) ListCourses(c *gin.Context) {
	page, pageSize := pageParams(c)
	out, err := a.catalogService(c).ListCourses(c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewPage(out, newCourseView))
}

func (a API) GetCourse(c *gin.Context) {
	course, err := a.catalogService(c).GetCourse(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCourseView(course))
}

func (a API) CreateCourse(c *gin.Context) {
	var in models.Course
	if !BindJSONOrError(c, &in) {
		return
	}
	created, err := a.catalogService(c).CreateCourse(middleware.GetActor(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCourseView(created))
}

func (a API) UpdateCourse(c *gin.Context) {
	var in models.Course
	if !BindJSONOrError(c, &in) {
		return
	}
	updated, err := a.catalogService(c).UpdateCourse(middleware.GetActor(c), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCourseView(updated))
}

func (a API) DeleteCourse(c *gin.Context) {
	if err := a.catalogService(c).DeleteCourse(middleware.GetActor(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

func (a API) ListCourseSessions(c *gin.Context) {
	sessions, err := a.catalogService(c).ListSessions(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// Events

func (a API) ListEvents(c *gin.Context) {
	page, pageSize := pageParams(c)
	out, err := a.catalogService(c).ListEvents(c.Query("q"), page, pageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewPage(out, newEventView))
}

func (a API) GetEvent(c *gin.Context) {
	event, err := a.catalogService(c).GetEvent(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newEventView(event))
}

func (a API) CreateEvent(c *gin.Context) {
	var in models.Event
	if !BindJSONOrError(c, &in) {
		return
	}
	created, err := a.catalogService(c).CreateEvent(middleware.GetActor(c), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newEventView(created))
}

func (a API) UpdateEvent(c *gin.Context) {
	var in models.Event
	if !BindJSONOrError(c, &in) {
		return
	}
	updated, err := a.catalogService(c).UpdateEvent(middleware.GetActor(c), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, newEventView(updated))
}

func (a API) DeleteEvent(c *gin.Context) {
	if err := a.catalogService(c).DeleteEvent(middleware.GetActor(c), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
