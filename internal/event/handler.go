package event

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/internal/apperror"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// CreateEvent godoc
// @Summary Schedule a new event
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event details"
// @Success 201 {object} Event
// @Router /events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}
	created, err := h.Service.Create(c.Request.Context(), CreateInput(req), c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param search query string false "Search over name, description and venue"
// @Param status query string false "upcoming, completed or cancelled"
// @Param sortBy query string false "Sort key: date, name or attendees"
// @Param order query string false "asc or desc"
// @Success 200 {array} Event
// @Router /events [get]
func (h *Handler) GetEvents(c *gin.Context) {
	events, err := h.Service.List(c.Query("search"), c.Query("status"), c.Query("sortBy"), c.Query("order"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetUpcomingEvents godoc
// @Summary List upcoming events, soonest first
// @Tags events
// @Produce json
// @Success 200 {array} Event
// @Router /events/upcoming [get]
func (h *Handler) GetUpcomingEvents(c *gin.Context) {
	events, err := h.Service.Upcoming()
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} Event
// @Router /events/{id} [get]
func (h *Handler) GetEvent(c *gin.Context) {
	e, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// GetClubEvents godoc
// @Summary List a club's events
// @Tags events
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {array} Event
// @Router /clubs/{id}/events [get]
func (h *Handler) GetClubEvents(c *gin.Context) {
	events, err := h.Service.ListByClub(c.Param("id"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// UpdateEvent godoc
// @Summary Update event details
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} Event
// @Router /events/{id} [put]
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), req, c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Router /events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP()); err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// AttendEvent godoc
// @Summary Register attendance for an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} Event
// @Router /events/{id}/attend [post]
func (h *Handler) AttendEvent(c *gin.Context) {
	e, err := h.Service.Attend(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// CancelAttendance godoc
// @Summary Withdraw attendance from an event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} Event
// @Router /events/{id}/cancel-attendance [post]
func (h *Handler) CancelAttendance(c *gin.Context) {
	e, err := h.Service.CancelAttendance(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
