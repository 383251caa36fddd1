package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/application/scheduling"
)

// AppointmentHandler handles appointment book endpoints
type AppointmentHandler struct {
	BaseHandler
	appointmentService *scheduling.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(appointmentService *scheduling.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// Create books an appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req scheduling.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.appointmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single appointment
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.appointmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns appointments, optionally bounded to a date window
func (h *AppointmentHandler) List(c *gin.Context) {
	from, ok := h.parseDate(c, "from")
	if !ok {
		return
	}
	to, ok := h.parseDate(c, "to")
	if !ok {
		return
	}

	appointments, err := h.appointmentService.List(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, appointments)
}

// Reschedule moves an appointment to a new time
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req scheduling.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.appointmentService.Reschedule(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Complete marks an appointment as attended
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.appointmentService.Complete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel marks an appointment as cancelled
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.appointmentService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an appointment
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.appointmentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AppointmentHandler) parseDate(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}
