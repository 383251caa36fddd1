package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/application/partner"
)

// ClientHandler handles client directory endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partner.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partner.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req partner.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single client
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.clientService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns clients with pagination and search
func (h *ClientHandler) List(c *gin.Context) {
	req, ok := bindListRequest(c)
	if !ok {
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, clients)
}

// Update modifies a client's details
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req partner.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a client
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// StaffHandler handles staff directory endpoints
type StaffHandler struct {
	BaseHandler
	staffService *partner.StaffService
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffService *partner.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// Create registers a new staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var req partner.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.staffService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single staff member
func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.staffService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns staff members with pagination and search
func (h *StaffHandler) List(c *gin.Context) {
	req, ok := bindListRequest(c)
	if !ok {
		return
	}

	staff, err := h.staffService.List(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, staff)
}

// Update modifies a staff member's details
func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req partner.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.staffService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a staff member
func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.staffService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
