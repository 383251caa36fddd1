package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/application/finance"
)

// ExpenseHandler handles operating expense endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *finance.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *finance.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create records an operating expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req finance.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns expenses with pagination and search
func (h *ExpenseHandler) List(c *gin.Context) {
	req, ok := bindListRequest(c)
	if !ok {
		return
	}

	expenses, total, err := h.expenseService.List(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, expenses, total, req.Page, req.PageSize)
}

// Update modifies an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req finance.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.expenseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// PettyCashHandler handles petty cash drawer endpoints
type PettyCashHandler struct {
	BaseHandler
	pettyCashService *finance.PettyCashService
}

// NewPettyCashHandler creates a new PettyCashHandler
func NewPettyCashHandler(pettyCashService *finance.PettyCashService) *PettyCashHandler {
	return &PettyCashHandler{pettyCashService: pettyCashService}
}

// AddMovement records a drawer movement. Expenses that would overdraw
// the drawer are rejected.
func (h *PettyCashHandler) AddMovement(c *gin.Context) {
	var req finance.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.pettyCashService.AddMovement(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Status returns the drawer balance with its movement history
func (h *PettyCashHandler) Status(c *gin.Context) {
	status, err := h.pettyCashService.Status(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, status)
}

// DeleteMovement removes a single movement
func (h *PettyCashHandler) DeleteMovement(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.pettyCashService.DeleteMovement(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Clear resets the drawer, deleting all movements
func (h *PettyCashHandler) Clear(c *gin.Context) {
	if err := h.pettyCashService.Clear(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
