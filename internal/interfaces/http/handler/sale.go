package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/salon/backend/internal/application/sales"
)

// SaleHandler handles sales transaction endpoints
type SaleHandler struct {
	BaseHandler
	salesService *sales.SalesService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(salesService *sales.SalesService) *SaleHandler {
	return &SaleHandler{salesService: salesService}
}

// Create records a sale, decrementing stock atomically
func (h *SaleHandler) Create(c *gin.Context) {
	var req sales.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.salesService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single sale with its items
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.salesService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns sales with pagination, staff and status filters
func (h *SaleHandler) List(c *gin.Context) {
	var filter sales.SaleListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	saleList, total, err := h.salesService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, saleList, total, filter.Page, filter.PageSize)
}

// Cancel voids a sale and restores the stock it consumed
func (h *SaleHandler) Cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.salesService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddCommissionDiscount applies a commission deduction across all of a
// staff member's completed sales
func (h *SaleHandler) AddCommissionDiscount(c *gin.Context) {
	var req sales.AddCommissionDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	affected, err := h.salesService.AddCommissionDiscount(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"affected_sales": affected})
}

// ClearStaffCommissions resets commission discounts on all of a staff
// member's sales
func (h *SaleHandler) ClearStaffCommissions(c *gin.Context) {
	staffID, ok := h.parseStaffID(c)
	if !ok {
		return
	}

	affected, err := h.salesService.ClearStaffCommissions(c.Request.Context(), staffID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"affected_sales": affected})
}

// GetStaffCommissionSummary returns the commission breakdown for one
// staff member
func (h *SaleHandler) GetStaffCommissionSummary(c *gin.Context) {
	staffID, ok := h.parseStaffID(c)
	if !ok {
		return
	}

	summary, err := h.salesService.GetStaffCommissionSummary(c.Request.Context(), staffID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

func (h *SaleHandler) parseStaffID(c *gin.Context) (uuid.UUID, bool) {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		h.BadRequest(c, "Invalid staff ID format")
		return uuid.Nil, false
	}
	return staffID, true
}
