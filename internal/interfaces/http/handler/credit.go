package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/application/credit"
)

// CreditHandler handles store credit endpoints
type CreditHandler struct {
	BaseHandler
	creditService *credit.CreditService
}

// NewCreditHandler creates a new CreditHandler
func NewCreditHandler(creditService *credit.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// Issue opens a new store credit
func (h *CreditHandler) Issue(c *gin.Context) {
	var req credit.IssueCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.creditService.Issue(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single credit with its payment history
func (h *CreditHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.creditService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns credits with pagination, status and search filters
func (h *CreditHandler) List(c *gin.Context) {
	var filter credit.CreditListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	credits, total, err := h.creditService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, credits, total, filter.Page, filter.PageSize)
}

// AddPayment records an installment against a credit
func (h *CreditHandler) AddPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req credit.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.creditService.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a credit. Credits with recorded payments are only
// removed when ?force=true.
func (h *CreditHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	force := c.Query("force") == "true"
	if err := h.creditService.Delete(c.Request.Context(), id, force); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
