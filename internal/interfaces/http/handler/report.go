package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/application/report"
)

// ReportHandler handles financial and operational report endpoints
type ReportHandler struct {
	BaseHandler
	financialService *report.FinancialReportService
	creditService    *report.CreditReportService
	inventoryService *report.InventoryReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(
	financialService *report.FinancialReportService,
	creditService *report.CreditReportService,
	inventoryService *report.InventoryReportService,
) *ReportHandler {
	return &ReportHandler{
		financialService: financialService,
		creditService:    creditService,
		inventoryService: inventoryService,
	}
}

// IncomeStatement returns the income statement for a date window
func (h *ReportHandler) IncomeStatement(c *gin.Context) {
	var filter report.DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	statement, err := h.financialService.IncomeStatement(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, statement)
}

// CreditProfitability returns the credit collection and profit report
func (h *ReportHandler) CreditProfitability(c *gin.Context) {
	var filter report.DateRangeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.creditService.Profitability(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// InventoryValuation returns the stock valuation report
func (h *ReportHandler) InventoryValuation(c *gin.Context) {
	resp, err := h.inventoryService.Valuation(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
