package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/application/catalog"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalog.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create registers a new product
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	resp, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns products with pagination and search
func (h *ProductHandler) List(c *gin.Context) {
	req, ok := bindListRequest(c)
	if !ok {
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), toFilter(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, req.Page, req.PageSize)
}

// ListLowStock returns products at or below their minimum stock level
func (h *ProductHandler) ListLowStock(c *gin.Context) {
	products, err := h.productService.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Update modifies a product's details
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req catalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AdjustStock sets a product's stock to an absolute count
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req catalog.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.productService.AdjustStock(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
