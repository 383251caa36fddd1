package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/salon/backend/internal/application/catalog"
)

// CategoryHandler handles product category endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalog.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// Create registers a new category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

// Rename changes a category's name
func (h *CategoryHandler) Rename(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req catalog.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.categoryService.Rename(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a category
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
