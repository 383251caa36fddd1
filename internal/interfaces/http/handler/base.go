package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/salon/backend/internal/domain/shared"
	"github.com/salon/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message))
}

// HandleError converts domain errors to HTTP responses. Unknown error
// types are reported as internal errors without leaking details.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewErrorResponse(domainErr.Code, domainErr.Message))
		return
	}

	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred"))
}

// parseID parses the :id path parameter as a UUID
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, "Invalid ID format"))
		return uuid.Nil, false
	}
	return id, true
}

// bindListRequest binds pagination query parameters with defaults
func bindListRequest(c *gin.Context) (dto.ListRequest, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error()))
		return req, false
	}
	req.Normalize()
	return req, true
}

// toFilter converts a list request into a repository filter
func toFilter(req dto.ListRequest) shared.Filter {
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}
}
