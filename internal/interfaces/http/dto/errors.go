package dto

import (
	"net/http"
	"strings"
)

// Error codes surfaced by the API. Domain errors carry the same codes,
// so the mapping below drives the HTTP status of every failure.
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"

	ErrCodeAlreadyExists         = "ALREADY_EXISTS"
	ErrCodeInvalidInput          = "INVALID_INPUT"
	ErrCodeInvalidState          = "INVALID_STATE"
	ErrCodeInsufficientStock     = "INSUFFICIENT_STOCK"
	ErrCodeInsufficientFunds     = "INSUFFICIENT_FUNDS"
	ErrCodePaymentExceedsBalance = "PAYMENT_EXCEEDS_BALANCE"
	ErrCodeHasPayments           = "HAS_PAYMENTS"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeNotFound:     http.StatusNotFound,

	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeHasPayments:   http.StatusConflict,

	// Business rule violations -> 422 Unprocessable Entity
	ErrCodeInvalidState:          http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock:     http.StatusUnprocessableEntity,
	ErrCodeInsufficientFunds:     http.StatusUnprocessableEntity,
	ErrCodePaymentExceedsBalance: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Field-level validation codes all follow the INVALID_ prefix
// convention and map to 400; anything unrecognized is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
