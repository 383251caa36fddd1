package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/salon/backend/internal/domain/shared/valueobject"
)

// RegisterCustomValidators installs domain-aware binding validators on
// gin's validator engine. Safe to call more than once.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return valueobject.PaymentMethod(fl.Field().String()).IsValid()
	})
}
