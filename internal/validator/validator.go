// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_reason", validateExpenseReason)
	}
}

func validateExpenseReason(fl validator.FieldLevel) bool {
	return models.ExpenseReason(fl.Field().String()).Valid()
}
