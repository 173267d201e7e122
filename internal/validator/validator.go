// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("ledger_date", validateLedgerDate)
		_ = v.RegisterValidation("debt_status", validateDebtStatus)
		_ = v.RegisterValidation("debt_direction", validateDebtDirection)
	}
}

// validateLedgerDate accepts only zero-padded YYYY-MM-DD calendar dates.
// The fixed width is what makes lexicographic window comparisons valid,
// so anything looser is rejected at the boundary.
func validateLedgerDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validateDebtStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "paid":
		return true
	}
	return false
}

func validateDebtDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "gave", "owe":
		return true
	}
	return false
}
