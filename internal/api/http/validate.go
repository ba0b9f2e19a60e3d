package http

import (
	"regexp"
	"time"

	"github.com/go-playground/validator"
)

var (
	// Old format ABC-123 or new format AB-123-CD, upper or lower case.
	plateRegexp = regexp.MustCompile(`(?i)^([A-Z]{3}-\d{3}|[A-Z]{2}-\d{3}-[A-Z]{2})$`)
	dniRegexp   = regexp.MustCompile(`^\d{8}$`)
)

// newValidator builds the request validator with the domain-specific rules
// shared by all handlers.
func newValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("plate", func(fl validator.FieldLevel) bool {
		return plateRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("dni", func(fl validator.FieldLevel) bool {
		return dniRegexp.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	return v
}
