package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodePattern accepts uppercase alphabetic codes of 3 to 5 letters.
// The fallback table uses the 4-letter "EURO" spelling, so strict ISO len=3
// would reject valid data.
var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3,5}$`)

// RegisterValidations installs custom binding validations on Gin's validator
// engine. Must be called once before routes are served.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})
}
