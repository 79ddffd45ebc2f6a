package utilities

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3,8}$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Warn().Msg("gin validator engine is not go-playground validator, custom tags not registered")
		return
	}
	if err := v.RegisterValidation("currency", validCurrency); err != nil {
		log.Error().Err(err).Msg("Failed to register currency validator")
	}
}

// validCurrency accepts upper case currency codes like PLN, EUR or USDT
func validCurrency(fl validator.FieldLevel) bool {
	return currencyPattern.MatchString(fl.Field().String())
}

// ValidCurrency reports whether code is accepted as offer currency
func ValidCurrency(code string) bool {
	return currencyPattern.MatchString(code)
}
