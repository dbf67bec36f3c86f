// Package validator provides custom validation functions for Gin's binding
// engine and a shared standalone validator for internal payloads.
package validator

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// tickerRegex accepts equities (AAPL, BRK-B, BRK.B), indices (^GSPC),
// currencies (EURUSD=X) and futures (ES=F).
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9.\-=^]{1,20}$`)

var (
	standalone     *validator.Validate
	standaloneOnce sync.Once
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustom(v)
	}
}

// Struct validates s outside of a request binding, using the same custom
// rules as Register.
func Struct(s any) error {
	standaloneOnce.Do(func() {
		standalone = validator.New(validator.WithRequiredStructEnabled())
		registerCustom(standalone)
	})
	return standalone.Struct(s)
}

// IsTicker reports whether s is a syntactically valid ticker symbol.
func IsTicker(s string) bool {
	return tickerRegex.MatchString(s)
}

func registerCustom(v *validator.Validate) {
	_ = v.RegisterValidation("ticker", validateTicker)
}

func validateTicker(fl validator.FieldLevel) bool {
	return IsTicker(fl.Field().String())
}
