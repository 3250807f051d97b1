package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NotBlankTag rejects strings that are empty after trimming whitespace.
const NotBlankTag = "notblank"

var registerOnce sync.Once

// RegisterRules adds the custom rules to a validator instance.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(NotBlankTag, notBlank)
}

// RegisterGinValidators registers the custom rules on gin's binding validator.
// Safe to call more than once.
func RegisterGinValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		err = RegisterRules(v)
	})
	return err
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
