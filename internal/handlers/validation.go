package handlers

import (
	"reflect"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// cuitPattern accepts 11 digits, optionally written as XX-XXXXXXXX-X.
var cuitPattern = regexp.MustCompile(`^\d{2}-?\d{8}-?\d$`)

// registerValidators teaches gin's validator about decimal amounts, so that
// gt/gte tags apply to them, and adds the "cuit" tag.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("cuit", validateCUIT)
	})
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validateCUIT(fl validator.FieldLevel) bool {
	return cuitPattern.MatchString(fl.Field().String())
}
