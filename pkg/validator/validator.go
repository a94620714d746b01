package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneNumberPattern = regexp.MustCompile(`^\+?[0-9\s\-()]{7,20}$`)
	numericCodePattern = regexp.MustCompile(`^\d+$`)
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs json tag names and the custom rules on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("phonenumber", phoneNumberValidator); err != nil {
		log.Fatal("register phonenumber validator failed")
	}
	if err := v.RegisterValidation("numericcode", numericCodeValidator); err != nil {
		log.Fatal("register numericcode validator failed")
	}
}

// phoneNumberValidator is deliberately loose: digits with optional +, spaces, dashes and parentheses.
var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return phoneNumberPattern.MatchString(fl.Field().String())
}

var numericCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return numericCodePattern.MatchString(fl.Field().String())
}
