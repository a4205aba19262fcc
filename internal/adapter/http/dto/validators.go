package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var methodNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]{0,31}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("method_name", validateMethodName)
	}
}

// validateMethodName allows short lowercase identifiers such as "sov".
func validateMethodName(fl validator.FieldLevel) bool {
	return methodNameRe.MatchString(fl.Field().String())
}
