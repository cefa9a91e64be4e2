// Package service implements the administrative managers over the domain
// repositories. Services validate at record time so the calculation engine
// only ever sees domain-valid data.
package service

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/registrarhq/registrar/pkg/apperror"
)

var validate = validator.New()

// validateInput runs struct validation and converts the first failure into an
// operator-facing message
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required":
			return apperror.NewInvalidError(fe.Field() + " is required")
		case "min":
			return apperror.NewInvalidError(fe.Field() + " must be at least " + fe.Param() + " characters")
		case "email":
			return apperror.NewInvalidError("Valid email is required")
		default:
			return apperror.NewInvalidError(fe.Field() + " is invalid")
		}
	}
	return apperror.NewInvalidError(err.Error())
}

func today() string {
	return time.Now().Format("2006-01-02")
}
