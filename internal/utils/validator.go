// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("rating", validateRating)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Product ratings follow the 0.0-5.0 convention of the catalog.
func validateRating(fl validator.FieldLevel) bool {
	rating := fl.Field().Float()
	return rating >= 0.0 && rating <= 5.0
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "uuid":
		return e.Field() + " must be a valid UUID"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "rating":
		return e.Field() + " must be between 0.0 and 5.0"
	default:
		return e.Field() + " is invalid"
	}
}
