package httpx

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"gamehub/internal/platform/crypto"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password_strength", validatePasswordStrength)
}

func validatePasswordStrength(fl validator.FieldLevel) bool {
	return crypto.ValidatePasswordStrength(fl.Field().String()) == nil
}

// ValidateStruct runs the struct validation tags and converts failures
// into response-ready details.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, param)
		case "password_strength":
			message = fmt.Sprintf("%s must be at least 8 characters with uppercase, lowercase, number, and special character", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
