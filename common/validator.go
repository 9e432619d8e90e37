package common

import (
	"encoding/json"
	"net/http"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// userpassword: 8-25 chars with at least one lowercase letter,
	// one uppercase letter and one digit.
	v.RegisterValidation("userpassword", validateUserPassword)
	return v
}

func validateUserPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 25 {
		return false
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLower && hasUpper && hasDigit
}

// ValidateAndDecode decodes the JSON body into payload and runs the shared
// validator over it. Returns a 400 AppError describing the first problem, or
// nil when the payload is well-formed.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewValidationError("Invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return NewValidationError(validationErrors.Error(), err)
		}
		return NewValidationError("Invalid request body", err)
	}

	return nil
}

// ValidateStruct runs the shared validator over an already-populated payload,
// for handlers that read form fields instead of a JSON body.
func ValidateStruct(payload interface{}) *AppError {
	if err := validate.Struct(payload); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return NewValidationError(validationErrors.Error(), err)
		}
		return NewValidationError("Invalid request", err)
	}
	return nil
}
