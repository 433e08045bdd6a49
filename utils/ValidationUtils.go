package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/euscan/euscanwww/exception"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// ValidateObject checks the `validate` struct tags of obj and converts failures into a 400 CustomError.
func ValidateObject(obj interface{}) error {
	err := getValidator().Struct(obj)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.ValidationFailed,
		Message: exception.ValidationFailedMsg,
		Params:  map[string]interface{}{"errors": strings.Join(messages, "; ")},
	}
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "email":
		return field + " must be a valid email"
	case "alphanum":
		return field + " must contain only letters and digits"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
