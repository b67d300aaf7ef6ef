package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"surveyapi/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// ValidateStruct validates obj against its `validate` tags.
// Failures come back as *apperror.ValidationError carrying status.
func ValidateStruct(obj interface{}, status int) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	return &apperror.ValidationError{
		Status: status,
		Fields: FieldErrors(verrs),
	}
}

// FieldErrors converts validator errors into client-facing field errors.
func FieldErrors(verrs validator.ValidationErrors) []apperror.FieldError {
	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return fields
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

// BindError converts a request body decoding failure into a ValidationError carrying status.
// Wrong-typed fields are reported by their json name.
func BindError(err error, status int) *apperror.ValidationError {
	var ute *json.UnmarshalTypeError
	switch {
	case errors.As(err, &ute) && ute.Field != "":
		return apperror.NewValidationError(status, ute.Field, "type",
			fmt.Sprintf("%s has an invalid value (%s)", ute.Field, ute.Value))
	case errors.Is(err, io.EOF):
		return apperror.NewValidationError(status, "body", "required", "No input data provided")
	default:
		return apperror.NewValidationError(status, "body", "json",
			fmt.Sprintf("No valid input data provided: %v", err))
	}
}

// OutOfRangeNumber returns the literal of a numeric json value that does not fit field,
// such as a negative number for an unsigned id.
func OutOfRangeNumber(err error, field string) (string, bool) {
	var ute *json.UnmarshalTypeError
	if !errors.As(err, &ute) || ute.Field != field || !strings.HasPrefix(ute.Value, "number") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(ute.Value, "number")), true
}
