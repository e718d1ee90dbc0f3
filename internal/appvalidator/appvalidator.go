package appvalidator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failed validation in a form suitable for API clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError maps a field name to its error message.
type ValidationError map[string]string

type AppValidator struct {
	validator *validator.Validate
}

func New() *AppValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("drinktitle", ValidateDrinkTitle)

	return &AppValidator{
		validator: v,
	}
}

func (av *AppValidator) Validate(i interface{}) error {
	if err := av.validator.Struct(i); err != nil {
		return err
	}

	return nil
}

func (av *AppValidator) FormatErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	result := make([]FieldError, len(validationErrors))
	for i, fe := range validationErrors {
		result[i] = FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		}
	}

	return result
}

// Map flattens formatted errors into a ValidationError.
func (av *AppValidator) Map(err error) ValidationError {
	formatted := av.FormatErrors(err)
	result := make(ValidationError, len(formatted))
	for _, fe := range formatted {
		result[fe.Field] = fe.Message
	}

	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "http_url":
		return fmt.Sprintf("%s must be an absolute http(s) URL", fe.Field())
	case "hostname_rfc1123":
		return fmt.Sprintf("%s must be a hostname", fe.Field())
	case "alphanum":
		return fmt.Sprintf("%s must contain only letters and digits", fe.Field())
	case "drinktitle":
		return "Title cannot be blank or contain control characters"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// fieldPath is the namespace without the root struct, e.g. recipe[1].color
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}

	return path
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name != "" {
		return name
	}

	runes := []rune(fld.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
