package appvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Any printable text with at least one non-space character
var drinkTitle = regexp.MustCompile(`^[^\p{Cc}]*[^\p{Cc}\s][^\p{Cc}]*$`)

func ValidateDrinkTitle(fl validator.FieldLevel) bool {
	return drinkTitle.MatchString(fl.Field().String())
}
