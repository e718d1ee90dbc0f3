package appvalidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDrinkTitle(t *testing.T) {
	type drink struct {
		Title string `validate:"drinktitle"`
	}

	tests := []struct {
		name     string
		value    drink
		expected bool
	}{
		{name: "valid alpha", value: drink{Title: "latte"}, expected: true},
		{name: "valid with spaces", value: drink{Title: "Flat White"}, expected: true},
		{name: "valid with punctuation", value: drink{Title: "Mocha & Cream"}, expected: true},
		{name: "valid unicode", value: drink{Title: "Café Crème"}, expected: true},
		{name: "valid with parentheses", value: drink{Title: "Mocha (iced)"}, expected: true},
		{name: "valid with symbols", value: drink{Title: "Coffee #2!"}, expected: true},
		{name: "valid with markup", value: drink{Title: "<script>"}, expected: true},
		{name: "valid with surrounding spaces", value: drink{Title: " latte "}, expected: true},
		{name: "empty", value: drink{Title: ""}, expected: false},
		{name: "blank", value: drink{Title: "   "}, expected: false},
		{name: "newline", value: drink{Title: "latte\nmocha"}, expected: false},
		{name: "null byte", value: drink{Title: "latte\x00"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validate := New()
			err := validate.Validate(tt.value)

			errors := validate.FormatErrors(err)
			if tt.expected {
				assert.NoError(t, err)
				assert.Len(t, errors, 0, "got no errors")
			} else {
				assert.Error(t, err)
				assert.Len(t, errors, 1, "got more than one error")
				assert.Equal(t, "Title cannot be blank or contain control characters", errors[0].Message, "wrong error message")
				assert.Equal(t, "title", errors[0].Field, "wrong error field")
			}
		})
	}
}

func TestFormatErrors(t *testing.T) {
	type tenant struct {
		Domain   string `json:"domain" validate:"required,hostname_rfc1123"`
		ClientID string `json:"clientId" validate:"required,alphanum"`
		Parts    int    `json:"parts" validate:"min=1,max=10"`
		Name     string `validate:"required"`
	}

	validate := New()
	err := validate.Validate(tenant{Domain: "not a host", ClientID: "client-id", Parts: 0})

	assert.Error(t, err)
	assert.Equal(t, ValidationError{
		"domain":   "domain must be a hostname",
		"clientId": "clientId must contain only letters and digits",
		"parts":    "parts must be at least 1",
		"name":     "name is required",
	}, validate.Map(err))
}

func TestFormatErrors_NestedPaths(t *testing.T) {
	type ingredient struct {
		Name  string `json:"name" validate:"required"`
		Parts int    `json:"parts" validate:"max=10"`
	}
	type drink struct {
		Recipe []ingredient `json:"recipe" validate:"dive"`
		Extra  struct {
			Note string `json:"note" validate:"max=3"`
		} `json:"extra"`
	}

	validate := New()
	value := drink{Recipe: []ingredient{{Name: "milk", Parts: 11}, {Parts: 12}}}
	value.Extra.Note = "too long"
	err := validate.Validate(value)

	assert.Error(t, err)
	assert.Equal(t, ValidationError{
		"recipe[0].parts": "parts must be at most 10",
		"recipe[1].name":  "name is required",
		"recipe[1].parts": "parts must be at most 10",
		"extra.note":      "note must be at most 3",
	}, validate.Map(err))
}

func TestFormatErrors_NotValidation(t *testing.T) {
	validate := New()

	assert.Nil(t, validate.FormatErrors(nil))
	assert.Empty(t, validate.Map(assert.AnError))
}
