package server

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rousage/coffeeshop/internal/appvalidator"
	"github.com/rousage/coffeeshop/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeDTO_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RecipeDTO
		wantErr  bool
	}{
		{name: "list", input: `[{"name":"milk","color":"#fff","parts":2},{"name":"espresso","color":"#3b2314","parts":1}]`, expected: RecipeDTO{{Name: "milk", Color: "#fff", Parts: 2}, {Name: "espresso", Color: "#3b2314", Parts: 1}}},
		{name: "single object", input: `{"name":"milk","color":"#fff","parts":2}`, expected: RecipeDTO{{Name: "milk", Color: "#fff", Parts: 2}}},
		{name: "empty list", input: `[]`, expected: RecipeDTO{}},
		{name: "null", input: `null`, expected: nil},
		{name: "string", input: `"milk"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var actual struct {
				Recipe RecipeDTO `json:"recipe"`
			}
			err := json.Unmarshal([]byte(`{"recipe":`+tt.input+`}`), &actual)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual.Recipe)
		})
	}
}

func TestCreateDrinkDTO_Validate(t *testing.T) {
	v := appvalidator.New()

	tests := []struct {
		name           string
		dto            CreateDrinkDTO
		expectedFields []string
	}{
		{name: "valid", dto: CreateDrinkDTO{Title: "Café au lait", Recipe: RecipeDTO{{Name: "milk", Color: "#fff", Parts: 1}}}},
		{name: "punctuation in title", dto: CreateDrinkDTO{Title: "latte!", Recipe: RecipeDTO{{Name: "milk", Color: "#fff", Parts: 1}}}},
		{name: "parentheses in title", dto: CreateDrinkDTO{Title: "Mocha (iced)", Recipe: RecipeDTO{{Name: "milk", Color: "#fff", Parts: 1}}}},
		{name: "empty recipe", dto: CreateDrinkDTO{Title: "hot water", Recipe: RecipeDTO{}}},
		{name: "free form color", dto: CreateDrinkDTO{Title: "latte", Recipe: RecipeDTO{{Name: "milk", Color: "white-ish", Parts: 1}}}},
		{name: "ingredient without name", dto: CreateDrinkDTO{Title: "latte", Recipe: RecipeDTO{{Color: "#fff", Parts: 1}}}},
		{name: "missing recipe", dto: CreateDrinkDTO{Title: "latte"}, expectedFields: []string{"recipe"}},
		{name: "missing title", dto: CreateDrinkDTO{Recipe: RecipeDTO{}}, expectedFields: []string{"title"}},
		{name: "title too long", dto: CreateDrinkDTO{Title: strings.Repeat("a", 81), Recipe: RecipeDTO{}}, expectedFields: []string{"title"}},
		{name: "control characters", dto: CreateDrinkDTO{Title: "latte\tmocha", Recipe: RecipeDTO{}}, expectedFields: []string{"title"}},
		{name: "too many parts", dto: CreateDrinkDTO{Title: "latte", Recipe: RecipeDTO{{Name: "milk", Color: "#fff", Parts: 1}, {Name: "milk", Color: "#fff", Parts: 1001}}}, expectedFields: []string{"recipe[1].parts"}},
		{name: "negative parts", dto: CreateDrinkDTO{Title: "latte", Recipe: RecipeDTO{{Name: "milk", Color: "#fff", Parts: -1}}}, expectedFields: []string{"recipe[0].parts"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.dto)
			if len(tt.expectedFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			fields := make([]string, 0)
			for _, fe := range v.FormatErrors(err) {
				fields = append(fields, fe.Field)
			}
			assert.ElementsMatch(t, tt.expectedFields, fields)
		})
	}
}

func TestToShort(t *testing.T) {
	drink := repository.Drink{
		ID:    3,
		Title: "cappuccino",
		Recipe: []repository.Ingredient{
			{Name: "espresso", Color: "#3b2314", Parts: 1},
			{Name: "foam", Color: "#fdfff5", Parts: 2},
		},
	}

	assert.Equal(t, ShortDrink{
		ID:     3,
		Title:  "cappuccino",
		Recipe: []ShortIngredient{{Color: "#3b2314", Parts: 1}, {Color: "#fdfff5", Parts: 2}},
	}, toShort(drink))
	assert.Equal(t, []repository.Ingredient{}, toLong(repository.Drink{ID: 4, Title: "water"}).Recipe)
}
