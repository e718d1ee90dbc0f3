package repository

import (
	"context"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rousage/coffeeshop/internal/database"
	"github.com/rousage/coffeeshop/internal/testhelpers"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

var latte = []Ingredient{
	{Name: "espresso", Color: "#3b2417", Parts: 1},
	{Name: "milk", Color: "#f5f5dc", Parts: 3},
}

type DrinkTestSuite struct {
	suite.Suite
	container *testhelpers.PostgresContainer
	db        *pgxpool.Pool
	queries   *Queries
	ctx       context.Context
}

func (suite *DrinkTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	// Create a new postgres container for the whole test suite
	pgContainer, err := testhelpers.CreatePostgresContainer(suite.ctx)
	suite.Require().NoError(err, "could not start postgres container")

	// Migrate once, then snapshot the DB to restore it later
	logger := zerolog.New(io.Discard)
	database.Connect(logger, pgContainer.DatabaseConfig).Close()

	err = pgContainer.Snapshot(suite.ctx)
	suite.Require().NoError(err)

	suite.container = pgContainer
}

func (suite *DrinkTestSuite) TearDownSuite() {
	err := suite.container.Terminate(suite.ctx)
	suite.Require().NoError(err, "error terminating postgres container")
}

func (suite *DrinkTestSuite) SetupTest() {
	logger := zerolog.New(io.Discard)
	suite.db = database.Connect(logger, suite.container.DatabaseConfig)
	suite.queries = New(suite.db)
}

func (suite *DrinkTestSuite) TearDownTest() {
	// Restore the DB after each test to have a clean state
	suite.db.Close()
	err := suite.container.Restore(suite.ctx)
	suite.Require().NoError(err)
}

func (suite *DrinkTestSuite) TestCreateDrink() {
	t := suite.T()

	tests := []struct {
		name   string
		params CreateDrinkParams
	}{
		{name: "drink with recipe", params: CreateDrinkParams{Title: "latte", Recipe: latte}},
		{name: "drink with single ingredient", params: CreateDrinkParams{Title: "water", Recipe: []Ingredient{{Name: "water", Color: "#a0d8ef", Parts: 1}}}},
		{name: "drink without recipe", params: CreateDrinkParams{Title: "mystery"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drink, err := suite.queries.CreateDrink(suite.ctx, tt.params)
			assert.NoError(t, err)
			assert.NotZero(t, drink.ID)
			assert.Equal(t, tt.params.Title, drink.Title)
			assert.Equal(t, nonNil(tt.params.Recipe), drink.Recipe)
			assert.False(t, drink.CreatedAt.IsZero())
		})
	}

	_, err := suite.queries.CreateDrink(suite.ctx, CreateDrinkParams{Title: "latte", Recipe: latte})
	if assert.Error(t, err) {
		assert.True(t, suite.queries.IsDuplicateKeyError(err), "expected a duplicate key error")
	}
}

func (suite *DrinkTestSuite) TestListDrinks() {
	drinks, err := suite.queries.ListDrinks(suite.ctx)
	suite.NoError(err)
	suite.Empty(drinks)

	for _, title := range []string{"latte", "mocha", "cappuccino"} {
		_, err := suite.queries.CreateDrink(suite.ctx, CreateDrinkParams{Title: title, Recipe: latte})
		suite.Require().NoError(err)
	}

	drinks, err = suite.queries.ListDrinks(suite.ctx)
	suite.NoError(err)
	suite.Len(drinks, 3)
	suite.Equal("latte", drinks[0].Title, "drinks should be ordered by id")
	suite.Equal("cappuccino", drinks[2].Title, "drinks should be ordered by id")
}

func (suite *DrinkTestSuite) TestGetDrink() {
	_, err := suite.queries.GetDrink(suite.ctx, 1)
	suite.True(suite.queries.IsNotFoundError(err), "expected not found error")

	created, err := suite.queries.CreateDrink(suite.ctx, CreateDrinkParams{Title: "latte", Recipe: latte})
	suite.Require().NoError(err)

	drink, err := suite.queries.GetDrink(suite.ctx, created.ID)
	suite.NoError(err)
	suite.Equal(created.Title, drink.Title)
	suite.Equal(latte, drink.Recipe)
}

func (suite *DrinkTestSuite) TestUpdateDrink() {
	t := suite.T()

	created, err := suite.queries.CreateDrink(suite.ctx, CreateDrinkParams{Title: "latte", Recipe: latte})
	suite.Require().NoError(err)
	_, err = suite.queries.CreateDrink(suite.ctx, CreateDrinkParams{Title: "mocha", Recipe: latte})
	suite.Require().NoError(err)

	flatWhite := "flat white"
	mocha := "mocha"
	strong := []Ingredient{{Name: "espresso", Color: "#3b2417", Parts: 2}}

	tests := []struct {
		name           string
		params         UpdateDrinkParams
		expectedTitle  string
		expectedRecipe []Ingredient
		expectedErr    func(error) bool
	}{
		{name: "nothing to update", params: UpdateDrinkParams{ID: created.ID}, expectedTitle: "latte", expectedRecipe: latte},
		{name: "update title", params: UpdateDrinkParams{ID: created.ID, Title: &flatWhite}, expectedTitle: flatWhite, expectedRecipe: latte},
		{name: "update recipe", params: UpdateDrinkParams{ID: created.ID, Recipe: strong}, expectedTitle: flatWhite, expectedRecipe: strong},
		{name: "duplicate title", params: UpdateDrinkParams{ID: created.ID, Title: &mocha}, expectedErr: suite.queries.IsDuplicateKeyError},
		{name: "missing drink", params: UpdateDrinkParams{ID: 9999, Title: &flatWhite}, expectedErr: suite.queries.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drink, err := suite.queries.UpdateDrink(suite.ctx, tt.params)
			if tt.expectedErr != nil {
				assert.True(t, tt.expectedErr(err), "unexpected error: %v", err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTitle, drink.Title)
			assert.Equal(t, tt.expectedRecipe, drink.Recipe)
		})
	}
}

func (suite *DrinkTestSuite) TestDeleteDrink() {
	t := suite.T()

	created, err := suite.queries.CreateDrink(suite.ctx, CreateDrinkParams{Title: "latte", Recipe: latte})
	suite.Require().NoError(err)

	tests := []struct {
		name                 string
		id                   int32
		expectedRowsAffected int64
	}{
		{name: "delete non-existing drink", id: 9999, expectedRowsAffected: 0},
		{name: "delete existing drink", id: created.ID, expectedRowsAffected: 1},
		{name: "delete the same drink again", id: created.ID, expectedRowsAffected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rowsAffected, err := suite.queries.DeleteDrink(suite.ctx, tt.id)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedRowsAffected, rowsAffected)
		})
	}
}

func TestDrinkTestSuite(t *testing.T) {
	suite.Run(t, new(DrinkTestSuite))
}
