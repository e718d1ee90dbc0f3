package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rousage/coffeeshop/internal/repository"
)

var sampleDrink = repository.CreateDrinkParams{
	Title: "coffe1",
	Recipe: []repository.Ingredient{
		{Name: "latte", Color: "#334455", Parts: 2},
	},
}

// seedDatabaseHandler godoc
//
//	@Summary		Seed the database
//	@Description	Inserts a sample drink. Only available in development mode
//	@Tags			Development
//	@Produce		json
//	@Success		200	{object}	LongDrinksResponse	"Seeded drink"
//	@Failure		422	{object}	HTTPError			"Already seeded"
//	@Router			/seed-database [post]
func (s *Server) seedDatabaseHandler(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "drinks.Seed")
	defer span.End()

	rep := repository.New(s.db)
	drink, err := rep.CreateDrink(ctx, sampleDrink)
	if err != nil {
		if rep.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "database already seeded").WithInternal(err)
		}

		return echo.ErrInternalServerError.WithInternal(err)
	}

	s.drinksChanged(ctx, c, drink.ID, "seed")

	return c.JSON(http.StatusOK, LongDrinksResponse{Success: true, Drinks: []LongDrink{toLong(drink)}})
}
