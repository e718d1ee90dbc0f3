package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rousage/coffeeshop/internal/auth"
	"github.com/rousage/coffeeshop/internal/repository"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// IngredientDTO only bounds sizes, the menu renders whatever it is given
type IngredientDTO struct {
	Name  string `json:"name" validate:"max=80"`
	Color string `json:"color" validate:"max=40"`
	Parts int    `json:"parts" validate:"min=0,max=1000"`
}

// RecipeDTO accepts either a single ingredient object or a list of them.
type RecipeDTO []IngredientDTO

func (r *RecipeDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = nil
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var single IngredientDTO
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*r = RecipeDTO{single}
		return nil
	}

	var list []IngredientDTO
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*r = list

	return nil
}

func (r RecipeDTO) ingredients() []repository.Ingredient {
	if r == nil {
		return nil
	}

	result := make([]repository.Ingredient, len(r))
	for i, ingredient := range r {
		result[i] = repository.Ingredient(ingredient)
	}

	return result
}

type CreateDrinkDTO struct {
	Title  string    `json:"title" validate:"required,max=80,drinktitle"`
	Recipe RecipeDTO `json:"recipe" validate:"required,dive"`
}

type UpdateDrinkDTO struct {
	Title  *string   `json:"title" validate:"omitempty,max=80,drinktitle"`
	Recipe RecipeDTO `json:"recipe" validate:"omitempty,dive"`
}

// ShortIngredient hides the ingredient names from the public menu
type ShortIngredient struct {
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

type ShortDrink struct {
	ID     int32             `json:"id"`
	Title  string            `json:"title"`
	Recipe []ShortIngredient `json:"recipe"`
}

type LongDrink struct {
	ID     int32                   `json:"id"`
	Title  string                  `json:"title"`
	Recipe []repository.Ingredient `json:"recipe"`
}

type ShortDrinksResponse struct {
	Success bool         `json:"success" example:"true"`
	Drinks  []ShortDrink `json:"drinks"`
}

type LongDrinksResponse struct {
	Success bool        `json:"success" example:"true"`
	Drinks  []LongDrink `json:"drinks"`
}

type DeleteDrinkResponse struct {
	Success bool  `json:"success" example:"true"`
	Delete  int32 `json:"delete" example:"1"`
}

func toShort(drink repository.Drink) ShortDrink {
	recipe := make([]ShortIngredient, len(drink.Recipe))
	for i, ingredient := range drink.Recipe {
		recipe[i] = ShortIngredient{Color: ingredient.Color, Parts: ingredient.Parts}
	}

	return ShortDrink{ID: drink.ID, Title: drink.Title, Recipe: recipe}
}

func toLong(drink repository.Drink) LongDrink {
	recipe := drink.Recipe
	if recipe == nil {
		recipe = []repository.Ingredient{}
	}

	return LongDrink{ID: drink.ID, Title: drink.Title, Recipe: recipe}
}

// getDrinksHandler godoc
//
//	@Summary		List drinks
//	@Description	Public menu: every drink with the short recipe representation
//	@Tags			Drinks
//	@Produce		json
//	@Success		200	{object}	ShortDrinksResponse	"Drinks"
//	@Failure		404	{object}	HTTPError			"No drinks yet"
//	@Failure		500	{object}	HTTPError			"Internal server error"
//	@Router			/drinks [get]
func (s *Server) getDrinksHandler(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "drinks.List")
	defer span.End()

	// The generation is read before the database so a menu built from rows
	// that a concurrent write replaced is stored under an outdated key
	version, versionErr := s.cache.MenuVersion(ctx)
	if versionErr != nil {
		s.logger.Warn().Err(versionErr).Msg("failed to get drinks menu version from cache")
	} else {
		menu, err := s.cache.GetMenu(ctx, version)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to get drinks menu from cache")
		}
		if menu != "" {
			span.SetAttributes(attribute.Bool("cached", true))
			return c.JSONBlob(http.StatusOK, []byte(menu))
		}
	}

	rep := repository.New(s.db)
	drinks, err := rep.ListDrinks(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to list drinks")
		span.RecordError(err)
		return echo.ErrInternalServerError.WithInternal(err)
	}
	if len(drinks) == 0 {
		return echo.ErrNotFound
	}

	response := ShortDrinksResponse{Success: true, Drinks: make([]ShortDrink, len(drinks))}
	for i, drink := range drinks {
		response.Drinks[i] = toShort(drink)
	}

	body, err := json.Marshal(response)
	if err != nil {
		return echo.ErrInternalServerError.WithInternal(err)
	}

	if versionErr == nil {
		if key, err := s.cache.SetMenu(ctx, version, string(body)); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("failed to cache drinks menu")
		}
	}

	return c.JSONBlob(http.StatusOK, body)
}

// getDrinksDetailHandler godoc
//
//	@Summary		List drinks with recipes
//	@Description	Every drink with the full recipe representation
//	@Tags			Drinks
//	@Produce		json
//	@Success		200	{object}	LongDrinksResponse	"Drinks"
//	@Failure		401	{object}	HTTPError			"Unauthorized"
//	@Failure		403	{object}	HTTPError			"Forbidden"
//	@Failure		500	{object}	HTTPError			"Internal server error"
//	@Security		BearerAuth
//	@Router			/drinks-detail [get]
func (s *Server) getDrinksDetailHandler(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "drinks.ListDetail")
	defer span.End()

	rep := repository.New(s.db)
	drinks, err := rep.ListDrinks(ctx)
	if err != nil {
		span.SetStatus(codes.Error, "failed to list drinks")
		span.RecordError(err)
		return echo.ErrInternalServerError.WithInternal(err)
	}

	response := LongDrinksResponse{Success: true, Drinks: make([]LongDrink, len(drinks))}
	for i, drink := range drinks {
		response.Drinks[i] = toLong(drink)
	}

	return c.JSON(http.StatusOK, response)
}

// createDrinkHandler godoc
//
//	@Summary		Create a drink
//	@Description	The recipe may be a single ingredient or a list of ingredients
//	@Tags			Drinks
//	@Accept			json
//	@Produce		json
//	@Param			drink	body		CreateDrinkDTO		true	"Drink"
//	@Success		200		{object}	LongDrinksResponse	"Created drink"
//	@Failure		400		{object}	HTTPValidationError	"Validation failed"
//	@Failure		401		{object}	HTTPError			"Unauthorized"
//	@Failure		403		{object}	HTTPError			"Forbidden"
//	@Failure		422		{object}	HTTPError			"Title already taken"
//	@Failure		500		{object}	HTTPError			"Internal server error"
//	@Security		BearerAuth
//	@Router			/drinks [post]
func (s *Server) createDrinkHandler(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "drinks.Create")
	defer span.End()

	dto := new(CreateDrinkDTO)
	if err := c.Bind(dto); err != nil {
		span.SetStatus(codes.Error, "failed to bind request")
		span.RecordError(err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(dto); err != nil {
		return s.failedValidationError(c, err)
	}

	rep := repository.New(s.db)
	drink, err := rep.CreateDrink(ctx, repository.CreateDrinkParams{
		Title:  dto.Title,
		Recipe: dto.Recipe.ingredients(),
	})
	if err != nil {
		if rep.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "drink title already exists").WithInternal(err)
		}

		span.SetStatus(codes.Error, "failed to create drink")
		span.RecordError(err)
		return echo.ErrInternalServerError.WithInternal(err)
	}
	span.SetAttributes(attribute.Int("drinkID", int(drink.ID)))

	s.drinksChanged(ctx, c, drink.ID, "create")

	return c.JSON(http.StatusOK, LongDrinksResponse{Success: true, Drinks: []LongDrink{toLong(drink)}})
}

// updateDrinkHandler godoc
//
//	@Summary		Update a drink
//	@Description	Fields that are absent or empty are left unchanged
//	@Tags			Drinks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Drink ID"
//	@Param			drink	body		UpdateDrinkDTO		true	"Changes"
//	@Success		200		{object}	LongDrinksResponse	"Updated drink"
//	@Failure		400		{object}	HTTPValidationError	"Validation failed"
//	@Failure		401		{object}	HTTPError			"Unauthorized"
//	@Failure		403		{object}	HTTPError			"Forbidden"
//	@Failure		404		{object}	HTTPError			"Drink not found"
//	@Failure		422		{object}	HTTPError			"Title already taken"
//	@Failure		500		{object}	HTTPError			"Internal server error"
//	@Security		BearerAuth
//	@Router			/drinks/{id} [patch]
func (s *Server) updateDrinkHandler(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "drinks.Update")
	defer span.End()

	id, err := drinkID(c)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("drinkID", int(id)))

	dto := new(UpdateDrinkDTO)
	if err := (&echo.DefaultBinder{}).BindBody(c, dto); err != nil {
		span.SetStatus(codes.Error, "failed to bind request")
		span.RecordError(err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	// Empty values mean "keep the current one"
	if dto.Title != nil && *dto.Title == "" {
		dto.Title = nil
	}
	if len(dto.Recipe) == 0 {
		dto.Recipe = nil
	}
	if err := c.Validate(dto); err != nil {
		return s.failedValidationError(c, err)
	}

	rep := repository.New(s.db)
	drink, err := rep.UpdateDrink(ctx, repository.UpdateDrinkParams{
		ID:     id,
		Title:  dto.Title,
		Recipe: dto.Recipe.ingredients(),
	})
	if err != nil {
		if rep.IsNotFoundError(err) {
			return echo.ErrNotFound
		}
		if rep.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "drink title already exists").WithInternal(err)
		}

		span.SetStatus(codes.Error, "failed to update drink")
		span.RecordError(err)
		return echo.ErrInternalServerError.WithInternal(err)
	}

	s.drinksChanged(ctx, c, drink.ID, "update")

	return c.JSON(http.StatusOK, LongDrinksResponse{Success: true, Drinks: []LongDrink{toLong(drink)}})
}

// deleteDrinkHandler godoc
//
//	@Summary	Delete a drink
//	@Tags		Drinks
//	@Produce	json
//	@Param		id	path		int					true	"Drink ID"
//	@Success	200	{object}	DeleteDrinkResponse	"Deleted drink ID"
//	@Failure	401	{object}	HTTPError			"Unauthorized"
//	@Failure	403	{object}	HTTPError			"Forbidden"
//	@Failure	404	{object}	HTTPError			"Drink not found"
//	@Failure	500	{object}	HTTPError			"Internal server error"
//	@Security	BearerAuth
//	@Router		/drinks/{id} [delete]
func (s *Server) deleteDrinkHandler(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "drinks.Delete")
	defer span.End()

	id, err := drinkID(c)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("drinkID", int(id)))

	rep := repository.New(s.db)
	rowsAffected, err := rep.DeleteDrink(ctx, id)
	if err != nil {
		span.SetStatus(codes.Error, "failed to delete drink")
		span.RecordError(err)
		return echo.ErrInternalServerError.WithInternal(err)
	}
	if rowsAffected == 0 {
		return echo.ErrNotFound
	}

	s.drinksChanged(ctx, c, id, "delete")

	return c.JSON(http.StatusOK, DeleteDrinkResponse{Success: true, Delete: id})
}

// drinkID reads the :id path parameter. Anything but a positive integer
// matches no drink.
func drinkID(c echo.Context) (int32, error) {
	var id int32
	if err := echo.PathParamsBinder(c).MustInt32("id", &id).BindError(); err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}

	return id, nil
}

// drinksChanged drops the cached menu and records the write.
func (s *Server) drinksChanged(ctx context.Context, c echo.Context, id int32, operation string) {
	if _, err := s.cache.InvalidateMenu(ctx); err != nil {
		s.logger.Warn().Err(err).Str("operation", operation).Msg("failed to invalidate drinks menu")
	}

	s.drinkWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))

	logEvent := s.logger.Info().Int32("drinkID", id).Str("operation", operation)
	if userID, ok := auth.GetUserID(c); ok {
		logEvent = logEvent.Str("userID", userID)
	}
	logEvent.Msg("drinks changed")
}
