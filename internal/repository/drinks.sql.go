package repository

import (
	"context"
	"encoding/json"
)

const listDrinks = `-- name: ListDrinks :many
SELECT id, title, recipe, created_at, updated_at FROM drinks
ORDER BY id
`

func (q *Queries) ListDrinks(ctx context.Context) ([]Drink, error) {
	rows, err := q.db.Query(ctx, listDrinks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Drink{}
	for rows.Next() {
		var i Drink
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Recipe,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getDrink = `-- name: GetDrink :one
SELECT id, title, recipe, created_at, updated_at FROM drinks
WHERE id = $1
`

func (q *Queries) GetDrink(ctx context.Context, id int32) (Drink, error) {
	row := q.db.QueryRow(ctx, getDrink, id)
	var i Drink
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Recipe,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createDrink = `-- name: CreateDrink :one
INSERT INTO drinks (title, recipe)
VALUES ($1, $2)
RETURNING id, title, recipe, created_at, updated_at
`

type CreateDrinkParams struct {
	Title  string
	Recipe []Ingredient
}

func (q *Queries) CreateDrink(ctx context.Context, arg CreateDrinkParams) (Drink, error) {
	recipe, err := json.Marshal(nonNil(arg.Recipe))
	if err != nil {
		return Drink{}, err
	}

	row := q.db.QueryRow(ctx, createDrink, arg.Title, recipe)
	var i Drink
	err = row.Scan(
		&i.ID,
		&i.Title,
		&i.Recipe,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateDrink = `-- name: UpdateDrink :one
UPDATE drinks
SET title = COALESCE($2, title),
    recipe = COALESCE($3, recipe),
    updated_at = now()
WHERE id = $1
RETURNING id, title, recipe, created_at, updated_at
`

// UpdateDrinkParams leaves a column unchanged when its field is nil.
type UpdateDrinkParams struct {
	ID     int32
	Title  *string
	Recipe []Ingredient
}

func (q *Queries) UpdateDrink(ctx context.Context, arg UpdateDrinkParams) (Drink, error) {
	var recipe []byte
	if arg.Recipe != nil {
		var err error
		recipe, err = json.Marshal(arg.Recipe)
		if err != nil {
			return Drink{}, err
		}
	}

	row := q.db.QueryRow(ctx, updateDrink, arg.ID, arg.Title, recipe)
	var i Drink
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Recipe,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteDrink = `-- name: DeleteDrink :execrows
DELETE FROM drinks
WHERE id = $1
`

func (q *Queries) DeleteDrink(ctx context.Context, id int32) (int64, error) {
	result, err := q.db.Exec(ctx, deleteDrink, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

func nonNil(recipe []Ingredient) []Ingredient {
	if recipe == nil {
		return []Ingredient{}
	}
	return recipe
}
