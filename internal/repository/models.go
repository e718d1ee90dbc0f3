package repository

import "time"

type Ingredient struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

type Drink struct {
	ID        int32        `json:"id"`
	Title     string       `json:"title"`
	Recipe    []Ingredient `json:"recipe"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
