package domain

import "time"

type CatalogEntry struct {
	ID        string    `json:"id"`
	FoodName  string    `json:"foodName"`
	Price     Price     `json:"foodPrice"`
	CreatedAt time.Time `json:"createdAt"`
}
