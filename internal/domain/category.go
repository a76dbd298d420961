package domain

import "time"

// Category agrupa produtos e está associada a um billboard promocional.
type Category struct {
	ID             string    `json:"id"`
	StoreID        string    `json:"store_id"`
	BillboardID    string    `json:"billboard_id"`
	BillboardLabel *string   `json:"billboard_label,omitempty"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type UpsertCategoryRequest struct {
	Name        string `json:"name"`
	BillboardID string `json:"billboard_id"`
}
