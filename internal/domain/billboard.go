package domain

import "time"

// Billboard representa um banner promocional exibido na vitrine da loja.
type Billboard struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Label     string    `json:"label"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpsertBillboardRequest struct {
	Label    string `json:"label"`
	ImageURL string `json:"image_url"`
}
