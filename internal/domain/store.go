package domain

import "time"

// Store representa uma loja (tenant). Todas as demais entidades pertencem a uma loja.
type Store struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateStoreRequest struct {
	Name string `json:"name"`
}

type UpdateStoreRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name"`
}
