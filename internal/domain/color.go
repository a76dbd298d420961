package domain

import "time"

type Color struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"` // Valor hexadecimal (ex: #FF0000)
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpsertColorRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
