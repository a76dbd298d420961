package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo de uma loja.
// O preço é sempre o preço corrente: agregações de receita leem este valor
// no momento da consulta, não o valor na data da venda.
type Product struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	CategoryID  string          `json:"category_id"`
	SizeID      string          `json:"size_id"`
	ColorID     string          `json:"color_id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsFeatured  bool            `json:"is_featured"`
	IsAvailable bool            `json:"is_available"`
	Images      []Image         `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Image representa uma imagem associada a um produto.
type Image struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	URL       string `json:"url"`
}

type UpsertProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	SizeID      string          `json:"size_id"`
	ColorID     string          `json:"color_id"`
	IsFeatured  bool            `json:"is_featured"`
	IsAvailable bool            `json:"is_available"`
	ImageURLs   []string        `json:"image_urls"`
}

// ProductFilters define os filtros opcionais da listagem de produtos.
type ProductFilters struct {
	CategoryID    string
	SizeID        string
	ColorID       string
	OnlyFeatured  bool
	OnlyAvailable bool
}
