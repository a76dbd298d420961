package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa um pedido criado no checkout. Nasce não pago e só
// transita para pago quando a notificação de pagamento é verificada.
// Não existe transição de volta nem estado de cancelamento.
type Order struct {
	ID        string      `json:"id"`
	StoreID   string      `json:"store_id"`
	IsPaid    bool        `json:"is_paid"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderItem associa um pedido a um produto. Não há snapshot de preço ou
// quantidade: o preço é lido do produto referenciado na hora da agregação.
type OrderItem struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name,omitempty"`
	ProductPrice decimal.Decimal `json:"product_price"`
}

// OrderSummary é a visão da listagem de pedidos no painel administrativo.
type OrderSummary struct {
	ID         string          `json:"id"`
	Phone      string          `json:"phone"`
	Address    string          `json:"address"`
	IsPaid     bool            `json:"is_paid"`
	Products   []string        `json:"products"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Settlement carrega os dados extraídos de uma notificação de pagamento
// verificada, prontos para liquidar o pedido correspondente.
type Settlement struct {
	OrderID      string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Phone        string
}
