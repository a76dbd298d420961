package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GraphData é um ponto da série mensal de receita exibida no gráfico do painel.
type GraphData struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardSummary agrega os três indicadores da página inicial do painel.
type DashboardSummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	SalesCount   int             `json:"sales_count"`
	StockCount   int             `json:"stock_count"`
}

// FormatPeriod formata uma data como período mm-yyyy
func FormatPeriod(t time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(t.Month()), t.Year())
}

// ParsePeriod converte um período mm-yyyy para o primeiro dia do mês
func ParsePeriod(period string) (time.Time, error) {
	return time.Parse("01-2006", period)
}

// MonthlyRevenueSnapshot é uma entrada da tabela de snapshots mensais de
// receita, mantida pelo agendador de sincronização.
type MonthlyRevenueSnapshot struct {
	ID         int64           `json:"id"`
	StoreID    string          `json:"store_id"`
	Period     string          `json:"period"` // Período no formato mm-yyyy
	Revenue    decimal.Decimal `json:"revenue"`
	SalesCount int             `json:"sales_count"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
