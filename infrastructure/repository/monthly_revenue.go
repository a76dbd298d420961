package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
)

const (
	monthlyRevenueTable = "monthly_revenue_snapshots mrs"
)

type MonthlyRevenueRepository interface {
	GetByStoreAndPeriod(storeID string, date time.Time) (*domain.MonthlyRevenueSnapshot, error)
	ListByStore(storeID string) ([]*domain.MonthlyRevenueSnapshot, error)
	SaveOrUpdate(snapshot *domain.MonthlyRevenueSnapshot) error
	DeleteOlderThan(months int) (int64, error)
}

type monthlyRevenueRepository struct {
	conn *postgres.Connection
}

func NewMonthlyRevenueRepository(conn *postgres.Connection) MonthlyRevenueRepository {
	return &monthlyRevenueRepository{
		conn: conn,
	}
}

func (r *monthlyRevenueRepository) GetByStoreAndPeriod(storeID string, date time.Time) (*domain.MonthlyRevenueSnapshot, error) {
	period := domain.FormatPeriod(date)

	query, args, err := squirrel.
		Select("mrs.id, mrs.store_id, mrs.period, mrs.revenue, mrs.sales_count, mrs.created_at, mrs.updated_at").
		From(monthlyRevenueTable).
		Where(squirrel.Eq{"mrs.store_id": storeID, "mrs.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.MonthlyRevenueSnapshot{}
	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.StoreID,
		&snapshot.Period,
		&snapshot.Revenue,
		&snapshot.SalesCount,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot mensal: %w", err)
	}

	return snapshot, nil
}

func (r *monthlyRevenueRepository) ListByStore(storeID string) ([]*domain.MonthlyRevenueSnapshot, error) {
	query, args, err := squirrel.
		Select("mrs.id, mrs.store_id, mrs.period, mrs.revenue, mrs.sales_count, mrs.created_at, mrs.updated_at").
		From(monthlyRevenueTable).
		Where(squirrel.Eq{"mrs.store_id": storeID}).
		OrderBy("mrs.period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.MonthlyRevenueSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.MonthlyRevenueSnapshot{}
		if err := rows.Scan(
			&snapshot.ID,
			&snapshot.StoreID,
			&snapshot.Period,
			&snapshot.Revenue,
			&snapshot.SalesCount,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot mensal: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *monthlyRevenueRepository) SaveOrUpdate(snapshot *domain.MonthlyRevenueSnapshot) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_revenue_snapshots").
		Columns("store_id", "period", "revenue", "sales_count").
		Values(
			snapshot.StoreID,
			snapshot.Period,
			snapshot.Revenue,
			snapshot.SalesCount,
		).
		Suffix(`
			ON CONFLICT (store_id, period) DO UPDATE SET
				revenue = EXCLUDED.revenue,
				sales_count = EXCLUDED.sales_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *monthlyRevenueRepository) DeleteOlderThan(months int) (int64, error) {
	cutoff := time.Now().AddDate(0, -months, 0)
	period := domain.FormatPeriod(cutoff)

	// O período mm-yyyy não ordena lexicograficamente; compara por
	// (ano, mês) extraídos da coluna.
	query, args, err := squirrel.
		Delete("monthly_revenue_snapshots").
		Where(squirrel.Expr(
			"(substring(period from 4 for 4) || substring(period from 1 for 2)) < (substring(? from 4 for 4) || substring(? from 1 for 2))",
			period, period,
		)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
