package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
)

const (
	billboardsTable = "billboards b"
)

type BillboardRepository interface {
	CreateBillboard(billboard *domain.Billboard) (*domain.Billboard, error)
	GetBillboardByID(billboardID string) (*domain.Billboard, error)
	ListBillboardsByStore(storeID string) ([]*domain.Billboard, error)
	UpdateBillboard(billboard *domain.Billboard) error
	DeleteBillboard(billboardID string) error
}

type billboardRepository struct {
	conn *postgres.Connection
}

func NewBillboardRepository(conn *postgres.Connection) BillboardRepository {
	return &billboardRepository{
		conn: conn,
	}
}

func (r *billboardRepository) CreateBillboard(billboard *domain.Billboard) (*domain.Billboard, error) {
	query, args, err := squirrel.
		Insert("billboards").
		Columns("id", "store_id", "label", "image_url").
		Values(billboard.ID, billboard.StoreID, billboard.Label, billboard.ImageURL).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&billboard.CreatedAt, &billboard.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return billboard, nil
}

func (r *billboardRepository) GetBillboardByID(billboardID string) (*domain.Billboard, error) {
	query, args, err := squirrel.
		Select("b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at").
		From(billboardsTable).
		Where(squirrel.Eq{"b.id": billboardID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	billboard := &domain.Billboard{}
	err = r.conn.QueryRow(query, args...).Scan(
		&billboard.ID,
		&billboard.StoreID,
		&billboard.Label,
		&billboard.ImageURL,
		&billboard.CreatedAt,
		&billboard.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear billboard: %w", err)
	}

	return billboard, nil
}

func (r *billboardRepository) ListBillboardsByStore(storeID string) ([]*domain.Billboard, error) {
	query, args, err := squirrel.
		Select("b.id, b.store_id, b.label, b.image_url, b.created_at, b.updated_at").
		From(billboardsTable).
		Where(squirrel.Eq{"b.store_id": storeID}).
		OrderBy("b.created_at DESC").
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

	billboards := make([]*domain.Billboard, 0)
	for rows.Next() {
		billboard := &domain.Billboard{}
		if err := rows.Scan(
			&billboard.ID,
			&billboard.StoreID,
			&billboard.Label,
			&billboard.ImageURL,
			&billboard.CreatedAt,
			&billboard.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear billboard: %w", err)
		}
		billboards = append(billboards, billboard)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return billboards, nil
}

func (r *billboardRepository) UpdateBillboard(billboard *domain.Billboard) error {
	if billboard.ID == "" {
		return errors.New("ID is required")
	}

	query, args, err := squirrel.
		Update("billboards").
		Set("label", billboard.Label).
		Set("image_url", billboard.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": billboard.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("billboard not found")
	}

	return nil
}

func (r *billboardRepository) DeleteBillboard(billboardID string) error {
	query, args, err := squirrel.
		Delete("billboards").
		Where(squirrel.Eq{"id": billboardID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
