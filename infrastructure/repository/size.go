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
	sizesTable = "sizes sz"
)

type SizeRepository interface {
	CreateSize(size *domain.Size) (*domain.Size, error)
	GetSizeByID(sizeID string) (*domain.Size, error)
	ListSizesByStore(storeID string) ([]*domain.Size, error)
	UpdateSize(size *domain.Size) error
	DeleteSize(sizeID string) error
}

type sizeRepository struct {
	conn *postgres.Connection
}

func NewSizeRepository(conn *postgres.Connection) SizeRepository {
	return &sizeRepository{
		conn: conn,
	}
}

func (r *sizeRepository) CreateSize(size *domain.Size) (*domain.Size, error) {
	query, args, err := squirrel.
		Insert("sizes").
		Columns("id", "store_id", "name", "value").
		Values(size.ID, size.StoreID, size.Name, size.Value).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&size.CreatedAt, &size.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return size, nil
}

func (r *sizeRepository) GetSizeByID(sizeID string) (*domain.Size, error) {
	query, args, err := squirrel.
		Select("sz.id, sz.store_id, sz.name, sz.value, sz.created_at, sz.updated_at").
		From(sizesTable).
		Where(squirrel.Eq{"sz.id": sizeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	size := &domain.Size{}
	err = r.conn.QueryRow(query, args...).Scan(
		&size.ID,
		&size.StoreID,
		&size.Name,
		&size.Value,
		&size.CreatedAt,
		&size.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tamanho: %w", err)
	}

	return size, nil
}

func (r *sizeRepository) ListSizesByStore(storeID string) ([]*domain.Size, error) {
	query, args, err := squirrel.
		Select("sz.id, sz.store_id, sz.name, sz.value, sz.created_at, sz.updated_at").
		From(sizesTable).
		Where(squirrel.Eq{"sz.store_id": storeID}).
		OrderBy("sz.created_at DESC").
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

	sizes := make([]*domain.Size, 0)
	for rows.Next() {
		size := &domain.Size{}
		if err := rows.Scan(
			&size.ID,
			&size.StoreID,
			&size.Name,
			&size.Value,
			&size.CreatedAt,
			&size.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear tamanho: %w", err)
		}
		sizes = append(sizes, size)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sizes, nil
}

func (r *sizeRepository) UpdateSize(size *domain.Size) error {
	if size.ID == "" {
		return errors.New("ID is required")
	}

	query, args, err := squirrel.
		Update("sizes").
		Set("name", size.Name).
		Set("value", size.Value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": size.ID}).
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
		return errors.New("size not found")
	}

	return nil
}

func (r *sizeRepository) DeleteSize(sizeID string) error {
	query, args, err := squirrel.
		Delete("sizes").
		Where(squirrel.Eq{"id": sizeID}).
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
