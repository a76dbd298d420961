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
	colorsTable = "colors co"
)

type ColorRepository interface {
	CreateColor(color *domain.Color) (*domain.Color, error)
	GetColorByID(colorID string) (*domain.Color, error)
	ListColorsByStore(storeID string) ([]*domain.Color, error)
	UpdateColor(color *domain.Color) error
	DeleteColor(colorID string) error
}

type colorRepository struct {
	conn *postgres.Connection
}

func NewColorRepository(conn *postgres.Connection) ColorRepository {
	return &colorRepository{
		conn: conn,
	}
}

func (r *colorRepository) CreateColor(color *domain.Color) (*domain.Color, error) {
	query, args, err := squirrel.
		Insert("colors").
		Columns("id", "store_id", "name", "value").
		Values(color.ID, color.StoreID, color.Name, color.Value).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&color.CreatedAt, &color.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return color, nil
}

func (r *colorRepository) GetColorByID(colorID string) (*domain.Color, error) {
	query, args, err := squirrel.
		Select("co.id, co.store_id, co.name, co.value, co.created_at, co.updated_at").
		From(colorsTable).
		Where(squirrel.Eq{"co.id": colorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	color := &domain.Color{}
	err = r.conn.QueryRow(query, args...).Scan(
		&color.ID,
		&color.StoreID,
		&color.Name,
		&color.Value,
		&color.CreatedAt,
		&color.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cor: %w", err)
	}

	return color, nil
}

func (r *colorRepository) ListColorsByStore(storeID string) ([]*domain.Color, error) {
	query, args, err := squirrel.
		Select("co.id, co.store_id, co.name, co.value, co.created_at, co.updated_at").
		From(colorsTable).
		Where(squirrel.Eq{"co.store_id": storeID}).
		OrderBy("co.created_at DESC").
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

	colors := make([]*domain.Color, 0)
	for rows.Next() {
		color := &domain.Color{}
		if err := rows.Scan(
			&color.ID,
			&color.StoreID,
			&color.Name,
			&color.Value,
			&color.CreatedAt,
			&color.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear cor: %w", err)
		}
		colors = append(colors, color)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return colors, nil
}

func (r *colorRepository) UpdateColor(color *domain.Color) error {
	if color.ID == "" {
		return errors.New("ID is required")
	}

	query, args, err := squirrel.
		Update("colors").
		Set("name", color.Name).
		Set("value", color.Value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": color.ID}).
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
		return errors.New("color not found")
	}

	return nil
}

func (r *colorRepository) DeleteColor(colorID string) error {
	query, args, err := squirrel.
		Delete("colors").
		Where(squirrel.Eq{"id": colorID}).
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
