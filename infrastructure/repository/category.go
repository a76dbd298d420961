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
	categoriesTable = "categories c"
)

type CategoryRepository interface {
	CreateCategory(category *domain.Category) (*domain.Category, error)
	GetCategoryByID(categoryID string) (*domain.Category, error)
	ListCategoriesByStore(storeID string) ([]*domain.Category, error)
	UpdateCategory(category *domain.Category) error
	DeleteCategory(categoryID string) error
}

type categoryRepository struct {
	conn *postgres.Connection
}

func NewCategoryRepository(conn *postgres.Connection) CategoryRepository {
	return &categoryRepository{
		conn: conn,
	}
}

func (r *categoryRepository) CreateCategory(category *domain.Category) (*domain.Category, error) {
	query, args, err := squirrel.
		Insert("categories").
		Columns("id", "store_id", "billboard_id", "name").
		Values(category.ID, category.StoreID, category.BillboardID, category.Name).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) GetCategoryByID(categoryID string) (*domain.Category, error) {
	query, args, err := squirrel.
		Select("c.id, c.store_id, c.billboard_id, b.label, c.name, c.created_at, c.updated_at").
		From(categoriesTable).
		Join("billboards b ON c.billboard_id = b.id").
		Where(squirrel.Eq{"c.id": categoryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	category, err := r.scanCategory(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) ListCategoriesByStore(storeID string) ([]*domain.Category, error) {
	query, args, err := squirrel.
		Select("c.id, c.store_id, c.billboard_id, b.label, c.name, c.created_at, c.updated_at").
		From(categoriesTable).
		Join("billboards b ON c.billboard_id = b.id").
		Where(squirrel.Eq{"c.store_id": storeID}).
		OrderBy("c.created_at DESC").
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

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(
			&category.ID,
			&category.StoreID,
			&category.BillboardID,
			&category.BillboardLabel,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) scanCategory(row *sql.Row) (*domain.Category, error) {
	category := &domain.Category{}
	err := row.Scan(
		&category.ID,
		&category.StoreID,
		&category.BillboardID,
		&category.BillboardLabel,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) UpdateCategory(category *domain.Category) error {
	if category.ID == "" {
		return errors.New("ID is required")
	}

	query, args, err := squirrel.
		Update("categories").
		Set("name", category.Name).
		Set("billboard_id", category.BillboardID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": category.ID}).
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
		return errors.New("category not found")
	}

	return nil
}

func (r *categoryRepository) DeleteCategory(categoryID string) error {
	query, args, err := squirrel.
		Delete("categories").
		Where(squirrel.Eq{"id": categoryID}).
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
