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
	storesTable = "stores s"
)

type StoreRepository interface {
	CreateStore(store *domain.Store) (*domain.Store, error)
	GetStoreByID(storeID string) (*domain.Store, error)
	GetStoreByIDAndUser(storeID string, userID int) (*domain.Store, error)
	ListStoresByUser(userID int) ([]*domain.Store, error)
	ListStores() ([]*domain.Store, error)
	UpdateStore(store *domain.UpdateStoreRequest) error
	DeleteStore(storeID string) error
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) CreateStore(store *domain.Store) (*domain.Store, error) {
	query, args, err := squirrel.
		Insert("stores").
		Columns("id", "user_id", "name").
		Values(store.ID, store.UserID, store.Name).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return store, nil
}

func (r *storeRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	return r.getStore(squirrel.Eq{"s.id": storeID})
}

func (r *storeRepository) GetStoreByIDAndUser(storeID string, userID int) (*domain.Store, error) {
	return r.getStore(squirrel.Eq{"s.id": storeID, "s.user_id": userID})
}

func (r *storeRepository) getStore(whereClause map[string]interface{}) (*domain.Store, error) {
	query, args, err := squirrel.
		Select("s.id, s.user_id, s.name, s.created_at, s.updated_at").
		From(storesTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store := &domain.Store{}
	err = r.conn.QueryRow(query, args...).Scan(
		&store.ID,
		&store.UserID,
		&store.Name,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}

func (r *storeRepository) ListStoresByUser(userID int) ([]*domain.Store, error) {
	return r.listStores(squirrel.Eq{"s.user_id": userID})
}

// ListStores retorna todas as lojas. Usado pelos agendadores.
func (r *storeRepository) ListStores() ([]*domain.Store, error) {
	return r.listStores(nil)
}

func (r *storeRepository) listStores(whereClause map[string]interface{}) ([]*domain.Store, error) {
	queryBuilder := squirrel.
		Select("s.id, s.user_id, s.name, s.created_at, s.updated_at").
		From(storesTable).
		OrderBy("s.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	query, args, err := queryBuilder.ToSql()
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(
			&store.ID,
			&store.UserID,
			&store.Name,
			&store.CreatedAt,
			&store.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) UpdateStore(store *domain.UpdateStoreRequest) error {
	if store.ID == "" {
		return errors.New("ID is required")
	}

	queryBuilder := squirrel.
		Update("stores").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": store.ID}).
		PlaceholderFormat(squirrel.Dollar)

	if store.Name != nil {
		queryBuilder = queryBuilder.Set("name", *store.Name)
	}

	query, args, err := queryBuilder.ToSql()
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
		return errors.New("store not found")
	}

	return nil
}

func (r *storeRepository) DeleteStore(storeID string) error {
	query, args, err := squirrel.
		Delete("stores").
		Where(squirrel.Eq{"id": storeID}).
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
