package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

const (
	productsTable = "products p"
	imagesTable   = "images i"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(productID string) (*domain.Product, error)
	GetProductsByIDs(productIDs []string) ([]*domain.Product, error)
	ListProductsByStore(storeID string, filters *domain.ProductFilters) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(productID string) error
	CountAvailableByStore(storeID string) (int, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

// CreateProduct insere o produto e suas imagens na mesma transação.
func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("products").
			Columns("id", "store_id", "category_id", "size_id", "color_id", "name", "price", "is_featured", "is_available").
			Values(
				product.ID,
				product.StoreID,
				product.CategoryID,
				product.SizeID,
				product.ColorID,
				product.Name,
				product.Price,
				product.IsFeatured,
				product.IsAvailable,
			).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&product.CreatedAt, &product.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir produto: %w", err)
		}

		return insertImages(tx, product)
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return product, nil
}

func insertImages(tx *sql.Tx, product *domain.Product) error {
	if len(product.Images) == 0 {
		return nil
	}

	query := squirrel.
		Insert("images").
		Columns("id", "product_id", "url").
		PlaceholderFormat(squirrel.Dollar)

	for i := range product.Images {
		if product.Images[i].ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar ID de imagem: %w", err)
			}
			product.Images[i].ID = id
		}
		product.Images[i].ProductID = product.ID
		query = query.Values(product.Images[i].ID, product.ID, product.Images[i].URL)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao inserir imagens: %w", err)
	}

	return nil
}

func (r *productRepository) GetProductByID(productID string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.store_id, p.category_id, p.size_id, p.color_id, p.name, p.price, p.is_featured, p.is_available, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	product, err := scanProductRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	if err := r.loadImages([]*domain.Product{product}); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) GetProductsByIDs(productIDs []string) ([]*domain.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	query, args, err := squirrel.
		Select("p.id, p.store_id, p.category_id, p.size_id, p.color_id, p.name, p.price, p.is_featured, p.is_available, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productIDs}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryProducts(query, args)
}

func (r *productRepository) ListProductsByStore(storeID string, filters *domain.ProductFilters) ([]*domain.Product, error) {
	queryBuilder := squirrel.
		Select("p.id, p.store_id, p.category_id, p.size_id, p.color_id, p.name, p.price, p.is_featured, p.is_available, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.store_id": storeID}).
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.CategoryID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"p.category_id": filters.CategoryID})
		}
		if filters.SizeID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"p.size_id": filters.SizeID})
		}
		if filters.ColorID != "" {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"p.color_id": filters.ColorID})
		}
		if filters.OnlyFeatured {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"p.is_featured": true})
		}
		if filters.OnlyAvailable {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"p.is_available": true})
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	products, err := r.queryProducts(query, args)
	if err != nil {
		return nil, err
	}

	if err := r.loadImages(products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) queryProducts(query string, args []interface{}) ([]*domain.Product, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProductRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// loadImages preenche as imagens dos produtos informados em uma única consulta.
func (r *productRepository) loadImages(products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Product, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		p.Images = make([]domain.Image, 0)
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := squirrel.
		Select("i.id, i.product_id, i.url").
		From(imagesTable).
		Where(squirrel.Eq{"i.product_id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		image := domain.Image{}
		if err := rows.Scan(&image.ID, &image.ProductID, &image.URL); err != nil {
			return fmt.Errorf("erro ao escanear imagem: %w", err)
		}
		if product, ok := byID[image.ProductID]; ok {
			product.Images = append(product.Images, image)
		}
	}

	return rows.Err()
}

// UpdateProduct atualiza o produto e substitui o conjunto de imagens na
// mesma transação.
func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID == "" {
		return errors.New("ID is required")
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Update("products").
			Set("name", product.Name).
			Set("price", product.Price).
			Set("category_id", product.CategoryID).
			Set("size_id", product.SizeID).
			Set("color_id", product.ColorID).
			Set("is_featured", product.IsFeatured).
			Set("is_available", product.IsAvailable).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": product.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		result, err := tx.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error getting rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return errors.New("product not found")
		}

		deleteQuery, deleteArgs, err := squirrel.
			Delete("images").
			Where(squirrel.Eq{"product_id": product.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.Exec(deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover imagens antigas: %w", err)
		}

		return insertImages(tx, product)
	})
}

func (r *productRepository) DeleteProduct(productID string) error {
	query, args, err := squirrel.
		Delete("products").
		Where(squirrel.Eq{"id": productID}).
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

// CountAvailableByStore conta os produtos disponíveis em estoque de uma loja.
func (r *productRepository) CountAvailableByStore(storeID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(productsTable).
		Where(squirrel.Eq{"p.store_id": storeID, "p.is_available": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

func scanProductRow(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.StoreID,
		&product.CategoryID,
		&product.SizeID,
		&product.ColorID,
		&product.Name,
		&product.Price,
		&product.IsFeatured,
		&product.IsAvailable,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func scanProductRows(rows *sql.Rows) (*domain.Product, error) {
	product := &domain.Product{}
	err := rows.Scan(
		&product.ID,
		&product.StoreID,
		&product.CategoryID,
		&product.SizeID,
		&product.ColorID,
		&product.Name,
		&product.Price,
		&product.IsFeatured,
		&product.IsAvailable,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
