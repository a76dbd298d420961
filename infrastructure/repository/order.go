package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/commerce-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/commerce-admin-api/internal/domain"
	"github.com/vfg2006/commerce-admin-api/pkg/utils"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
)

var ErrOrderNotFound = errors.New("pedido não encontrado")

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrderByID(orderID string) (*domain.Order, error)
	ListOrdersByStore(storeID string) ([]*domain.Order, error)
	ListPaidOrdersByStore(storeID string) ([]*domain.Order, error)
	CountPaidOrdersByStore(storeID string) (int, error)
	SettleOrder(ctx context.Context, orderID, address, phone string) error
	DeleteUnpaidOlderThan(days int) (int64, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

// CreateOrder insere o pedido e seus itens na mesma transação.
func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("orders").
			Columns("id", "store_id", "is_paid", "phone", "address").
			Values(order.ID, order.StoreID, order.IsPaid, order.Phone, order.Address).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao inserir pedido: %w", err)
		}

		if len(order.Items) == 0 {
			return nil
		}

		itemsQuery := squirrel.
			Insert("order_items").
			Columns("id", "order_id", "product_id").
			PlaceholderFormat(squirrel.Dollar)

		for i := range order.Items {
			if order.Items[i].ID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					return fmt.Errorf("erro ao gerar ID de item: %w", err)
				}
				order.Items[i].ID = id
			}
			order.Items[i].OrderID = order.ID
			itemsQuery = itemsQuery.Values(order.Items[i].ID, order.ID, order.Items[i].ProductID)
		}

		itemsSQL, itemsArgs, err := itemsQuery.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(itemsSQL, itemsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir itens do pedido: %w", err)
		}

		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	query, args, err := squirrel.
		Select("o.id, o.store_id, o.is_paid, o.phone, o.address, o.created_at, o.updated_at").
		From(ordersTable).
		Where(squirrel.Eq{"o.id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	order := &domain.Order{}
	err = r.conn.QueryRow(query, args...).Scan(
		&order.ID,
		&order.StoreID,
		&order.IsPaid,
		&order.Phone,
		&order.Address,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
	}

	if err := r.loadItems([]*domain.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrdersByStore retorna todos os pedidos de uma loja com seus itens.
func (r *orderRepository) ListOrdersByStore(storeID string) ([]*domain.Order, error) {
	return r.listOrders(squirrel.Eq{"o.store_id": storeID})
}

// ListPaidOrdersByStore retorna apenas os pedidos pagos de uma loja com seus
// itens. É a entrada das agregações de receita: pedidos não pagos são
// invisíveis para qualquer métrica.
func (r *orderRepository) ListPaidOrdersByStore(storeID string) ([]*domain.Order, error) {
	return r.listOrders(squirrel.Eq{"o.store_id": storeID, "o.is_paid": true})
}

func (r *orderRepository) listOrders(whereClause map[string]interface{}) ([]*domain.Order, error) {
	query, args, err := squirrel.
		Select("o.id, o.store_id, o.is_paid, o.phone, o.address, o.created_at, o.updated_at").
		From(ordersTable).
		Where(whereClause).
		OrderBy("o.created_at DESC").
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

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order := &domain.Order{}
		if err := rows.Scan(
			&order.ID,
			&order.StoreID,
			&order.IsPaid,
			&order.Phone,
			&order.Address,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if err := r.loadItems(orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// loadItems preenche os itens dos pedidos com nome e preço corrente do
// produto referenciado. O preço lido aqui é sempre o preço atual do produto,
// não o da data da venda.
func (r *orderRepository) loadItems(orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		o.Items = make([]domain.OrderItem, 0)
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query, args, err := squirrel.
		Select("oi.id, oi.order_id, oi.product_id, p.name, p.price").
		From(orderItemsTable).
		Join("products p ON oi.product_id = p.id").
		Where(squirrel.Eq{"oi.order_id": ids}).
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
		item := domain.OrderItem{}
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.ProductPrice,
		); err != nil {
			return fmt.Errorf("erro ao escanear item do pedido: %w", err)
		}
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, item)
		}
	}

	return rows.Err()
}

// CountPaidOrdersByStore conta os pedidos pagos de uma loja.
func (r *orderRepository) CountPaidOrdersByStore(storeID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(ordersTable).
		Where(squirrel.Eq{"o.store_id": storeID, "o.is_paid": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}

	return count, nil
}

// SettleOrder marca o pedido como pago com endereço e telefone e indisponibiliza
// os produtos dos itens, tudo em uma única transação. O pedido permanece
// intacto se qualquer passo falhar.
func (r *orderRepository) SettleOrder(ctx context.Context, orderID, address, phone string) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		updateQuery, updateArgs, err := squirrel.
			Update("orders").
			Set("is_paid", true).
			Set("address", address).
			Set("phone", phone).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": orderID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		result, err := tx.Exec(updateQuery, updateArgs...)
		if err != nil {
			return fmt.Errorf("erro ao atualizar pedido: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("error getting rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return ErrOrderNotFound
		}

		itemsQuery, itemsArgs, err := squirrel.
			Select("oi.product_id").
			From(orderItemsTable).
			Where(squirrel.Eq{"oi.order_id": orderID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		rows, err := tx.Query(itemsQuery, itemsArgs...)
		if err != nil {
			return fmt.Errorf("erro ao buscar itens do pedido: %w", err)
		}
		defer rows.Close()

		productIDs := make([]string, 0)
		for rows.Next() {
			var productID string
			if err := rows.Scan(&productID); err != nil {
				return fmt.Errorf("erro ao escanear item do pedido: %w", err)
			}
			productIDs = append(productIDs, productID)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}

		if len(productIDs) == 0 {
			return nil
		}

		productsQuery, productsArgs, err := squirrel.
			Update("products").
			Set("is_available", false).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": productIDs}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(productsQuery, productsArgs...); err != nil {
			return fmt.Errorf("erro ao indisponibilizar produtos: %w", err)
		}

		return nil
	})
}

// DeleteUnpaidOlderThan remove pedidos não pagos mais antigos que o número de
// dias informado. Usado pela rotina de limpeza de checkouts abandonados.
func (r *orderRepository) DeleteUnpaidOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("orders").
		Where(squirrel.Eq{"is_paid": false}).
		Where(squirrel.Lt{"created_at": cutoffDate}).
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
