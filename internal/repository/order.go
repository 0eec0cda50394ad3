package repository

import (
	"context"
	"database/sql"

	"github.com/minicart/minicart-go/internal/model"
)

// OrderRepository handles order persistence operations.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts a new order.
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	query := `INSERT INTO orders (id, user_id, product_id, quantity) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, order.ID, order.UserID, order.ProductID, order.Quantity)
	return err
}

// List retrieves all orders, oldest first.
func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT id, user_id, product_id, quantity, created_at FROM orders ORDER BY created_at ASC`

	return r.scanOrders(r.db.QueryContext(ctx, query))
}

// ListByUser retrieves all orders placed by the given user.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	query := `SELECT id, user_id, product_id, quantity, created_at FROM orders WHERE user_id = ? ORDER BY created_at ASC`

	return r.scanOrders(r.db.QueryContext(ctx, query, userID))
}

// ListByProduct retrieves all orders referencing the given product.
func (r *OrderRepository) ListByProduct(ctx context.Context, productID string) ([]model.Order, error) {
	query := `SELECT id, user_id, product_id, quantity, created_at FROM orders WHERE product_id = ? ORDER BY created_at ASC`

	return r.scanOrders(r.db.QueryContext(ctx, query, productID))
}

func (r *OrderRepository) scanOrders(rows *sql.Rows, err error) ([]model.Order, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Quantity, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
