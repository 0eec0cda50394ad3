package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/minicart/minicart-go/internal/model"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles product persistence operations.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product) error {
	query := `INSERT INTO products (id, name, description, price) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, product.ID, product.Name, product.Description, product.Price)
	return err
}

// GetByID retrieves a product by its ID.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT id, name, description, price, created_at FROM products WHERE id = ?`

	product := &model.Product{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Description, &product.Price, &product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return product, nil
}

// List retrieves all products, oldest first.
func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, description, price, created_at FROM products ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
