package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/minicart/minicart-go/internal/model"
)

var ErrQuantityInvalid = errors.New("quantity must be a positive integer")

// OrderStore is the persistence surface OrderService depends on.
type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
	List(ctx context.Context) ([]model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListByProduct(ctx context.Context, productID string) ([]model.Order, error)
}

// OrderService handles order business logic.
type OrderService struct {
	orders   OrderStore
	users    UserStore
	products ProductStore
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders OrderStore, users UserStore, products ProductStore) *OrderService {
	return &OrderService{
		orders:   orders,
		users:    users,
		products: products,
	}
}

// CreateOrder validates and persists a new order. The referenced user and
// product must exist; repository not-found sentinels propagate to the caller
// unchanged so it can report which reference was dangling.
func (s *OrderService) CreateOrder(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	if req.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.products.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves all orders.
func (s *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.orders.List(ctx)
}

// ListOrdersByUser retrieves all orders placed by the given user.
func (s *OrderService) ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ListOrdersByProduct retrieves all orders referencing the given product.
func (s *OrderService) ListOrdersByProduct(ctx context.Context, productID string) ([]model.Order, error) {
	return s.orders.ListByProduct(ctx, productID)
}
