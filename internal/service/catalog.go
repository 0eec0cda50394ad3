package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/minicart/minicart-go/internal/model"
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrDescriptionRequired = errors.New("product description is required")
	ErrNegativePrice       = errors.New("price must not be negative")
)

// ProductStore is the persistence surface CatalogService depends on.
type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

// CatalogService handles product business logic.
type CatalogService struct {
	products ProductStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(products ProductStore) *CatalogService {
	return &CatalogService{products: products}
}

// CreateProduct validates and persists a new catalog item.
func (s *CatalogService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	if req.Name == "" {
		return nil, ErrProductNameRequired
	}
	if req.Description == "" {
		return nil, ErrDescriptionRequired
	}
	if req.Price < 0 {
		return nil, ErrNegativePrice
	}

	product := &model.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListProducts retrieves all products.
func (s *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}
