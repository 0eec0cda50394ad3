package model

import "time"

// Product represents a catalog item.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
}

// CreateProductRequest carries the fields of the createProduct mutation.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
