package model

import "time"

// Order links one user to one product with a purchase quantity.
type Order struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int32
	CreatedAt time.Time
}

// CreateOrderRequest carries the fields of the createOrder mutation.
type CreateOrderRequest struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}
