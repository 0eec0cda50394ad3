package service

import (
	"context"
	"errors"
	"testing"

	"github.com/minicart/minicart-go/internal/model"
	"github.com/minicart/minicart-go/internal/repository"
)

func newTestOrderService() (*OrderService, *fakeUserStore, *fakeProductStore) {
	users := &fakeUserStore{users: []model.User{
		{ID: "user-1", Name: "Ada", Email: "ada@x.io"},
	}}
	products := &fakeProductStore{products: []model.Product{
		{ID: "prod-1", Name: "Widget", Description: "A widget", Price: 9.99},
	}}
	return NewOrderService(&fakeOrderStore{}, users, products), users, products
}

func TestCreateOrder_InvalidQuantity(t *testing.T) {
	svc, _, _ := newTestOrderService()

	for _, quantity := range []int32{0, -3} {
		_, err := svc.CreateOrder(context.Background(), model.CreateOrderRequest{
			UserID:    "user-1",
			ProductID: "prod-1",
			Quantity:  quantity,
		})
		if !errors.Is(err, ErrQuantityInvalid) {
			t.Errorf("CreateOrder(quantity=%d) error = %v, want ErrQuantityInvalid", quantity, err)
		}
	}
}

func TestCreateOrder_UnknownUser(t *testing.T) {
	svc, _, _ := newTestOrderService()

	_, err := svc.CreateOrder(context.Background(), model.CreateOrderRequest{
		UserID:    "no-such-user",
		ProductID: "prod-1",
		Quantity:  1,
	})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Errorf("CreateOrder() error = %v, want ErrUserNotFound", err)
	}
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	svc, _, _ := newTestOrderService()

	_, err := svc.CreateOrder(context.Background(), model.CreateOrderRequest{
		UserID:    "user-1",
		ProductID: "no-such-product",
		Quantity:  1,
	})
	if !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("CreateOrder() error = %v, want ErrProductNotFound", err)
	}
}

func TestCreateOrder_Success(t *testing.T) {
	svc, _, _ := newTestOrderService()

	order, err := svc.CreateOrder(context.Background(), model.CreateOrderRequest{
		UserID:    "user-1",
		ProductID: "prod-1",
		Quantity:  3,
	})
	if err != nil {
		t.Fatalf("CreateOrder() unexpected error: %v", err)
	}

	if order.ID == "" {
		t.Error("CreateOrder() returned empty ID")
	}
	if order.UserID != "user-1" || order.ProductID != "prod-1" {
		t.Errorf("CreateOrder() references = (%q, %q), want (user-1, prod-1)", order.UserID, order.ProductID)
	}
	if order.Quantity != 3 {
		t.Errorf("CreateOrder() quantity = %d, want 3", order.Quantity)
	}
}

func TestListOrdersByUser(t *testing.T) {
	svc, _, _ := newTestOrderService()

	if _, err := svc.CreateOrder(context.Background(), model.CreateOrderRequest{
		UserID:    "user-1",
		ProductID: "prod-1",
		Quantity:  2,
	}); err != nil {
		t.Fatalf("CreateOrder() unexpected error: %v", err)
	}

	orders, err := svc.ListOrdersByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListOrdersByUser() unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("ListOrdersByUser() returned %d orders, want 1", len(orders))
	}

	none, err := svc.ListOrdersByUser(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("ListOrdersByUser() unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ListOrdersByUser() for other user returned %d orders, want 0", len(none))
	}
}
