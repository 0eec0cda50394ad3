package service

import (
	"context"
	"time"

	"github.com/minicart/minicart-go/internal/model"
	"github.com/minicart/minicart-go/internal/repository"
)

// In-memory stores standing in for the MySQL repositories. They return the
// same sentinel errors the real ones do.

type fakeUserStore struct {
	users []model.User
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.CreatedAt = time.Now()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) {
	return f.users, nil
}

type fakeProductStore struct {
	products []model.Product
}

func (f *fakeProductStore) Create(_ context.Context, product *model.Product) error {
	product.CreatedAt = time.Now()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductStore) GetByID(_ context.Context, id string) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (f *fakeProductStore) List(_ context.Context) ([]model.Product, error) {
	return f.products, nil
}

type fakeOrderStore struct {
	orders []model.Order
}

func (f *fakeOrderStore) Create(_ context.Context, order *model.Order) error {
	order.CreatedAt = time.Now()
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderStore) List(_ context.Context) ([]model.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderStore) ListByUser(_ context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *fakeOrderStore) ListByProduct(_ context.Context, productID string) ([]model.Order, error) {
	var orders []model.Order
	for _, o := range f.orders {
		if o.ProductID == productID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
