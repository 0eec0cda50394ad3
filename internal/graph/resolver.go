package graph

import (
	"context"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/minicart/minicart-go/internal/middleware"
	"github.com/minicart/minicart-go/internal/model"
	"github.com/minicart/minicart-go/internal/service"
)

// Resolver is the root resolver for both Query and Mutation. It holds the
// services every field delegates to; nothing is resolved from package-level
// state.
type Resolver struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Order   *service.OrderService
}

// NewSchema parses the schema with r as root resolver. Panics on a
// schema/resolver mismatch, which is a programming error caught at startup.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}

// Users resolves the users query.
func (r *Resolver) Users(ctx context.Context) ([]*userResolver, error) {
	users, err := r.Auth.ListUsers(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*userResolver, 0, len(users))
	for _, u := range users {
		resolvers = append(resolvers, &userResolver{root: r, user: u})
	}
	return resolvers, nil
}

// Products resolves the products query.
func (r *Resolver) Products(ctx context.Context) ([]*productResolver, error) {
	products, err := r.Catalog.ListProducts(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	resolvers := make([]*productResolver, 0, len(products))
	for _, p := range products {
		resolvers = append(resolvers, &productResolver{root: r, product: p})
	}
	return resolvers, nil
}

// Orders resolves the orders query.
func (r *Resolver) Orders(ctx context.Context) ([]*orderResolver, error) {
	orders, err := r.Order.ListOrders(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return r.orderResolvers(orders), nil
}

// Me resolves the authenticated user, if the request carried a valid token.
func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	if authErr, ok := middleware.AuthErrorFromContext(ctx); ok {
		return nil, mapError(authErr)
	}

	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, newError(CodeUnauthenticated, "authentication required")
	}

	user, err := r.Auth.GetUser(ctx, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return &userResolver{root: r, user: *user}, nil
}

// SignUp resolves the signUp mutation, returning a signed bearer token.
func (r *Resolver) SignUp(ctx context.Context, args struct {
	Name     string
	Email    string
	Password string
}) (string, error) {
	token, err := r.Auth.SignUp(ctx, model.SignUpRequest{
		Name:     args.Name,
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return "", mapError(err)
	}
	return token, nil
}

// Login resolves the login mutation, returning a signed bearer token.
func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (string, error) {
	token, err := r.Auth.Login(ctx, model.LoginRequest{
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return "", mapError(err)
	}
	return token, nil
}

// CreateProduct resolves the createProduct mutation.
func (r *Resolver) CreateProduct(ctx context.Context, args struct {
	Name        string
	Description string
	Price       float64
}) (*productResolver, error) {
	product, err := r.Catalog.CreateProduct(ctx, model.CreateProductRequest{
		Name:        args.Name,
		Description: args.Description,
		Price:       args.Price,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &productResolver{root: r, product: *product}, nil
}

// CreateOrder resolves the createOrder mutation.
func (r *Resolver) CreateOrder(ctx context.Context, args struct {
	UserID    graphql.ID
	ProductID graphql.ID
	Quantity  int32
}) (*orderResolver, error) {
	order, err := r.Order.CreateOrder(ctx, model.CreateOrderRequest{
		UserID:    string(args.UserID),
		ProductID: string(args.ProductID),
		Quantity:  args.Quantity,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &orderResolver{root: r, order: *order}, nil
}

func (r *Resolver) orderResolvers(orders []model.Order) []*orderResolver {
	resolvers := make([]*orderResolver, 0, len(orders))
	for _, o := range orders {
		resolvers = append(resolvers, &orderResolver{root: r, order: o})
	}
	return resolvers
}

type userResolver struct {
	root *Resolver
	user model.User
}

func (r *userResolver) ID() graphql.ID { return graphql.ID(r.user.ID) }
func (r *userResolver) Name() string   { return r.user.Name }
func (r *userResolver) Email() string  { return r.user.Email }

func (r *userResolver) Orders(ctx context.Context) ([]*orderResolver, error) {
	orders, err := r.root.Order.ListOrdersByUser(ctx, r.user.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return r.root.orderResolvers(orders), nil
}

type productResolver struct {
	root    *Resolver
	product model.Product
}

func (r *productResolver) ID() graphql.ID      { return graphql.ID(r.product.ID) }
func (r *productResolver) Name() string        { return r.product.Name }
func (r *productResolver) Description() string { return r.product.Description }
func (r *productResolver) Price() float64      { return r.product.Price }

func (r *productResolver) Orders(ctx context.Context) ([]*orderResolver, error) {
	orders, err := r.root.Order.ListOrdersByProduct(ctx, r.product.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return r.root.orderResolvers(orders), nil
}

type orderResolver struct {
	root  *Resolver
	order model.Order
}

func (r *orderResolver) ID() graphql.ID  { return graphql.ID(r.order.ID) }
func (r *orderResolver) Quantity() int32 { return r.order.Quantity }

func (r *orderResolver) User(ctx context.Context) (*userResolver, error) {
	user, err := r.root.Auth.GetUser(ctx, r.order.UserID)
	if err != nil {
		return nil, mapError(err)
	}
	return &userResolver{root: r.root, user: *user}, nil
}

func (r *orderResolver) Product(ctx context.Context) (*productResolver, error) {
	product, err := r.root.Catalog.GetProduct(ctx, r.order.ProductID)
	if err != nil {
		return nil, mapError(err)
	}
	return &productResolver{root: r.root, product: *product}, nil
}
