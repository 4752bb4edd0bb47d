package port

import (
	"context"

	"github.com/mcirstea/storefront/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)
	ListUsersByIDs(ctx context.Context, userIDs []uint64) ([]*domain.User, error)
	DeleteUser(ctx context.Context, userID uint64) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status domain.OrderStatus) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// Catalog
	ListProductsByIDs(ctx context.Context, productIDs []uint64) ([]*domain.Product, error)
}
