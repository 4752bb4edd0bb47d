package port

import (
	"context"

	"github.com/mcirstea/storefront/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)
	DeleteUser(ctx context.Context, role domain.Role, userID string) error

	CreateOrder(ctx context.Context, requesterID uint64, items []domain.OrderItemRequest) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, requesterID uint64) ([]*domain.Order, error)
	ListAllOrders(ctx context.Context, role domain.Role) ([]*domain.Order, error)
	GetOrder(ctx context.Context, requesterID uint64, role domain.Role, orderID string) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, role domain.Role, orderID string, status string) (*domain.Order, error)
}
