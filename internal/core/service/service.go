package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/mcirstea/storefront/internal/core/authz"
	"github.com/mcirstea/storefront/internal/core/domain"
	"github.com/mcirstea/storefront/internal/core/port"
	"github.com/mcirstea/storefront/internal/core/pricing"
	"github.com/mcirstea/storefront/internal/core/utils"
	"go.uber.org/zap"
)

type Service struct {
	repo         port.Repository
	tokenService port.TokenService
	logger       *zap.Logger
}

func NewService(repo port.Repository, tokenService port.TokenService,
	logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:         repo,
		tokenService: tokenService,
		logger:       logger,
	}, nil
}

func (s *Service) RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	exUser, err := s.repo.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Get user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if exUser != nil {
		return nil, domain.ErrConflictingData
	}

	if user.Role == "" {
		user.Role = domain.RoleCustomer
	}

	newUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.ErrConflictingData
		}
		s.logger.Error("Create user", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newUser, nil
}

func (s *Service) LoginUser(ctx context.Context, login string, password string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", domain.ErrInternal
	}

	err = utils.ComparePassword(password, user.Password)
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokenService.CreateToken(user)
	if err != nil {
		s.logger.Error("Create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

// DeleteUser removes a user account. The user's orders go with it through
// the storage-level cascade on the owner reference.
func (s *Service) DeleteUser(ctx context.Context, role domain.Role, userID string) error {
	if role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return domain.ErrBadRequest
	}

	err = s.repo.DeleteUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrDataNotFound
		}
		s.logger.Error("Delete user", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

func (s *Service) CreateOrder(ctx context.Context, requesterID uint64,
	items []domain.OrderItemRequest) (*domain.Order, error) {
	snapshot, total, err := pricing.PriceOrder(ctx, items, s.repo.ListProductsByIDs)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyOrder) ||
			errors.Is(err, domain.ErrInvalidLineItem) ||
			errors.Is(err, domain.ErrProductNotFound) {
			return nil, err
		}
		s.logger.Error("Price order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	now := time.Now()
	order := &domain.Order{
		UserID:    requesterID,
		Items:     snapshot,
		Total:     total,
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newOrder, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, requesterID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, requesterID)
	if err != nil {
		s.logger.Error("Get orders for user", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return list, nil
}

func (s *Service) ListAllOrders(ctx context.Context, role domain.Role) ([]*domain.Order, error) {
	if !authz.CanListAll(role) {
		return nil, domain.ErrForbidden
	}

	list, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("Get all orders", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if len(list) == 0 {
		return list, nil
	}

	seen := make(map[uint64]struct{}, len(list))
	ownerIDs := make([]uint64, 0, len(list))
	for _, o := range list {
		if _, ok := seen[o.UserID]; ok {
			continue
		}
		seen[o.UserID] = struct{}{}
		ownerIDs = append(ownerIDs, o.UserID)
	}

	owners, err := s.repo.ListUsersByIDs(ctx, ownerIDs)
	if err != nil {
		s.logger.Error("Get order owners", zap.Error(err))
		return nil, domain.ErrInternal
	}

	ownersByID := make(map[uint64]*domain.User, len(owners))
	for _, u := range owners {
		ownersByID[u.ID] = u
	}

	// An order with an unresolvable owner keeps nil display fields instead
	// of failing the whole listing.
	for _, o := range list {
		if u, ok := ownersByID[o.UserID]; ok {
			o.OwnerName = &u.Name
			o.OwnerEmail = &u.Email
		}
	}

	return list, nil
}

func (s *Service) GetOrder(ctx context.Context, requesterID uint64, role domain.Role,
	orderID string) (*domain.Order, error) {
	id, err := strconv.ParseUint(orderID, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidOrderID
	}

	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Read order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	if !authz.CanView(order, requesterID, role) {
		return nil, domain.ErrForbidden
	}

	return order, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, role domain.Role,
	orderID string, status string) (*domain.Order, error) {
	if !authz.CanMutateStatus(role) {
		return nil, domain.ErrForbidden
	}

	id, err := strconv.ParseUint(orderID, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidOrderID
	}

	newStatus := domain.OrderStatus(status)
	if err := authz.ValidateStatus(newStatus); err != nil {
		return nil, err
	}

	order, err := s.repo.UpdateOrderStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		s.logger.Error("Update order status", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return order, nil
}
