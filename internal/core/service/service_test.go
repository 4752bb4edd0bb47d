package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/mcirstea/storefront/internal/adapter/auth"
	"github.com/mcirstea/storefront/internal/adapter/config"
	"github.com/mcirstea/storefront/internal/core/domain"
	"github.com/mcirstea/storefront/internal/core/port/mock"
	"github.com/mcirstea/storefront/internal/core/service"
	"github.com/mcirstea/storefront/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func TestService_UserRegister(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type userRegisterTest struct {
		name      string
		user      domain.User
		mock      prepareMocks
		expError  error
		expResult *domain.User
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Name:     "Test User",
		Email:    "test@example.com",
		Login:    "test",
		Password: hashedPass,
		Role:     domain.RoleCustomer,
	}

	tests := []userRegisterTest{
		{
			name: "Register good",
			user: domain.User{Name: user.Name, Email: user.Email, Login: user.Login, Password: hashedPass},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&user, nil)
			},
			expError:  nil,
			expResult: &user,
		},
		{
			name: "Register already exists",
			user: domain.User{Name: user.Name, Email: user.Email, Login: user.Login, Password: hashedPass},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError:  domain.ErrConflictingData,
			expResult: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.RegisterUser(context.Background(), &test.user)

			assert.Equal(t, test.expResult, result)
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type userLoginTest struct {
		name     string
		login    string
		password string
		mock     prepareMocks
		expError error
	}

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		ID:       1,
		Login:    "test",
		Password: hashedPass,
		Role:     domain.RoleAdmin,
	}

	tests := []userLoginTest{
		{
			name:     "Login good",
			login:    user.Login,
			password: "test",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: nil,
		},
		{
			name:     "Password bad",
			login:    user.Login,
			password: "hacker",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), user.Login).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login bad",
			login:    "hacker",
			password: "test",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().GetUserByLogin(gomock.Any(), "hacker").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts, err := auth.New(&config.Token{})
			assert.NoError(t, err)

			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			token, err := s.LoginUser(context.Background(), test.login, test.password)
			assert.Equal(t, test.expError, err)

			if token != "" {
				payload, err := ts.VerifyToken(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, payload.UserID)
				assert.Equal(t, user.Role, payload.Role)
			}
		})
	}
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	widget := &domain.Product{ID: 7, Name: "Widget", Price: decimal.MustParse("9.5")}

	type createOrderTest struct {
		name     string
		items    []domain.OrderItemRequest
		mock     prepareMocks
		expError error
	}

	tests := []createOrderTest{
		{
			name:  "Create good order",
			items: []domain.OrderItemRequest{{ProductID: 7, Quantity: 2}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{7}).
					Return([]*domain.Product{widget}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, order *domain.Order) (*domain.Order, error) {
						order.ID = 1
						return order, nil
					})
			},
			expError: nil,
		},
		{
			name:     "Empty order",
			items:    []domain.OrderItemRequest{},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrEmptyOrder,
		},
		{
			name:     "Bad quantity",
			items:    []domain.OrderItemRequest{{ProductID: 7, Quantity: 0}},
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrInvalidLineItem,
		},
		{
			name:  "Unknown product",
			items: []domain.OrderItemRequest{{ProductID: 99, Quantity: 1}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{99}).
					Return([]*domain.Product{}, nil)
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name: "Duplicate product id",
			items: []domain.OrderItemRequest{
				{ProductID: 7, Quantity: 1},
				{ProductID: 7, Quantity: 2},
			},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{7}).
					Return([]*domain.Product{widget}, nil)
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name:  "Storage failure",
			items: []domain.OrderItemRequest{{ProductID: 7, Quantity: 2}},
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ListProductsByIDs(gomock.Any(), []uint64{7}).
					Return([]*domain.Product{widget}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInternal)
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.CreateOrder(context.Background(), 10, test.items)

			assert.Equal(t, test.expError, err)
			if test.expError != nil {
				assert.Nil(t, result)
				return
			}

			assert.Equal(t, uint64(10), result.UserID)
			assert.Equal(t, domain.OrderStatusPending, result.Status)
			assert.Len(t, result.Items, len(test.items))
			assert.Equal(t, domain.LineItem{
				ProductID: 7, Name: "Widget", Price: widget.Price, Quantity: 2,
			}, result.Items[0])
			assert.Zero(t, result.Total.Cmp(decimal.MustParse("19")),
				"total = %s, want 19", result.Total)
		})
	}
}

func TestService_GetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	order := &domain.Order{
		ID:     5,
		UserID: 10,
		Items:  []domain.LineItem{{ProductID: 7, Name: "Widget", Price: decimal.MustParse("9.5"), Quantity: 2}},
		Total:  decimal.MustParse("19"),
		Status: domain.OrderStatusPending,
	}

	type getOrderTest struct {
		name        string
		requesterID uint64
		role        domain.Role
		orderID     string
		mock        prepareMocks
		expError    error
		expResult   *domain.Order
	}

	tests := []getOrderTest{
		{
			name:        "Owner reads own order",
			requesterID: 10,
			role:        domain.RoleCustomer,
			orderID:     "5",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(5)).Return(order, nil)
			},
			expResult: order,
		},
		{
			name:        "Admin reads foreign order",
			requesterID: 20,
			role:        domain.RoleAdmin,
			orderID:     "5",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(5)).Return(order, nil)
			},
			expResult: order,
		},
		{
			name:        "Customer reads foreign order",
			requesterID: 20,
			role:        domain.RoleCustomer,
			orderID:     "5",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(5)).Return(order, nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:        "Order not found",
			requesterID: 10,
			role:        domain.RoleCustomer,
			orderID:     "6",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadOrder(gomock.Any(), uint64(6)).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
		{
			name:        "Bad order id",
			requesterID: 10,
			role:        domain.RoleCustomer,
			orderID:     "abc",
			mock:        func(repo *mock.MockRepository) {},
			expError:    domain.ErrInvalidOrderID,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.GetOrder(context.Background(), test.requesterID, test.role, test.orderID)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expResult, result)
		})
	}
}

func TestService_ListAllOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	t.Run("Non-admin denied", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.ListAllOrders(context.Background(), domain.RoleCustomer)
		assert.Equal(t, domain.ErrForbidden, err)
		assert.Nil(t, result)
	})

	t.Run("Admin listing annotated with owners", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		now := time.Now()
		orders := []*domain.Order{
			{ID: 2, UserID: 10, Status: domain.OrderStatusPending, CreatedAt: now},
			{ID: 1, UserID: 11, Status: domain.OrderStatusCompleted, CreatedAt: now.Add(-time.Hour)},
		}
		repo.EXPECT().ListOrders(gomock.Any()).Return(orders, nil)
		repo.EXPECT().ListUsersByIDs(gomock.Any(), []uint64{10, 11}).
			Return([]*domain.User{{ID: 10, Name: "Test User", Email: "test@example.com"}}, nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.ListAllOrders(context.Background(), domain.RoleAdmin)
		assert.NoError(t, err)
		assert.Len(t, result, 2)

		assert.NotNil(t, result[0].OwnerName)
		assert.Equal(t, "Test User", *result[0].OwnerName)
		assert.NotNil(t, result[0].OwnerEmail)
		assert.Equal(t, "test@example.com", *result[0].OwnerEmail)

		// deleted owner stays nil instead of failing the listing
		assert.Nil(t, result[1].OwnerName)
		assert.Nil(t, result[1].OwnerEmail)
	})

	t.Run("Admin listing empty", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)

		repo.EXPECT().ListOrders(gomock.Any()).Return([]*domain.Order{}, nil)

		s, err := service.NewService(repo, ts, logger)
		assert.NoError(t, err)

		result, err := s.ListAllOrders(context.Background(), domain.RoleAdmin)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestService_UpdateOrderStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	updated := &domain.Order{ID: 5, UserID: 10, Status: domain.OrderStatusProcessing}

	type updateStatusTest struct {
		name      string
		role      domain.Role
		orderID   string
		status    string
		mock      prepareMocks
		expError  error
		expResult *domain.Order
	}

	tests := []updateStatusTest{
		{
			name:    "Admin updates status",
			role:    domain.RoleAdmin,
			orderID: "5",
			status:  "Processing",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(5), domain.OrderStatusProcessing).
					Return(updated, nil)
			},
			expResult: updated,
		},
		{
			name:    "Admin reverts completed order",
			role:    domain.RoleAdmin,
			orderID: "5",
			status:  "Pending",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(5), domain.OrderStatusPending).
					Return(&domain.Order{ID: 5, UserID: 10, Status: domain.OrderStatusPending}, nil)
			},
			expResult: &domain.Order{ID: 5, UserID: 10, Status: domain.OrderStatusPending},
		},
		{
			name:     "Customer denied",
			role:     domain.RoleCustomer,
			orderID:  "5",
			status:   "Processing",
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrForbidden,
		},
		{
			name:     "Unknown status value",
			role:     domain.RoleAdmin,
			orderID:  "5",
			status:   "Shipped",
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrInvalidOrderStatus,
		},
		{
			name:     "Bad order id",
			role:     domain.RoleAdmin,
			orderID:  "abc",
			status:   "Processing",
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrInvalidOrderID,
		},
		{
			name:    "Order not found",
			role:    domain.RoleAdmin,
			orderID: "6",
			status:  "Processing",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), uint64(6), domain.OrderStatusProcessing).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOrderNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			result, err := s.UpdateOrderStatus(context.Background(), test.role, test.orderID, test.status)

			assert.Equal(t, test.expError, err)
			assert.Equal(t, test.expResult, result)
		})
	}
}

func TestService_DeleteUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	type deleteUserTest struct {
		name     string
		role     domain.Role
		userID   string
		mock     prepareMocks
		expError error
	}

	tests := []deleteUserTest{
		{
			name:   "Admin deletes user",
			role:   domain.RoleAdmin,
			userID: "10",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().DeleteUser(gomock.Any(), uint64(10)).Return(nil)
			},
		},
		{
			name:     "Customer denied",
			role:     domain.RoleCustomer,
			userID:   "10",
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrForbidden,
		},
		{
			name:   "User not found",
			role:   domain.RoleAdmin,
			userID: "11",
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().DeleteUser(gomock.Any(), uint64(11)).Return(domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name:     "Bad user id",
			role:     domain.RoleAdmin,
			userID:   "abc",
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			test.mock(repo)

			s, err := service.NewService(repo, ts, logger)
			assert.NoError(t, err)

			err = s.DeleteUser(context.Background(), test.role, test.userID)
			assert.Equal(t, test.expError, err)
		})
	}
}
