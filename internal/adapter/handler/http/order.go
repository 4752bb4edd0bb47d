package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/mcirstea/storefront/internal/core/domain"
	"github.com/mcirstea/storefront/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderItemRequest struct {
	ProductID uint64 `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID        uint64            `json:"id"`
	UserID    uint64            `json:"userId"`
	Items     []domain.LineItem `json:"items"`
	Total     decimal.Decimal   `json:"total"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// AdminOrderResponse adds the owner display fields of the admin listing.
// They are null when the owner could not be resolved.
type AdminOrderResponse struct {
	OrderResponse
	UserName  *string `json:"userName"`
	UserEmail *string `json:"userEmail"`
}

func newOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     o.Items,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	req := createOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	items := make([]domain.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := oh.service.CreateOrder(ctx, userID, items)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, "Order created successfully",
		newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := oh.service.ListOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o))
	}

	oh.handleSuccess(ctx, "Orders fetched successfully", result)
}

func (oh *OrderHandler) ListAllOrders(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	list, err := oh.service.ListAllOrders(ctx, payload.Role)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]AdminOrderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, AdminOrderResponse{
			OrderResponse: newOrderResponse(o),
			UserName:      o.OwnerName,
			UserEmail:     o.OwnerEmail,
		})
	}

	oh.handleSuccess(ctx, "Orders fetched successfully", result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	order, err := oh.service.GetOrder(ctx, payload.UserID, payload.Role, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, "Order fetched successfully", newOrderResponse(order))
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	req := updateOrderStatusRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, payload.Role, ctx.Param("id"), req.Status)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, "Order updated successfully", newOrderResponse(order))
}
