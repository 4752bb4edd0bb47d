package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCanceled   OrderStatus = "Canceled"
)

// LineItem is a point-in-time copy of a catalog product taken when the
// order is placed. It is never resynchronized with the catalog afterwards.
type LineItem struct {
	ProductID uint64          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
}

// OrderItemRequest is a cart line as submitted by the client. Prices are
// resolved from the catalog server-side, never taken from the request.
type OrderItemRequest struct {
	ProductID uint64
	Quantity  int64
}

type Order struct {
	ID        uint64
	UserID    uint64
	Items     []LineItem
	Total     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner display fields, filled only for admin listings. Nil when the
	// owner cannot be resolved.
	OwnerName  *string
	OwnerEmail *string
}
