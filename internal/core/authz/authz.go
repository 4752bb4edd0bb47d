// Package authz holds the authorization rules for the order lifecycle.
// Every privileged operation consults these predicates before touching
// storage, so list/get/update cannot drift apart.
package authz

import "github.com/mcirstea/storefront/internal/core/domain"

// CanListAll reports whether the role may list every order in the system.
func CanListAll(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// CanView reports whether the requester may read the given order.
// Admins see everything, customers only their own orders.
func CanView(order *domain.Order, requesterID uint64, role domain.Role) bool {
	if role == domain.RoleAdmin {
		return true
	}
	return order.UserID == requesterID
}

// CanMutateStatus reports whether the role may change an order's status.
// Ownership is irrelevant here.
func CanMutateStatus(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// ValidateStatus checks the value against the closed status set. Transitions
// between the four statuses are unrestricted.
func ValidateStatus(status domain.OrderStatus) error {
	switch status {
	case domain.OrderStatusPending,
		domain.OrderStatusProcessing,
		domain.OrderStatusCompleted,
		domain.OrderStatusCanceled:
		return nil
	}
	return domain.ErrInvalidOrderStatus
}
