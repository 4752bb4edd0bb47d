// Package pricing validates a submitted cart against the catalog and builds
// the priced snapshot an order is persisted with.
package pricing

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/mcirstea/storefront/internal/core/domain"
)

// CatalogResolver fetches current catalog records for a set of product ids.
type CatalogResolver func(ctx context.Context, productIDs []uint64) ([]*domain.Product, error)

// ValidateItems checks the submitted lines before any catalog access.
func ValidateItems(items []domain.OrderItemRequest) error {
	if len(items) == 0 {
		return domain.ErrEmptyOrder
	}
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return domain.ErrInvalidLineItem
		}
	}
	return nil
}

// ProductIDs returns the distinct product ids of the submitted lines,
// in first-seen order.
func ProductIDs(items []domain.OrderItemRequest) []uint64 {
	seen := make(map[uint64]struct{}, len(items))
	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

// PriceOrder validates the submitted lines, resolves current catalog prices
// in one batch and returns the line-item snapshot together with the order
// total. Prices always come from the catalog, never from the client.
// A submitted line referencing a missing product fails the whole order, and
// so does a duplicated product id (fewer resolved products than lines).
func PriceOrder(ctx context.Context, items []domain.OrderItemRequest,
	resolve CatalogResolver) ([]domain.LineItem, decimal.Decimal, error) {
	if err := ValidateItems(items); err != nil {
		return nil, decimal.Zero, err
	}

	products, err := resolve(ctx, ProductIDs(items))
	if err != nil {
		return nil, decimal.Zero, err
	}
	if len(products) != len(items) {
		return nil, decimal.Zero, domain.ErrProductNotFound
	}

	byID := make(map[uint64]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	snapshot := make([]domain.LineItem, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, decimal.Zero, domain.ErrProductNotFound
		}

		snapshot = append(snapshot, domain.LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  item.Quantity,
		})

		quantity, err := decimal.New(item.Quantity, 0)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("math error: %w", err)
		}
		line, err := product.Price.Mul(quantity)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("math error: %w", err)
		}
		total, err = total.Add(line)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("math error: %w", err)
		}
	}

	return snapshot, total, nil
}
