package cart

import (
	"context"
	"fmt"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Service holds the customer's cart. Every mutation persists the whole
// item list and is immediately visible in the derived totals.
type Service struct {
	repo   interfaces.CartRepository
	logger logger.Logger
}

func NewService(repo interfaces.CartRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr}
}

var _ interfaces.CartService = (*Service)(nil)

func (s *Service) Items(ctx context.Context) ([]domain.CartItem, error) {
	return s.repo.Cart(ctx)
}

// Add puts a product in the cart, incrementing the quantity if it is
// already there. At most one entry per product ID.
func (s *Service) Add(ctx context.Context, product domain.Product) error {
	items, err := s.repo.Cart(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{Product: product, Quantity: 1})
	}

	if err := s.repo.SaveCart(ctx, items); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug("cart_item_added", "Product added to cart", "", map[string]interface{}{
		"product_id": product.ID,
	})
	return nil
}

// UpdateQuantity sets the quantity for a product, clamped to a minimum
// of 1. Unknown product IDs are ignored.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.repo.Cart(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	return s.repo.SaveCart(ctx, items)
}

func (s *Service) Remove(ctx context.Context, productID string) error {
	items, err := s.repo.Cart(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}

	return s.repo.SaveCart(ctx, kept)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.repo.ClearCart(ctx)
}

// Summary returns the cart with its derived item count and total.
func (s *Service) Summary(ctx context.Context) (interfaces.CartSummary, error) {
	items, err := s.repo.Cart(ctx)
	if err != nil {
		return interfaces.CartSummary{}, err
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return interfaces.CartSummary{
		Items:     items,
		ItemCount: count,
		Total:     domain.Subtotal(items),
	}, nil
}
