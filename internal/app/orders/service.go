package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrNotPixOrder     = errors.New("order was not paid by PIX")
	ErrInvalidPixState = errors.New("invalid pix status")
)

// Service manages persisted orders for the admin panel. Orders are
// never deleted; the list keeps insertion order, newest first.
type Service struct {
	repo   interfaces.OrderRepository
	logger logger.Logger
}

func NewService(repo interfaces.OrderRepository, lgr logger.Logger) *Service {
	return &Service{repo: repo, logger: lgr}
}

var _ interfaces.OrderService = (*Service)(nil)

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.Orders(ctx)
}

func (s *Service) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus overwrites the fulfillment status. There is no
// transition graph: any status may follow any status.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status domain.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return ErrOrderNotFound
	}

	if err := s.repo.SaveOrders(ctx, orders); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}

	s.logger.Info("order_status_updated", "Order status updated", "", map[string]interface{}{
		"order_id": orderID,
		"status":   string(status),
	})
	return nil
}

// UpdatePixStatus overwrites the payment confirmation status of a PIX
// order. Confirming also forces the fulfillment status to preparing;
// rejecting leaves it untouched.
func (s *Service) UpdatePixStatus(ctx context.Context, orderID string, status domain.PixStatus) error {
	if !status.Valid() {
		return ErrInvalidPixState
	}

	orders, err := s.repo.Orders(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range orders {
		if orders[i].ID == orderID {
			if orders[i].PixStatus == nil {
				return ErrNotPixOrder
			}
			pix := status
			orders[i].PixStatus = &pix
			if status == domain.PixConfirmed {
				orders[i].Status = domain.StatusPreparing
			}
			found = true
			break
		}
	}
	if !found {
		return ErrOrderNotFound
	}

	if err := s.repo.SaveOrders(ctx, orders); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}

	s.logger.Info("pix_status_updated", "PIX payment status updated", "", map[string]interface{}{
		"order_id":   orderID,
		"pix_status": string(status),
	})
	return nil
}
