package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/adapter/whatsapp"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Validation failures are recovered locally as inline user-facing
// messages; no order is created and the cart is untouched.
var (
	ErrEmptyCart          = errors.New("o carrinho está vazio")
	ErrMinimumNotMet      = errors.New("o pedido não atingiu o valor mínimo")
	ErrStoreClosed        = errors.New("não é possível fazer pedidos fora do horário de funcionamento")
	ErrReceiptRequired    = errors.New("é obrigatório anexar o comprovante PIX")
	ErrInsufficientChange = errors.New("o valor para troco deve ser maior ou igual ao total")
	ErrInvalidCustomer    = errors.New("dados do cliente inválidos")
)

// Service turns a cart plus customer input into a persisted order and
// a WhatsApp handoff link.
type Service struct {
	store    interfaces.Store
	settings interfaces.SettingsService
	bus      interfaces.EventBus
	logger   logger.Logger
	now      func() time.Time
}

func NewService(store interfaces.Store, settings interfaces.SettingsService, bus interfaces.EventBus, lgr logger.Logger) *Service {
	return &Service{
		store:    store,
		settings: settings,
		bus:      bus,
		logger:   lgr,
		now:      time.Now,
	}
}

var _ interfaces.CheckoutService = (*Service)(nil)

// Checkout validates the submission, persists the order newest-first,
// empties the cart and builds the messaging handoff. On any validation
// failure nothing is persisted and the cart keeps its items.
func (s *Service) Checkout(ctx context.Context, cmd interfaces.CheckoutCommand) (*interfaces.CheckoutResult, error) {
	customer := cmd.Customer
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}

	items, err := s.store.Cart(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	delivery, err := s.settings.Delivery(ctx)
	if err != nil {
		return nil, err
	}
	storeSettings, err := s.settings.Store(ctx)
	if err != nil {
		return nil, err
	}

	if !domain.IsOpenAt(storeSettings.BusinessHours, s.now()) {
		return nil, ErrStoreClosed
	}

	quote := domain.Quote(items, customer.DeliveryType, delivery)
	if !quote.MinimumMet {
		return nil, ErrMinimumNotMet
	}

	if customer.PaymentMethod == domain.PaymentPix {
		if customer.PixReceipt == "" {
			return nil, ErrReceiptRequired
		}
		if err := domain.ValidateReceipt(customer.PixReceipt); err != nil {
			return nil, err
		}
	}
	if customer.PaymentMethod == domain.PaymentCash && customer.ChangeFor != nil && *customer.ChangeFor < quote.Total {
		return nil, ErrInsufficientChange
	}

	createdAt := s.now()
	order := domain.Order{
		ID:          domain.NewID(createdAt),
		Items:       items,
		Customer:    customer,
		Subtotal:    quote.Subtotal,
		DeliveryFee: quote.DeliveryFee,
		Total:       quote.Total,
		Status:      domain.StatusNew,
		CreatedAt:   createdAt,
	}
	if customer.PaymentMethod == domain.PaymentPix {
		awaiting := domain.PixAwaiting
		order.PixStatus = &awaiting
	}

	orders, err := s.store.Orders(ctx)
	if err != nil {
		return nil, err
	}
	orders = append([]domain.Order{order}, orders...)

	if err := s.store.SaveOrders(ctx, orders); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := s.store.ClearCart(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.bus.Publish(ctx, interfaces.Event{
		Type: interfaces.EventOrderCreated,
		Data: map[string]any{"order_id": order.ID, "total": order.Total},
	})

	s.logger.Info("order_created", "Order created", "", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total,
		"payment":  string(customer.PaymentMethod),
	})

	return &interfaces.CheckoutResult{
		Order:       order,
		WhatsAppURL: whatsapp.DeepLink(storeSettings.WhatsAppOrders, order),
	}, nil
}

func validateCustomer(c domain.OrderCustomer) error {
	if c.Name == "" || c.WhatsApp == "" {
		return ErrInvalidCustomer
	}
	if !c.DeliveryType.Valid() || !c.PaymentMethod.Valid() {
		return ErrInvalidCustomer
	}
	if c.DeliveryType == domain.DeliveryTypeDelivery && c.Address == "" {
		return ErrInvalidCustomer
	}
	return nil
}
