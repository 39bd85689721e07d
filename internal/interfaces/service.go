package interfaces

import (
	"context"

	"github.com/sabordacasa/storefront/internal/domain"
)

// Команды для сервисов

type CheckoutCommand struct {
	Customer domain.OrderCustomer
}

// CheckoutResult is returned to the storefront after a successful
// order submission.
type CheckoutResult struct {
	Order       domain.Order
	WhatsAppURL string
}

type CreateProductCommand struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
	Available   bool
}

// Интерфейсы Сервисов (Business Logic)

type CartService interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, product domain.Product) error
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	Remove(ctx context.Context, productID string) error
	Clear(ctx context.Context) error
	Summary(ctx context.Context) (CartSummary, error)
}

type CartSummary struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Total     float64           `json:"total"`
}

type CheckoutService interface {
	Checkout(ctx context.Context, cmd CheckoutCommand) (*CheckoutResult, error)
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.Status) error
	UpdatePixStatus(ctx context.Context, orderID string, status domain.PixStatus) error
}

type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error)
	Update(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, productID string) error
	ToggleAvailability(ctx context.Context, productID string) error
}

type SettingsService interface {
	Delivery(ctx context.Context) (domain.DeliverySettings, error)
	SaveDelivery(ctx context.Context, settings domain.DeliverySettings) error
	Store(ctx context.Context) (domain.StoreSettings, error)
	SaveStore(ctx context.Context, settings domain.StoreSettings) error
	PixQRCode(ctx context.Context) ([]byte, string, error)
}

type AuthService interface {
	Login(ctx context.Context, taxID, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*domain.Session, error)
}

// AuthProvider verifies admin credentials. Two variants exist: one
// backed by the external identity database and a hardcoded local
// fallback used when that backend is not configured.
type AuthProvider interface {
	Authenticate(ctx context.Context, taxID, password string) (*domain.AdminUser, error)
}
