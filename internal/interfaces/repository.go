package interfaces

import (
	"context"

	"github.com/sabordacasa/storefront/internal/domain"
)

// Store is the key-value persistence layer. Each logical key has a
// typed pair of accessors; reads seed defaults when the key is absent.
// Writes overwrite the whole value: last write wins.
type Store interface {
	ProductRepository
	OrderRepository
	CartRepository
	SettingsRepository
	SessionRepository
}

type ProductRepository interface {
	Products(ctx context.Context) ([]domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error
}

type OrderRepository interface {
	Orders(ctx context.Context) ([]domain.Order, error)
	SaveOrders(ctx context.Context, orders []domain.Order) error
}

type CartRepository interface {
	Cart(ctx context.Context) ([]domain.CartItem, error)
	SaveCart(ctx context.Context, items []domain.CartItem) error
	ClearCart(ctx context.Context) error
}

type SettingsRepository interface {
	// DeliverySettings and StoreSettings return the raw persisted JSON
	// (nil if absent) so the settings service can run its
	// default-merge/migration pass over whatever shape was stored.
	DeliverySettings(ctx context.Context) ([]byte, error)
	SaveDeliverySettings(ctx context.Context, settings domain.DeliverySettings) error
	StoreSettings(ctx context.Context) ([]byte, error)
	SaveStoreSettings(ctx context.Context, settings domain.StoreSettings) error
}

type SessionRepository interface {
	// Session returns nil with no error when no session is stored or
	// the stored record is malformed.
	Session(ctx context.Context) (*domain.Session, error)
	SaveSession(ctx context.Context, session domain.Session) error
	ClearSession(ctx context.Context) error
}
