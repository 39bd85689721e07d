package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Store is the in-memory fallback for running without Redis, and the
// fake the service tests are written against. Values are kept as
// marshalled JSON so reads observe the same decode path as the Redis
// adapter, including the settings migration pass.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

const (
	KeyProducts         = "restaurant_products"
	KeyOrders           = "restaurant_orders"
	KeyCart             = "restaurant_cart"
	KeyDeliverySettings = "restaurant_delivery_settings"
	KeyStoreSettings    = "restaurant_store_settings"
	KeySession          = "restaurant_admin_session"
)

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

var _ interfaces.Store = (*Store)(nil)

func (s *Store) get(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

func (s *Store) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *Store) del(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	raw := s.get(KeyProducts)
	if raw == nil {
		seeded := domain.SampleProducts()
		if err := s.set(KeyProducts, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) SaveProducts(ctx context.Context, products []domain.Product) error {
	return s.set(KeyProducts, products)
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	raw := s.get(KeyOrders)
	if raw == nil {
		return []domain.Order{}, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Store) SaveOrders(ctx context.Context, orders []domain.Order) error {
	return s.set(KeyOrders, orders)
}

func (s *Store) Cart(ctx context.Context) ([]domain.CartItem, error) {
	raw := s.get(KeyCart)
	if raw == nil {
		return []domain.CartItem{}, nil
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) SaveCart(ctx context.Context, items []domain.CartItem) error {
	return s.set(KeyCart, items)
}

func (s *Store) ClearCart(ctx context.Context) error {
	s.del(KeyCart)
	return nil
}

func (s *Store) DeliverySettings(ctx context.Context) ([]byte, error) {
	return s.get(KeyDeliverySettings), nil
}

func (s *Store) SaveDeliverySettings(ctx context.Context, settings domain.DeliverySettings) error {
	return s.set(KeyDeliverySettings, settings)
}

func (s *Store) StoreSettings(ctx context.Context) ([]byte, error) {
	return s.get(KeyStoreSettings), nil
}

func (s *Store) SaveStoreSettings(ctx context.Context, settings domain.StoreSettings) error {
	return s.set(KeyStoreSettings, settings)
}

func (s *Store) Session(ctx context.Context) (*domain.Session, error) {
	raw := s.get(KeySession)
	if raw == nil {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.del(KeySession)
		return nil, nil
	}
	return &session, nil
}

func (s *Store) SaveSession(ctx context.Context, session domain.Session) error {
	return s.set(KeySession, session)
}

func (s *Store) ClearSession(ctx context.Context) error {
	s.del(KeySession)
	return nil
}

// SeedRaw injects a raw JSON value under a logical key, letting tests
// exercise the read-time migration of legacy shapes.
func (s *Store) SeedRaw(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}
