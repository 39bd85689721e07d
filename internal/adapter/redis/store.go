package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// Store persists every logical key as a JSON value in Redis. All
// writes are whole-value overwrites; there is no cross-key
// transaction, matching the single-writer model of the storefront.
type Store struct {
	client *goredis.Client
}

func New(addr string) *Store {
	return &Store{client: goredis.NewClient(&goredis.Options{Addr: addr})}
}

// NewWithClient wraps an existing client, used by tests with miniredis.
func NewWithClient(client *goredis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

var _ interfaces.Store = (*Store)(nil)

func (s *Store) get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return raw, nil
}

func (s *Store) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	raw, err := s.get(ctx, KeyProducts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		// First read seeds the sample catalog.
		seeded := domain.SampleProducts()
		if err := s.set(ctx, KeyProducts, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (s *Store) SaveProducts(ctx context.Context, products []domain.Product) error {
	return s.set(ctx, KeyProducts, products)
}

func (s *Store) Orders(ctx context.Context) ([]domain.Order, error) {
	raw, err := s.get(ctx, KeyOrders)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.Order{}, nil
	}

	var orders []domain.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *Store) SaveOrders(ctx context.Context, orders []domain.Order) error {
	return s.set(ctx, KeyOrders, orders)
}

func (s *Store) Cart(ctx context.Context) ([]domain.CartItem, error) {
	raw, err := s.get(ctx, KeyCart)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.CartItem{}, nil
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *Store) SaveCart(ctx context.Context, items []domain.CartItem) error {
	return s.set(ctx, KeyCart, items)
}

func (s *Store) ClearCart(ctx context.Context) error {
	if err := s.client.Del(ctx, KeyCart).Err(); err != nil {
		return fmt.Errorf("del %s: %w", KeyCart, err)
	}
	return nil
}

func (s *Store) DeliverySettings(ctx context.Context) ([]byte, error) {
	return s.get(ctx, KeyDeliverySettings)
}

func (s *Store) SaveDeliverySettings(ctx context.Context, settings domain.DeliverySettings) error {
	return s.set(ctx, KeyDeliverySettings, settings)
}

func (s *Store) StoreSettings(ctx context.Context) ([]byte, error) {
	return s.get(ctx, KeyStoreSettings)
}

func (s *Store) SaveStoreSettings(ctx context.Context, settings domain.StoreSettings) error {
	return s.set(ctx, KeyStoreSettings, settings)
}

func (s *Store) Session(ctx context.Context) (*domain.Session, error) {
	raw, err := s.get(ctx, KeySession)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		// Corrupted session records are discarded, not surfaced.
		_ = s.client.Del(ctx, KeySession).Err()
		return nil, nil
	}
	return &session, nil
}

func (s *Store) SaveSession(ctx context.Context, session domain.Session) error {
	return s.set(ctx, KeySession, session)
}

func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.client.Del(ctx, KeySession).Err(); err != nil {
		return fmt.Errorf("del %s: %w", KeySession, err)
	}
	return nil
}
