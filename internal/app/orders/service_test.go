package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/adapter/memory"
	"github.com/sabordacasa/storefront/internal/domain"
)

func seed(t *testing.T, store *memory.Store, orders ...domain.Order) {
	t.Helper()
	require.NoError(t, store.SaveOrders(context.Background(), orders))
}

func pixOrder(id string, status domain.PixStatus) domain.Order {
	return domain.Order{
		ID:        id,
		Status:    domain.StatusNew,
		PixStatus: &status,
		CreatedAt: time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC),
	}
}

func cashOrder(id string) domain.Order {
	return domain.Order{
		ID:        id,
		Status:    domain.StatusNew,
		CreatedAt: time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewService(store, logger.Nop())
	seed(t, store, cashOrder("100"), cashOrder("200"))

	order, err := svc.Get(ctx, "200")
	require.NoError(t, err)
	assert.Equal(t, "200", order.ID)

	_, err = svc.Get(ctx, "999")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewService(store, logger.Nop())
	seed(t, store, cashOrder("100"))

	require.NoError(t, svc.UpdateStatus(ctx, "100", domain.StatusDelivered))

	order, err := svc.Get(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDelivered, order.Status)

	// Any status may follow any status, including moving backwards.
	require.NoError(t, svc.UpdateStatus(ctx, "100", domain.StatusNew))
	order, err = svc.Get(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, order.Status)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, "100", domain.Status("cancelled")), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, "999", domain.StatusPreparing), ErrOrderNotFound)
}

func TestUpdatePixStatus_ConfirmForcesPreparing(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewService(store, logger.Nop())
	seed(t, store, pixOrder("100", domain.PixAwaiting))

	require.NoError(t, svc.UpdatePixStatus(ctx, "100", domain.PixConfirmed))

	order, err := svc.Get(ctx, "100")
	require.NoError(t, err)
	require.NotNil(t, order.PixStatus)
	assert.Equal(t, domain.PixConfirmed, *order.PixStatus)
	assert.Equal(t, domain.StatusPreparing, order.Status)
}

func TestUpdatePixStatus_RejectKeepsStatus(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewService(store, logger.Nop())
	seed(t, store, pixOrder("100", domain.PixAwaiting))

	require.NoError(t, svc.UpdatePixStatus(ctx, "100", domain.PixRejected))

	order, err := svc.Get(ctx, "100")
	require.NoError(t, err)
	require.NotNil(t, order.PixStatus)
	assert.Equal(t, domain.PixRejected, *order.PixStatus)
	assert.Equal(t, domain.StatusNew, order.Status)
}

func TestUpdatePixStatus_Errors(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewService(store, logger.Nop())
	seed(t, store, cashOrder("100"), pixOrder("200", domain.PixAwaiting))

	assert.ErrorIs(t, svc.UpdatePixStatus(ctx, "100", domain.PixConfirmed), ErrNotPixOrder)
	assert.ErrorIs(t, svc.UpdatePixStatus(ctx, "999", domain.PixConfirmed), ErrOrderNotFound)
	assert.ErrorIs(t, svc.UpdatePixStatus(ctx, "200", domain.PixStatus("paid")), ErrInvalidPixState)
}
