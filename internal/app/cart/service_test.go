package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/adapter/memory"
	"github.com/sabordacasa/storefront/internal/domain"
)

func newService() *Service {
	return NewService(memory.New(), logger.Nop())
}

func product(id string, price float64) domain.Product {
	return domain.Product{ID: id, Name: "Produto " + id, Price: price, Available: true}
}

func TestAdd_NewAndIncrement(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	require.NoError(t, svc.Add(ctx, product("1", 10)))
	require.NoError(t, svc.Add(ctx, product("2", 5)))
	require.NoError(t, svc.Add(ctx, product("1", 10)))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	require.NoError(t, svc.Add(ctx, product("1", 10)))

	require.NoError(t, svc.UpdateQuantity(ctx, "1", 5))
	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)

	// Quantities below one clamp to one instead of removing the item.
	require.NoError(t, svc.UpdateQuantity(ctx, "1", 0))
	items, err = svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, items[0].Quantity)

	// Unknown IDs are a no-op.
	require.NoError(t, svc.UpdateQuantity(ctx, "999", 3))
	items, err = svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	require.NoError(t, svc.Add(ctx, product("1", 10)))
	require.NoError(t, svc.Add(ctx, product("2", 5)))

	require.NoError(t, svc.Remove(ctx, "1"))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Product.ID)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	require.NoError(t, svc.Add(ctx, product("1", 10)))

	require.NoError(t, svc.Clear(ctx))

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	require.NoError(t, svc.Add(ctx, product("1", 10)))
	require.NoError(t, svc.Add(ctx, product("1", 10)))
	require.NoError(t, svc.Add(ctx, product("2", 7.5)))

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.ItemCount)
	assert.InDelta(t, 27.5, summary.Total, 0.001)
	assert.Len(t, summary.Items, 2)
}
