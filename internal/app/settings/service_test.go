package settings

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabordacasa/storefront/internal/adapter/bus"
	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/adapter/memory"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

func newService(t *testing.T) (*Service, *memory.Store, *bus.Bus) {
	t.Helper()
	store := memory.New()
	lgr := logger.Nop()
	eventBus := bus.New(lgr)
	return NewService(store, eventBus, DefaultQRGenerator{}, lgr), store, eventBus
}

func TestDelivery_SeedsDefaultsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	settings, err := svc.Delivery(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, settings.DeliveryFee, 0.001)
	assert.InDelta(t, 25.0, settings.MinimumOrder, 0.001)
	assert.Nil(t, settings.FreeDeliveryThreshold)
	assert.True(t, settings.Pix.Enabled)

	raw, err := store.DeliverySettings(ctx)
	require.NoError(t, err)
	assert.NotNil(t, raw)
}

func TestDelivery_MergesAbsentFields(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	// Persisted before the PIX block and threshold existed.
	store.SeedRaw(memory.KeyDeliverySettings, []byte(`{"deliveryFee":8,"minimumOrder":40}`))

	settings, err := svc.Delivery(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, settings.DeliveryFee, 0.001)
	assert.InDelta(t, 40.0, settings.MinimumOrder, 0.001)
	assert.Equal(t, "pix@restaurante.com", settings.Pix.Key)
	assert.True(t, settings.Pix.Enabled)
}

func TestStore_SeedsDefaultsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)

	settings, err := svc.Store(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sabor da Casa", settings.Name)
	require.NotNil(t, settings.BusinessHours)
	assert.Equal(t, "11:00", settings.BusinessHours.Weekday.Open)
}

func TestStore_MigratesLegacyWeekendFields(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	store.SeedRaw(memory.KeyStoreSettings, []byte(`{
		"name": "Cantina da Nona",
		"footer": {"weekendHours": "Fim de semana: 12h - 20h"},
		"businessHours": {
			"weekday": {"open": "10:00", "close": "22:00"},
			"weekend": {"open": "12:00", "close": "20:00"}
		}
	}`))

	settings, err := svc.Store(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cantina da Nona", settings.Name)
	assert.Equal(t, "Fim de semana: 12h - 20h", settings.Footer.SaturdayHours)
	assert.Equal(t, "Fim de semana: 12h - 20h", settings.Footer.SundayHours)

	require.NotNil(t, settings.BusinessHours)
	assert.Equal(t, domain.TimeRange{Open: "10:00", Close: "22:00"}, settings.BusinessHours.Weekday)
	assert.Equal(t, domain.TimeRange{Open: "12:00", Close: "20:00"}, settings.BusinessHours.Saturday)
	assert.Equal(t, domain.TimeRange{Open: "12:00", Close: "20:00"}, settings.BusinessHours.Sunday)
}

func TestStore_SplitFieldsWinOverWeekend(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	store.SeedRaw(memory.KeyStoreSettings, []byte(`{
		"footer": {
			"weekendHours": "Fim de semana: 12h - 20h",
			"saturdayHours": "Sábado: 11h - 21h"
		},
		"businessHours": {
			"weekday": {"open": "10:00", "close": "22:00"},
			"saturday": {"open": "11:00", "close": "21:00"},
			"weekend": {"open": "12:00", "close": "20:00"}
		}
	}`))

	settings, err := svc.Store(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sábado: 11h - 21h", settings.Footer.SaturdayHours)
	assert.Equal(t, "Fim de semana: 12h - 20h", settings.Footer.SundayHours)
	assert.Equal(t, domain.TimeRange{Open: "11:00", Close: "21:00"}, settings.BusinessHours.Saturday)
	assert.Equal(t, domain.TimeRange{Open: "12:00", Close: "20:00"}, settings.BusinessHours.Sunday)
}

func TestStore_NullBusinessHoursFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	store.SeedRaw(memory.KeyStoreSettings, []byte(`{"name": "Teste", "businessHours": null}`))

	settings, err := svc.Store(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings.BusinessHours)
	assert.Equal(t, domain.DefaultStoreSettings().BusinessHours, settings.BusinessHours)
}

func TestStore_ZeroedDisplayFieldsGetDefaults(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService(t)

	store.SeedRaw(memory.KeyStoreSettings, []byte(`{"mobileProductsPerRow": 0, "themeColor": ""}`))

	settings, err := svc.Store(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, settings.MobileProductsPerRow)
	assert.Equal(t, domain.ThemeRed, settings.ThemeColor)
}

func TestSave_PublishesSettingsUpdated(t *testing.T) {
	ctx := context.Background()
	svc, _, eventBus := newService(t)

	events, cancel := eventBus.Subscribe()
	defer cancel()

	require.NoError(t, svc.SaveDelivery(ctx, domain.DefaultDeliverySettings()))
	event := <-events
	assert.Equal(t, interfaces.EventSettingsUpdated, event.Type)

	require.NoError(t, svc.SaveStore(ctx, domain.DefaultStoreSettings()))
	event = <-events
	assert.Equal(t, interfaces.EventSettingsUpdated, event.Type)
}

func TestPixQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("generated from key", func(t *testing.T) {
		svc, _, _ := newService(t)
		data, contentType, err := svc.PixQRCode(ctx)
		require.NoError(t, err)
		assert.Equal(t, "image/png", contentType)
		assert.NotEmpty(t, data)
	})

	t.Run("uploaded image wins", func(t *testing.T) {
		svc, _, _ := newService(t)
		uploaded := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("qr"))
		settings := domain.DefaultDeliverySettings()
		settings.Pix.QRCodeImage = &uploaded
		require.NoError(t, svc.SaveDelivery(ctx, settings))

		data, contentType, err := svc.PixQRCode(ctx)
		require.NoError(t, err)
		assert.Equal(t, "image/jpeg", contentType)
		assert.Equal(t, []byte("qr"), data)
	})

	t.Run("disabled", func(t *testing.T) {
		svc, _, _ := newService(t)
		settings := domain.DefaultDeliverySettings()
		settings.Pix.Enabled = false
		require.NoError(t, svc.SaveDelivery(ctx, settings))

		_, _, err := svc.PixQRCode(ctx)
		assert.ErrorIs(t, err, ErrPixDisabled)
	})
}
