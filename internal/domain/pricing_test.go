package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func item(id string, price float64, qty int) CartItem {
	return CartItem{
		Product:  Product{ID: id, Name: "Item " + id, Price: price, Available: true},
		Quantity: qty,
	}
}

func floatPtr(f float64) *float64 { return &f }

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  float64
	}{
		{name: "empty_cart", items: nil, want: 0},
		{name: "single_item", items: []CartItem{item("1", 10.50, 2)}, want: 21.00},
		{
			name:  "multiple_items",
			items: []CartItem{item("1", 45.90, 1), item("2", 9.90, 3)},
			want:  75.60,
		},
		{
			name:  "order_independent",
			items: []CartItem{item("2", 9.90, 3), item("1", 45.90, 1)},
			want:  75.60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Subtotal(tt.items), 1e-9)
		})
	}
}

func TestFreeDelivery(t *testing.T) {
	tests := []struct {
		name      string
		subtotal  float64
		threshold *float64
		want      bool
	}{
		{name: "disabled_when_nil", subtotal: 1000, threshold: nil, want: false},
		{name: "below_threshold", subtotal: 49.99, threshold: floatPtr(50), want: false},
		{name: "at_threshold", subtotal: 50, threshold: floatPtr(50), want: true},
		{name: "above_threshold", subtotal: 80, threshold: floatPtr(50), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DeliverySettings{FreeDeliveryThreshold: tt.threshold}
			assert.Equal(t, tt.want, FreeDelivery(tt.subtotal, settings))
		})
	}
}

func TestQuote(t *testing.T) {
	settings := DeliverySettings{
		DeliveryFee:  5,
		MinimumOrder: 25,
	}

	t.Run("delivery_charges_fee", func(t *testing.T) {
		q := Quote([]CartItem{item("1", 30, 1)}, DeliveryTypeDelivery, settings)
		assert.Equal(t, 30.0, q.Subtotal)
		assert.Equal(t, 5.0, q.DeliveryFee)
		assert.Equal(t, 35.0, q.Total)
		assert.True(t, q.MinimumMet)
		assert.False(t, q.FreeDelivery)
	})

	t.Run("pickup_has_no_fee", func(t *testing.T) {
		q := Quote([]CartItem{item("1", 30, 1)}, DeliveryTypePickup, settings)
		assert.Equal(t, 0.0, q.DeliveryFee)
		assert.Equal(t, 30.0, q.Total)
	})

	t.Run("free_delivery_zeroes_fee", func(t *testing.T) {
		s := settings
		s.FreeDeliveryThreshold = floatPtr(30)
		q := Quote([]CartItem{item("1", 30, 1)}, DeliveryTypeDelivery, s)
		assert.True(t, q.FreeDelivery)
		assert.Equal(t, 0.0, q.DeliveryFee)
		assert.Equal(t, 30.0, q.Total)
	})

	t.Run("total_is_subtotal_plus_fee", func(t *testing.T) {
		q := Quote([]CartItem{item("1", 19.90, 2), item("2", 9.90, 1)}, DeliveryTypeDelivery, settings)
		assert.InDelta(t, q.Subtotal+q.DeliveryFee, q.Total, 1e-9)
	})

	t.Run("minimum_compares_total_not_subtotal", func(t *testing.T) {
		// Subtotal 21 misses the 25 minimum, but the 5 fee pushes the
		// total over it.
		q := Quote([]CartItem{item("1", 21, 1)}, DeliveryTypeDelivery, settings)
		assert.Equal(t, 26.0, q.Total)
		assert.True(t, q.MinimumMet)

		q = Quote([]CartItem{item("1", 21, 1)}, DeliveryTypePickup, settings)
		assert.False(t, q.MinimumMet)
	})

	t.Run("empty_cart", func(t *testing.T) {
		q := Quote(nil, DeliveryTypeDelivery, settings)
		assert.Equal(t, 0.0, q.Subtotal)
		assert.False(t, q.MinimumMet)
	})

	t.Run("empty_cart_zero_minimum", func(t *testing.T) {
		s := settings
		s.MinimumOrder = 0
		s.DeliveryFee = 0
		q := Quote(nil, DeliveryTypeDelivery, s)
		assert.True(t, q.MinimumMet)
	})
}
