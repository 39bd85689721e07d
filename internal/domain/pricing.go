package domain

// PriceQuote is the checkout pricing breakdown derived from cart
// contents and delivery settings. Total = Subtotal + DeliveryFee.
type PriceQuote struct {
	Subtotal     float64 `json:"subtotal"`
	FreeDelivery bool    `json:"freeDelivery"`
	DeliveryFee  float64 `json:"deliveryFee"`
	Total        float64 `json:"total"`
	MinimumMet   bool    `json:"minimumMet"`
}

// Subtotal sums unit price times quantity over the cart.
func Subtotal(items []CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// FreeDelivery reports whether the subtotal qualifies for free
// delivery. A nil threshold means the feature is disabled.
func FreeDelivery(subtotal float64, settings DeliverySettings) bool {
	return settings.FreeDeliveryThreshold != nil && subtotal >= *settings.FreeDeliveryThreshold
}

// DeliveryFee returns the fee applied on top of the subtotal. Pickup
// orders and free-delivery-eligible carts pay nothing.
func DeliveryFee(deliveryType DeliveryType, subtotal float64, settings DeliverySettings) float64 {
	if deliveryType != DeliveryTypeDelivery || FreeDelivery(subtotal, settings) {
		return 0
	}
	return settings.DeliveryFee
}

// Quote computes the full pricing breakdown. Pure function of
// (cart, delivery type, settings). The minimum-order check compares
// against the total, not the subtotal.
func Quote(items []CartItem, deliveryType DeliveryType, settings DeliverySettings) PriceQuote {
	subtotal := Subtotal(items)
	free := FreeDelivery(subtotal, settings)
	fee := DeliveryFee(deliveryType, subtotal, settings)
	total := subtotal + fee

	return PriceQuote{
		Subtotal:     subtotal,
		FreeDelivery: free,
		DeliveryFee:  fee,
		Total:        total,
		MinimumMet:   total >= settings.MinimumOrder,
	}
}
