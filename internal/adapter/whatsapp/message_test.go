package whatsapp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sabordacasa/storefront/internal/domain"
)

func sampleOrder(deliveryType domain.DeliveryType, payment domain.PaymentMethod) domain.Order {
	return domain.Order{
		ID: "1770000000000",
		Items: []domain.CartItem{
			{Product: domain.Product{ID: "1", Name: "Feijoada Completa", Price: 45.90}, Quantity: 2},
			{Product: domain.Product{ID: "4", Name: "Suco de Laranja", Price: 9.90}, Quantity: 1},
		},
		Customer: domain.OrderCustomer{
			Name:          "Maria Silva",
			WhatsApp:      "11988887777",
			Address:       "Rua das Flores, 123",
			DeliveryType:  deliveryType,
			PaymentMethod: payment,
		},
		Subtotal:    101.70,
		DeliveryFee: 5,
		Total:       106.70,
		Status:      domain.StatusNew,
		CreatedAt:   time.Date(2026, 8, 3, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "R$ 0,00"},
		{5, "R$ 5,00"},
		{45.9, "R$ 45,90"},
		{106.7, "R$ 106,70"},
		{1234.56, "R$ 1.234,56"},
		{1234567.89, "R$ 1.234.567,89"},
		{-12.5, "-R$ 12,50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBRL(tt.amount))
	}
}

func TestOrderMessage_Delivery(t *testing.T) {
	msg := OrderMessage(sampleOrder(domain.DeliveryTypeDelivery, domain.PaymentCard))

	assert.Contains(t, msg, "• 2x Feijoada Completa - R$ 91,80")
	assert.Contains(t, msg, "• 1x Suco de Laranja - R$ 9,90")
	assert.Contains(t, msg, "Entrega")
	assert.Contains(t, msg, "*Pagamento:* Cartão")
	assert.Contains(t, msg, "*Taxa de entrega:* R$ 5,00")
	assert.Contains(t, msg, "*Total:* R$ 106,70")
	assert.NotContains(t, msg, "Troco")
}

func TestOrderMessage_PickupOmitsFeeLine(t *testing.T) {
	order := sampleOrder(domain.DeliveryTypePickup, domain.PaymentCash)
	order.DeliveryFee = 0
	order.Total = order.Subtotal

	msg := OrderMessage(order)
	assert.Contains(t, msg, "Retirada no local")
	assert.NotContains(t, msg, "Taxa de entrega")
}

func TestOrderMessage_FreeDelivery(t *testing.T) {
	order := sampleOrder(domain.DeliveryTypeDelivery, domain.PaymentCash)
	order.DeliveryFee = 0
	order.Total = order.Subtotal

	msg := OrderMessage(order)
	assert.Contains(t, msg, "*Taxa de entrega:* GRÁTIS")
}

func TestOrderMessage_CashWithChange(t *testing.T) {
	order := sampleOrder(domain.DeliveryTypeDelivery, domain.PaymentCash)
	changeFor := 150.0
	order.Customer.ChangeFor = &changeFor

	msg := OrderMessage(order)
	assert.Contains(t, msg, "*Pagamento:* Dinheiro")
	assert.Contains(t, msg, "*Troco para:* R$ 150,00 (Troco: R$ 43,30)")
}

func TestOrderMessage_PixNotes(t *testing.T) {
	msg := OrderMessage(sampleOrder(domain.DeliveryTypeDelivery, domain.PaymentPix))

	assert.Contains(t, msg, "*Pagamento:* PIX")
	assert.Contains(t, msg, "*Comprovante anexado no sistema*")
	assert.Contains(t, msg, "confirmação do pagamento")
}

func TestDeepLink(t *testing.T) {
	link := DeepLink("5511999999999", sampleOrder(domain.DeliveryTypeDelivery, domain.PaymentCard))

	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?text="))
	// The pre-filled text travels percent-encoded.
	assert.NotContains(t, link, " ")
	assert.Contains(t, link, "Feijoada+Completa")
}
