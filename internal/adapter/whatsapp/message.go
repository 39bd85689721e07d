package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sabordacasa/storefront/internal/domain"
)

// The storefront hands finished orders to the restaurant's WhatsApp
// number as a pre-filled message behind a wa.me deep link. Only the
// message content and addressing are owned here; the transport is the
// customer's WhatsApp client.

// OrderMessage renders the human-readable order summary sent to the
// store.
func OrderMessage(order domain.Order) string {
	var b strings.Builder

	for i, item := range order.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %dx %s - %s", item.Quantity, item.Product.Name,
			FormatBRL(item.Product.Price*float64(item.Quantity)))
	}

	b.WriteString("\n\n")
	if order.Customer.DeliveryType == domain.DeliveryTypeDelivery {
		b.WriteString("Entrega")
	} else {
		b.WriteString("Retirada no local")
	}

	b.WriteString("\n\n")
	fmt.Fprintf(&b, "*Pagamento:* %s", order.Customer.PaymentMethod.Label())

	if order.Customer.PaymentMethod == domain.PaymentCash && order.Customer.ChangeFor != nil {
		change := *order.Customer.ChangeFor - order.Total
		fmt.Fprintf(&b, "\n*Troco para:* %s (Troco: %s)", FormatBRL(*order.Customer.ChangeFor), FormatBRL(change))
	}
	if order.Customer.PaymentMethod == domain.PaymentPix {
		b.WriteString("\n⚠️ *Comprovante anexado no sistema*")
		b.WriteString("\n_O pedido será preparado após a confirmação do pagamento._")
	}

	b.WriteString("\n\n")
	if order.Customer.DeliveryType == domain.DeliveryTypeDelivery {
		if order.DeliveryFee == 0 {
			b.WriteString("*Taxa de entrega:* GRÁTIS\n")
		} else {
			fmt.Fprintf(&b, "*Taxa de entrega:* %s\n", FormatBRL(order.DeliveryFee))
		}
	}

	b.WriteString("\n\n")
	fmt.Fprintf(&b, "*Total:* %s", FormatBRL(order.Total))

	return b.String()
}

// DeepLink builds the wa.me URL that opens a chat with the store
// number and the order summary pre-filled.
func DeepLink(number string, order domain.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(OrderMessage(order)))
}

// FormatBRL formats an amount the Brazilian way: "R$ 1.234,56".
func FormatBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), frac)
}
