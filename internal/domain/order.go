package domain

import (
	"strconv"
	"time"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
)

type PaymentMethod string

const (
	PaymentPix  PaymentMethod = "pix"
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// Status is the order's kitchen/delivery progress label. Transitions are
// deliberately unconstrained: the admin may set any status at any time.
type Status string

const (
	StatusNew       Status = "new"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
)

// PixStatus tracks manual PIX payment confirmation. Present only on
// orders paid by PIX.
type PixStatus string

const (
	PixAwaiting  PixStatus = "awaiting"
	PixConfirmed PixStatus = "confirmed"
	PixRejected  PixStatus = "rejected"
)

// OrderCustomer is the customer record captured at checkout.
type OrderCustomer struct {
	Name          string        `json:"name"`
	WhatsApp      string        `json:"whatsapp"`
	Address       string        `json:"address"`
	Notes         string        `json:"notes"`
	DeliveryType  DeliveryType  `json:"deliveryType"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	ChangeFor     *float64      `json:"changeFor,omitempty"`
	PixReceipt    string        `json:"pixReceipt,omitempty"`
}

// Order is a snapshot of cart, customer and pricing taken at checkout.
// Only Status and PixStatus are mutated afterwards, by admin action.
// Invariant: Total = Subtotal + DeliveryFee.
type Order struct {
	ID          string        `json:"id"`
	Items       []CartItem    `json:"items"`
	Customer    OrderCustomer `json:"customer"`
	Subtotal    float64       `json:"subtotal"`
	DeliveryFee float64       `json:"deliveryFee"`
	Total       float64       `json:"total"`
	Status      Status        `json:"status"`
	PixStatus   *PixStatus    `json:"pixStatus,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// NewID derives a time-based identifier, the scheme used for orders
// and catalog products alike.
func NewID(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPreparing, StatusDelivered:
		return true
	}
	return false
}

func (s PixStatus) Valid() bool {
	switch s {
	case PixAwaiting, PixConfirmed, PixRejected:
		return true
	}
	return false
}

func (d DeliveryType) Valid() bool {
	return d == DeliveryTypeDelivery || d == DeliveryTypePickup
}

func (m PaymentMethod) Valid() bool {
	return m == PaymentPix || m == PaymentCard || m == PaymentCash
}

// Label returns the human-readable payment method name used in the
// order summary handed to the messaging channel.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentPix:
		return "PIX"
	case PaymentCard:
		return "Cartão na entrega/retirada"
	case PaymentCash:
		return "Dinheiro"
	}
	return string(m)
}
