package domain

import (
	"errors"
	"fmt"
	"net/url"
)

// Product is a catalog entry managed by the admin panel and read-only
// to the storefront.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// CartItem pairs a product snapshot with a quantity. A cart holds at
// most one item per product ID.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("product price must be greater than zero")
)

// Validate applies catalog business rules.
func (p *Product) Validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if p.Price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

// PlaceholderImage returns the generated image reference used when a
// product is created without an uploaded picture.
func PlaceholderImage(name string) string {
	return fmt.Sprintf("/placeholder.svg?height=200&width=300&query=%s", url.QueryEscape(name+" food"))
}

// Categories offered by the store, in menu order.
var Categories = []string{"Pratos Principais", "Lanches", "Bebidas", "Sobremesas"}
