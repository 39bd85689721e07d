package http

import (
	"net/http"

	"github.com/sabordacasa/storefront/internal/interfaces"
)

// NewRouter wires the storefront and admin surfaces onto one mux.
// Admin endpoints other than login sit behind the session guard.
func NewRouter(storefront *StorefrontHandler, cart *CartHandler, checkout *CheckoutHandler, admin *AdminHandler, authService interfaces.AuthService, ws http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if ws != nil {
		mux.HandleFunc("/ws", ws)
	}

	mux.HandleFunc("/products", storefront.ListProducts)
	mux.HandleFunc("/categories", storefront.ListCategories)
	mux.HandleFunc("/store/status", storefront.StoreStatus)
	mux.HandleFunc("/settings/store", storefront.StoreSettings)
	mux.HandleFunc("/settings/delivery", storefront.DeliverySettings)
	mux.HandleFunc("/settings/pix-qr", storefront.PixQRCode)

	mux.HandleFunc("/cart", cart.HandleCart)
	mux.HandleFunc("/cart/items", cart.HandleItems)
	mux.HandleFunc("/cart/items/", cart.HandleItems)
	mux.HandleFunc("/checkout", checkout.Checkout)

	mux.HandleFunc("/admin/login", admin.Login)

	guard := RequireSession(authService)
	mux.Handle("/admin/logout", guard(http.HandlerFunc(admin.Logout)))
	mux.Handle("/admin/session", guard(http.HandlerFunc(admin.Session)))
	mux.Handle("/admin/products", guard(http.HandlerFunc(admin.HandleProducts)))
	mux.Handle("/admin/products/", guard(http.HandlerFunc(admin.HandleProduct)))
	mux.Handle("/admin/orders", guard(http.HandlerFunc(admin.ListOrders)))
	mux.Handle("/admin/orders/", guard(http.HandlerFunc(admin.HandleOrder)))
	mux.Handle("/admin/settings/", guard(http.HandlerFunc(admin.HandleSettings)))

	return mux
}
