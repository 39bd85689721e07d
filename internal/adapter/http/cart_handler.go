package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

type CartHandler struct {
	cart    interfaces.CartService
	catalog interfaces.CatalogService
	logger  logger.Logger
}

func NewCartHandler(cart interfaces.CartService, catalog interfaces.CatalogService, lgr logger.Logger) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog, logger: lgr}
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleCart serves GET /cart (summary) and DELETE /cart (clear).
func (h *CartHandler) HandleCart(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		summary, err := h.cart.Summary(r.Context())
		if err != nil {
			h.logger.Error("cart_summary_failed", "Failed to load cart", "", nil, err)
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)

	case http.MethodDelete:
		if err := h.cart.Clear(r.Context()); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleItems serves POST /cart/items plus the per-item operations
// PATCH /cart/items/{id} and DELETE /cart/items/{id}.
func (h *CartHandler) HandleItems(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	// parts: ["cart", "items"] or ["cart", "items", "{id}"]
	switch {
	case len(parts) == 2 && r.Method == http.MethodPost:
		h.addItem(w, r)
	case len(parts) == 3 && r.Method == http.MethodPatch:
		h.updateQuantity(w, r, parts[2])
	case len(parts) == 3 && r.Method == http.MethodDelete:
		h.removeItem(w, r, parts[2])
	default:
		respondError(w, "Not found", http.StatusNotFound)
	}
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		respondError(w, "product_id is required", http.StatusBadRequest)
		return
	}

	product, err := h.findProduct(r.Context(), req.ProductID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if err := h.cart.Add(r.Context(), *product); err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondSummary(w, r)
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request, productID string) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondSummary(w, r)
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request, productID string) {
	if err := h.cart.Remove(r.Context(), productID); err != nil {
		respondServiceError(w, err)
		return
	}
	h.respondSummary(w, r)
}

func (h *CartHandler) respondSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cart.Summary(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *CartHandler) findProduct(ctx context.Context, productID string) (*domain.Product, error) {
	products, err := h.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == productID {
			return &products[i], nil
		}
	}
	return nil, domain.ErrProductNotFound
}
