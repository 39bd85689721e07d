package http

import (
	"net/http"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// StorefrontHandler serves the read-only customer-facing surface:
// catalog, settings and the open/closed state.
type StorefrontHandler struct {
	catalog  interfaces.CatalogService
	settings interfaces.SettingsService
	status   StoreStatus
	logger   logger.Logger
}

// StoreStatus exposes the watcher's last evaluated open state.
type StoreStatus interface {
	IsOpen() bool
}

func NewStorefrontHandler(catalog interfaces.CatalogService, settings interfaces.SettingsService, status StoreStatus, lgr logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		catalog:  catalog,
		settings: settings,
		status:   status,
		logger:   lgr,
	}
}

func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("list_products_failed", "Failed to list products", "", nil, err)
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *StorefrontHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, domain.Categories)
}

func (h *StorefrontHandler) StoreStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"open": h.status.IsOpen()})
}

func (h *StorefrontHandler) StoreSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	settings, err := h.settings.Store(r.Context())
	if err != nil {
		h.logger.Error("store_settings_failed", "Failed to load store settings", "", nil, err)
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *StorefrontHandler) DeliverySettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	settings, err := h.settings.Delivery(r.Context())
	if err != nil {
		h.logger.Error("delivery_settings_failed", "Failed to load delivery settings", "", nil, err)
		respondServiceError(w, err)
		return
	}

	// The receiving account details stay; only the uploaded QR image is
	// large enough to matter, and it has its own endpoint.
	settings.Pix.QRCodeImage = nil
	writeJSON(w, http.StatusOK, settings)
}

func (h *StorefrontHandler) PixQRCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, contentType, err := h.settings.PixQRCode(r.Context())
	if err != nil {
		respondError(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
