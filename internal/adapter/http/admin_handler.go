package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

// AdminHandler serves the admin panel: authentication, catalog
// management, order management and store configuration.
type AdminHandler struct {
	auth     interfaces.AuthService
	catalog  interfaces.CatalogService
	orders   interfaces.OrderService
	settings interfaces.SettingsService
	logger   logger.Logger
}

func NewAdminHandler(auth interfaces.AuthService, catalog interfaces.CatalogService, orders interfaces.OrderService, settings interfaces.SettingsService, lgr logger.Logger) *AdminHandler {
	return &AdminHandler{
		auth:     auth,
		catalog:  catalog,
		orders:   orders,
		settings: settings,
		logger:   lgr,
	}
}

type loginRequest struct {
	TaxID    string `json:"cpf_cnpj"`
	Password string `json:"password"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.auth.Login(r.Context(), req.TaxID, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.auth.Logout(r.Context()); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, err := h.auth.CurrentSession(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if session == nil {
		respondError(w, "não autenticado", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// HandleProducts serves GET and POST /admin/products.
func (h *AdminHandler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		products, err := h.catalog.List(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, products)

	case http.MethodPost:
		var req productRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Image != "" && strings.HasPrefix(req.Image, "data:") {
			if err := domain.ValidateImage(req.Image); err != nil {
				respondServiceError(w, err)
				return
			}
		}

		product, err := h.catalog.Create(r.Context(), interfaces.CreateProductCommand{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Image:       req.Image,
			Category:    req.Category,
			Available:   req.Available,
		})
		if err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, product)

	default:
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleProduct serves the per-product operations:
// PUT /admin/products/{id}, DELETE /admin/products/{id} and
// POST /admin/products/{id}/toggle.
func (h *AdminHandler) HandleProduct(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts: ["admin", "products", "{id}"] or ["admin", "products", "{id}", "toggle"]
	if len(parts) < 3 {
		respondError(w, "Not found", http.StatusNotFound)
		return
	}
	productID := parts[2]

	switch {
	case len(parts) == 4 && parts[3] == "toggle" && r.Method == http.MethodPost:
		if err := h.catalog.ToggleAvailability(r.Context(), productID); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	case len(parts) == 3 && r.Method == http.MethodPut:
		var req productRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if req.Image != "" && strings.HasPrefix(req.Image, "data:") {
			if err := domain.ValidateImage(req.Image); err != nil {
				respondServiceError(w, err)
				return
			}
		}

		product := domain.Product{
			ID:          productID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Image:       req.Image,
			Category:    req.Category,
			Available:   req.Available,
		}
		if err := h.catalog.Update(r.Context(), product); err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)

	case len(parts) == 3 && r.Method == http.MethodDelete:
		if err := h.catalog.Delete(r.Context(), productID); err != nil {
			respondServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		respondError(w, "Not found", http.StatusNotFound)
	}
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	list, err := h.orders.List(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type statusRequest struct {
	Status string `json:"status"`
}

// HandleOrder serves PATCH /admin/orders/{id}/status and
// PATCH /admin/orders/{id}/pix-status.
func (h *AdminHandler) HandleOrder(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts: ["admin", "orders", "{id}", "status"|"pix-status"]
	if len(parts) != 4 || r.Method != http.MethodPatch {
		respondError(w, "Not found", http.StatusNotFound)
		return
	}
	orderID := parts[2]

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	switch parts[3] {
	case "status":
		err = h.orders.UpdateStatus(r.Context(), orderID, domain.Status(req.Status))
	case "pix-status":
		err = h.orders.UpdatePixStatus(r.Context(), orderID, domain.PixStatus(req.Status))
	default:
		respondError(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	order, err := h.orders.Get(r.Context(), orderID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// HandleSettings serves PUT /admin/settings/store and
// PUT /admin/settings/delivery.
func (h *AdminHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) != 3 {
		respondError(w, "Not found", http.StatusNotFound)
		return
	}

	switch parts[2] {
	case "store":
		var settings domain.StoreSettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if settings.Logo != nil && strings.HasPrefix(*settings.Logo, "data:") {
			if err := domain.ValidateImage(*settings.Logo); err != nil {
				respondServiceError(w, err)
				return
			}
		}
		if err := h.settings.SaveStore(r.Context(), settings); err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)

	case "delivery":
		var settings domain.DeliverySettings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		if settings.Pix.QRCodeImage != nil && strings.HasPrefix(*settings.Pix.QRCodeImage, "data:") {
			if err := domain.ValidateImage(*settings.Pix.QRCodeImage); err != nil {
				respondServiceError(w, err)
				return
			}
		}
		if err := h.settings.SaveDelivery(r.Context(), settings); err != nil {
			respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, settings)

	default:
		respondError(w, "Not found", http.StatusNotFound)
	}
}
