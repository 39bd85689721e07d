package http

import (
	"encoding/json"
	"net/http"

	"github.com/sabordacasa/storefront/internal/adapter/logger"
	"github.com/sabordacasa/storefront/internal/domain"
	"github.com/sabordacasa/storefront/internal/interfaces"
)

type CheckoutHandler struct {
	checkout interfaces.CheckoutService
	logger   logger.Logger
}

func NewCheckoutHandler(checkout interfaces.CheckoutService, lgr logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: lgr}
}

type checkoutRequest struct {
	Customer domain.OrderCustomer `json:"customer"`
}

type checkoutResponse struct {
	Order       domain.Order `json:"order"`
	WhatsAppURL string       `json:"whatsappUrl"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.checkout.Checkout(r.Context(), interfaces.CheckoutCommand{Customer: req.Customer})
	if err != nil {
		h.logger.Error("checkout_failed", "Checkout rejected", "", map[string]interface{}{
			"reason": err.Error(),
		}, err)
		respondServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, checkoutResponse{
		Order:       result.Order,
		WhatsAppURL: result.WhatsAppURL,
	})
}
