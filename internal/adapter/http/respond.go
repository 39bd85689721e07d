package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sabordacasa/storefront/internal/app/auth"
	"github.com/sabordacasa/storefront/internal/app/checkout"
	"github.com/sabordacasa/storefront/internal/app/orders"
	"github.com/sabordacasa/storefront/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, ErrorResponse{Error: message})
}

// respondServiceError maps known service errors to their HTTP status;
// anything unrecognized is an internal error.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrMinimumNotMet),
		errors.Is(err, checkout.ErrStoreClosed),
		errors.Is(err, checkout.ErrReceiptRequired),
		errors.Is(err, checkout.ErrInsufficientChange),
		errors.Is(err, checkout.ErrInvalidCustomer),
		errors.Is(err, domain.ErrAttachmentFormat),
		errors.Is(err, domain.ErrAttachmentTooLarge),
		errors.Is(err, domain.ErrImageFormat),
		errors.Is(err, domain.ErrImageTooLarge),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, orders.ErrInvalidStatus),
		errors.Is(err, orders.ErrInvalidPixState),
		errors.Is(err, orders.ErrNotPixOrder):
		respondError(w, err.Error(), http.StatusUnprocessableEntity)

	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, orders.ErrOrderNotFound):
		respondError(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, auth.ErrUnknownTaxID),
		errors.Is(err, auth.ErrWrongPassword),
		errors.Is(err, auth.ErrBadCredential):
		respondError(w, err.Error(), http.StatusUnauthorized)

	default:
		respondError(w, "internal error", http.StatusInternalServerError)
	}
}
