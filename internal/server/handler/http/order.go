package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nextbite/nextbite/internal/middleware"
	"github.com/nextbite/nextbite/internal/models"
	"github.com/nextbite/nextbite/internal/service"
	"github.com/nextbite/nextbite/internal/validate"
)

// OrderService defines the interface for order operations required by
// the OrderHandler.
type OrderService interface {
	// PlaceOrder validates and appends one checkout to the account's
	// order log, returning the log identifier.
	PlaceOrder(ctx context.Context, email string, items []models.LineItem, orderDate time.Time) (string, error)
	// History returns the account's full order history, oldest first.
	History(ctx context.Context, email string) ([]models.OrderEntry, error)
}

// OrderHandler handles HTTP requests for order placement and history.
// Both routes sit behind BearerAuth: the acting account is always the
// one the verified session token was issued for.
type OrderHandler struct {
	// OrderService performs the underlying order operations.
	OrderService OrderService
	// Production suppresses error details in responses.
	Production bool
}

// orderDateLayouts are the accepted formats for a caller-supplied order date.
var orderDateLayouts = []string{time.RFC3339, "2006-01-02"}

// OrderData handles POST /api/orderData.
// It decodes a JSON body with "orderData" line items and an optional
// "orderDate", and appends the checkout to the authenticated account's
// log. A body email that contradicts the session token is rejected.
func (h *OrderHandler) OrderData(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmailFromContext(r.Context())

	var req struct {
		Email     string            `json:"email"`
		OrderData []models.LineItem `json:"orderData"`
		OrderDate string            `json:"orderDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.Email != "" && validate.NormalizeEmail(req.Email) != email {
		writeMessage(w, http.StatusUnauthorized, false, "Session token does not match the requested account")
		return
	}

	orderDate, ok := parseOrderDate(req.OrderDate)
	if !ok {
		writeValidationFailed(w, []validate.FieldError{
			{Field: "orderDate", Message: "Order date must be an RFC 3339 timestamp or a YYYY-MM-DD date"},
		})
		return
	}

	orderID, err := h.OrderService.PlaceOrder(r.Context(), email, req.OrderData, orderDate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderPayload) {
			writeMessage(w, http.StatusBadRequest, false, "Email and orderData are required, and orderData must be a non-empty array")
			return
		}
		writeServerError(w, h.Production, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Order placed successfully",
		"orderId": orderID,
	})
}

// MyOrderData handles POST and GET /api/myOrderData.
// It returns the authenticated account's order history; an account that
// has never ordered gets an empty list, not an error.
func (h *OrderHandler) MyOrderData(w http.ResponseWriter, r *http.Request) {
	email := middleware.GetEmailFromContext(r.Context())

	// The POST form carries the email in the body, the GET form in the
	// query string; either must agree with the token.
	requested := r.URL.Query().Get("email")
	if r.Method == http.MethodPost {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
			return
		}
		requested = req.Email
	}
	if requested != "" && validate.NormalizeEmail(requested) != email {
		writeMessage(w, http.StatusUnauthorized, false, "Session token does not match the requested account")
		return
	}

	entries, err := h.OrderService.History(r.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderPayload) {
			writeMessage(w, http.StatusBadRequest, false, "Email is required")
			return
		}
		writeServerError(w, h.Production, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"orderData": entries,
	})
}

// parseOrderDate parses an optional caller-supplied order date. An empty
// string yields the zero time, which the service replaces with "now".
func parseOrderDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
