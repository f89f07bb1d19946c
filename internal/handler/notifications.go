package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saawariya-rasoi/api/internal/notify"
)

// NotificationDispatcher defines the dispatch method needed by the
// notification handler. Satisfied by *notify.Dispatcher.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, order notify.OrderDetails) (notify.Ack, error)
}

// NotificationHandler exposes the order notification function as a
// standalone endpoint, so a storefront can trigger a resend without
// placing a new order.
type NotificationHandler struct {
	dispatcher NotificationDispatcher
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(dispatcher NotificationDispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

// RegisterRoutes registers notification endpoints on the given Chi router.
// Expected to be mounted at: /functions
func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/send-order-notification", h.Send)
}

// Send handles POST /functions/send-order-notification.
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var order notify.OrderDetails
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if order.OrderID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "orderId is required"})
		return
	}

	ack, err := h.dispatcher.Dispatch(r.Context(), order)
	if err != nil {
		log.Printf("ERROR: notification dispatch failed for order %s: %v", order.OrderID, err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "notification delivery failed"})
		return
	}

	writeJSON(w, http.StatusOK, ack)
}
