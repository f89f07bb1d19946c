package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/saawariya-rasoi/api/internal/middleware"
	"github.com/saawariya-rasoi/api/internal/notify"
	"github.com/saawariya-rasoi/api/internal/service"
	"github.com/saawariya-rasoi/api/internal/store"
	"github.com/saawariya-rasoi/api/internal/ws"
)

// OrderServicer defines the service methods needed by order handlers.
// Satisfied by *service.OrderService; narrow interface for testability.
type OrderServicer interface {
	Submit(ctx context.Context, req service.SubmitOrderRequest) (*service.SubmitOrderResult, error)
}

// OrderStore defines the database methods needed by order read handlers.
// Satisfied by *store.Queries; narrow interface for testability.
type OrderStore interface {
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]store.Order, error)
	GetOrderByOrderID(ctx context.Context, orderID string) (store.Order, error)
}

// OrderBroadcaster pushes order change events to connected admin clients.
// Satisfied by *ws.Hub.
type OrderBroadcaster interface {
	BroadcastOrderChange(eventType string, payload any)
}

// OrderHandler handles customer order endpoints.
type OrderHandler struct {
	svc   OrderServicer
	store OrderStore
	hub   OrderBroadcaster
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(svc OrderServicer, store OrderStore, hub OrderBroadcaster) *OrderHandler {
	return &OrderHandler{svc: svc, store: store, hub: hub}
}

// RegisterRoutes registers order endpoints on the given Chi router.
// Expected to be mounted inside an authenticated subrouter: /orders
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.ListMine)
	r.Get("/{order_id}", h.Get)
}

// --- Request / Response types ---

type submitOrderRequest struct {
	ItemID              int    `json:"item_id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	PickupAddress       string `json:"pickup_address"`
	PickupDate          string `json:"pickup_date"`
	PickupTime          string `json:"pickup_time"`
	Quantity            int    `json:"quantity"`
	PaymentMethod       string `json:"payment_method"`
	SpecialInstructions string `json:"special_instructions"`
}

type orderResponse struct {
	OrderID             string             `json:"order_id"`
	UserID              uuid.UUID          `json:"user_id"`
	CustomerName        string             `json:"customer_name"`
	CustomerEmail       string             `json:"customer_email"`
	CustomerPhone       string             `json:"customer_phone"`
	PickupLocation      string             `json:"pickup_location"`
	PickupDatetime      string             `json:"pickup_datetime"`
	Items               []notify.OrderItem `json:"items"`
	TotalAmount         string             `json:"total_amount"`
	PaymentStatus       string             `json:"payment_status"`
	SpecialInstructions *string            `json:"special_instructions"`
	Status              string             `json:"status"`
	CreatedAt           time.Time          `json:"created_at"`
}

// orderListResponse wraps a list of orders with pagination metadata.
type orderListResponse struct {
	Orders []orderResponse `json:"orders"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// --- Handlers ---

// Create handles POST /orders: the bulk order form submission.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	var req submitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result, err := h.svc.Submit(r.Context(), service.SubmitOrderRequest{
		UserID:              claims.UserID,
		ItemID:              req.ItemID,
		Name:                req.Name,
		Email:               req.Email,
		Phone:               req.Phone,
		PickupAddress:       req.PickupAddress,
		PickupDate:          req.PickupDate,
		PickupTime:          req.PickupTime,
		Quantity:            req.Quantity,
		PaymentMethod:       req.PaymentMethod,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		if service.IsValidationError(err) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		log.Printf("ERROR: submit order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := dbOrderToResponse(result.Order)
	h.hub.BroadcastOrderChange(ws.EventOrderCreated, resp)

	writeJSON(w, http.StatusCreated, resp)
}

// ListMine handles GET /orders: the caller's own orders, newest first.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	orders, err := h.store.ListOrdersByUser(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("ERROR: list orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = dbOrderToResponse(o)
	}

	writeJSON(w, http.StatusOK, map[string][]orderResponse{"orders": resp})
}

// Get handles GET /orders/{order_id}. Owner or admin only.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	orderID := chi.URLParam(r, "order_id")

	order, err := h.store.GetOrderByOrderID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: get order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	if order.UserID != claims.UserID && claims.Role != enum.RoleAdmin {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "access denied"})
		return
	}

	writeJSON(w, http.StatusOK, dbOrderToResponse(order))
}

// --- Helpers ---

// dbOrderToResponse converts a store.Order to an orderResponse, decoding the
// serialized line items.
func dbOrderToResponse(o store.Order) orderResponse {
	resp := orderResponse{
		OrderID:        o.OrderID,
		UserID:         o.UserID,
		CustomerName:   o.CustomerName,
		CustomerEmail:  o.CustomerEmail,
		CustomerPhone:  o.CustomerPhone,
		PickupLocation: o.PickupLocation,
		PickupDatetime: o.PickupDatetime,
		TotalAmount:    o.TotalAmount,
		PaymentStatus:  o.PaymentStatus,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
	}

	if err := json.Unmarshal(o.Items, &resp.Items); err != nil {
		log.Printf("ERROR: decode items for order %s: %v", o.OrderID, err)
		resp.Items = []notify.OrderItem{}
	}

	if o.SpecialInstructions.Valid {
		resp.SpecialInstructions = &o.SpecialInstructions.String
	}

	return resp
}
