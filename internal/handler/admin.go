package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/saawariya-rasoi/api/internal/store"
	"github.com/saawariya-rasoi/api/internal/ws"
)

// Fixed page size of the admin order table.
const defaultAdminPageSize = 10

// AdminStore defines the database methods needed by admin handlers.
// Satisfied by *store.Queries; narrow interface for testability.
type AdminStore interface {
	ListAllOrders(ctx context.Context, arg store.ListAllOrdersParams) ([]store.Order, error)
	UpdateOrderStatus(ctx context.Context, arg store.UpdateOrderStatusParams) (store.Order, error)
	ListProfiles(ctx context.Context) ([]store.Profile, error)
}

// AdminHandler handles the admin review panel endpoints. Role enforcement
// happens in the router via middleware.RequireRole("admin").
type AdminHandler struct {
	store AdminStore
	hub   OrderBroadcaster
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store AdminStore, hub OrderBroadcaster) *AdminHandler {
	return &AdminHandler{store: store, hub: hub}
}

// RegisterRoutes registers admin endpoints on the given Chi router.
// Expected to be mounted inside a role-gated subrouter: /admin
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Patch("/orders/{order_id}/status", h.UpdateOrderStatus)
	r.Get("/users", h.ListUsers)
}

// --- Request / Response types ---

type updateStatusRequest struct {
	Status string `json:"status"`
}

type adminUserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Handlers ---

// ListOrders handles GET /admin/orders with status, free-text, and date
// filters plus limit/offset pagination.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit := defaultAdminPageSize
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > 100 {
		limit = 100
	}

	offset := 0
	if s := r.URL.Query().Get("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			offset = v
		}
	}

	params := store.ListAllOrdersParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	}

	if s := r.URL.Query().Get("status"); s != "" {
		if !enum.IsValidOrderStatus(s) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
			return
		}
		params.Status = pgtype.Text{String: s, Valid: true}
	}
	if s := r.URL.Query().Get("q"); s != "" {
		params.Search = pgtype.Text{String: s, Valid: true}
	}
	if s := r.URL.Query().Get("date"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		params.Date = pgtype.Date{Time: t, Valid: true}
	}

	orders, err := h.store.ListAllOrders(r.Context(), params)
	if err != nil {
		log.Printf("ERROR: list all orders: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = dbOrderToResponse(o)
	}

	writeJSON(w, http.StatusOK, orderListResponse{
		Orders: resp,
		Limit:  limit,
		Offset: offset,
	})
}

// UpdateOrderStatus handles PATCH /admin/orders/{order_id}/status.
// Any known status may be set from any other; the panel relies on admin
// judgment rather than a forward-only state machine.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Status == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "status is required"})
		return
	}
	if !enum.IsValidOrderStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid status"})
		return
	}

	updated, err := h.store.UpdateOrderStatus(r.Context(), store.UpdateOrderStatusParams{
		OrderID: orderID,
		Status:  req.Status,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "order not found"})
			return
		}
		log.Printf("ERROR: update order status: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := dbOrderToResponse(updated)
	h.hub.BroadcastOrderChange(ws.EventOrderStatusUpdated, resp)

	writeJSON(w, http.StatusOK, resp)
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.store.ListProfiles(r.Context())
	if err != nil {
		log.Printf("ERROR: list profiles: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	resp := make([]adminUserResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = adminUserResponse{
			ID:        p.ID.String(),
			Email:     p.Email,
			Role:      p.Role,
			CreatedAt: p.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, map[string][]adminUserResponse{"users": resp})
}
