package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/saawariya-rasoi/api/internal/auth"
	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/saawariya-rasoi/api/internal/handler"
	"github.com/saawariya-rasoi/api/internal/middleware"
	"github.com/saawariya-rasoi/api/internal/service"
	"github.com/saawariya-rasoi/api/internal/store"
)

// --- Mock OrderServicer ---

type mockOrderService struct {
	submitFn func(ctx context.Context, req service.SubmitOrderRequest) (*service.SubmitOrderResult, error)
}

func (m *mockOrderService) Submit(ctx context.Context, req service.SubmitOrderRequest) (*service.SubmitOrderResult, error) {
	return m.submitFn(ctx, req)
}

// --- Mock OrderStore ---

type mockOrderHandlerStore struct {
	listOrdersByUserFn  func(ctx context.Context, userID uuid.UUID) ([]store.Order, error)
	getOrderByOrderIDFn func(ctx context.Context, orderID string) (store.Order, error)
}

func (m *mockOrderHandlerStore) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]store.Order, error) {
	if m.listOrdersByUserFn != nil {
		return m.listOrdersByUserFn(ctx, userID)
	}
	return []store.Order{}, nil
}

func (m *mockOrderHandlerStore) GetOrderByOrderID(ctx context.Context, orderID string) (store.Order, error) {
	if m.getOrderByOrderIDFn != nil {
		return m.getOrderByOrderIDFn(ctx, orderID)
	}
	return store.Order{}, pgx.ErrNoRows
}

// --- Mock broadcaster ---

type broadcastCall struct {
	eventType string
	payload   any
}

type mockBroadcaster struct {
	calls []broadcastCall
}

func (m *mockBroadcaster) BroadcastOrderChange(eventType string, payload any) {
	m.calls = append(m.calls, broadcastCall{eventType: eventType, payload: payload})
}

// --- Test helpers ---

const testJWTSecret = "test-secret-for-orders"

func setupOrderRouter(svc *mockOrderService, st *mockOrderHandlerStore, hub *mockBroadcaster) *chi.Mux {
	h := handler.NewOrderHandler(svc, st, hub)
	r := chi.NewRouter()
	r.Use(middleware.Authenticate(testJWTSecret))
	r.Route("/orders", h.RegisterRoutes)
	return r
}

func doAuthRequest(t *testing.T, router http.Handler, method, path string, body interface{}, claims *auth.Claims) *httptest.ResponseRecorder {
	t.Helper()

	token, err := auth.GenerateToken(testJWTSecret, claims.UserID, claims.Role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func testClaims(role string) *auth.Claims {
	return &auth.Claims{
		UserID: uuid.New(),
		Role:   role,
	}
}

func makeStoredOrder(userID uuid.UUID) store.Order {
	return store.Order{
		ID:             uuid.New(),
		OrderID:        "SR-123456-AB1C",
		UserID:         userID,
		CustomerName:   "Harsh Saini",
		CustomerEmail:  "harsh@test.com",
		CustomerPhone:  "9876543210",
		PickupLocation: "Saawariya Rasoi, Kanpur, Uttar-Pradesh",
		PickupDatetime: "Jan 2, 2026 at 18:30",
		Items:          []byte(`[{"name":"Dal Makhani","quantity":3,"price":"₹135"}]`),
		TotalAmount:    "₹405.00",
		PaymentStatus:  "Cash on Pickup",
		SpecialInstructions: pgtype.Text{
			String: "None",
			Valid:  true,
		},
		Status:    enum.OrderStatusPending,
		CreatedAt: time.Now(),
	}
}

func validSubmitBody() map[string]interface{} {
	return map[string]interface{}{
		"item_id":        1,
		"name":           "Harsh Saini",
		"email":          "harsh@test.com",
		"phone":          "9876543210",
		"pickup_date":    time.Now().AddDate(0, 0, 2).Format("2006-01-02"),
		"pickup_time":    "18:30",
		"quantity":       3,
		"payment_method": "cash",
	}
}

// --- Create tests ---

func TestCreateOrder_Success(t *testing.T) {
	claims := testClaims(enum.RoleUser)
	stored := makeStoredOrder(claims.UserID)

	svc := &mockOrderService{
		submitFn: func(_ context.Context, req service.SubmitOrderRequest) (*service.SubmitOrderResult, error) {
			if req.UserID != claims.UserID {
				t.Errorf("user ID not forwarded: got %s, want %s", req.UserID, claims.UserID)
			}
			return &service.SubmitOrderResult{Order: stored}, nil
		},
	}
	hub := &mockBroadcaster{}
	r := setupOrderRouter(svc, &mockOrderHandlerStore{}, hub)

	rr := doAuthRequest(t, r, "POST", "/orders", validSubmitBody(), claims)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	resp := decodeResponse(t, rr)
	if resp["order_id"] != "SR-123456-AB1C" {
		t.Errorf("order_id: got %v, want SR-123456-AB1C", resp["order_id"])
	}
	if resp["total_amount"] != "₹405.00" {
		t.Errorf("total_amount: got %v, want ₹405.00", resp["total_amount"])
	}
	if resp["status"] != "pending" {
		t.Errorf("status: got %v, want pending", resp["status"])
	}

	if len(hub.calls) != 1 {
		t.Fatalf("broadcast calls: got %d, want 1", len(hub.calls))
	}
	if hub.calls[0].eventType != "order.created" {
		t.Errorf("broadcast event: got %s, want order.created", hub.calls[0].eventType)
	}
}

func TestCreateOrder_ValidationError(t *testing.T) {
	svc := &mockOrderService{
		submitFn: func(_ context.Context, _ service.SubmitOrderRequest) (*service.SubmitOrderResult, error) {
			return nil, service.ErrInvalidPhone
		},
	}
	hub := &mockBroadcaster{}
	r := setupOrderRouter(svc, &mockOrderHandlerStore{}, hub)

	rr := doAuthRequest(t, r, "POST", "/orders", validSubmitBody(), testClaims(enum.RoleUser))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if len(hub.calls) != 0 {
		t.Errorf("broadcast calls: got %d, want 0", len(hub.calls))
	}
}

func TestCreateOrder_Unauthenticated(t *testing.T) {
	svc := &mockOrderService{}
	r := setupOrderRouter(svc, &mockOrderHandlerStore{}, &mockBroadcaster{})

	b, _ := json.Marshal(validSubmitBody())
	req := httptest.NewRequest("POST", "/orders", bytes.NewReader(b))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

// --- ListMine tests ---

func TestListMyOrders(t *testing.T) {
	claims := testClaims(enum.RoleUser)
	st := &mockOrderHandlerStore{
		listOrdersByUserFn: func(_ context.Context, userID uuid.UUID) ([]store.Order, error) {
			if userID != claims.UserID {
				t.Errorf("user ID: got %s, want %s", userID, claims.UserID)
			}
			return []store.Order{makeStoredOrder(claims.UserID)}, nil
		},
	}
	r := setupOrderRouter(&mockOrderService{}, st, &mockBroadcaster{})

	rr := doAuthRequest(t, r, "GET", "/orders", nil, claims)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	resp := decodeResponse(t, rr)
	orders, ok := resp["orders"].([]interface{})
	if !ok {
		t.Fatal("expected orders array in response")
	}
	if len(orders) != 1 {
		t.Fatalf("orders: got %d, want 1", len(orders))
	}

	first := orders[0].(map[string]interface{})
	items, ok := first["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("expected one decoded line item, got %v", first["items"])
	}
}

// --- Get tests ---

func TestGetOrder_Owner(t *testing.T) {
	claims := testClaims(enum.RoleUser)
	st := &mockOrderHandlerStore{
		getOrderByOrderIDFn: func(_ context.Context, orderID string) (store.Order, error) {
			return makeStoredOrder(claims.UserID), nil
		},
	}
	r := setupOrderRouter(&mockOrderService{}, st, &mockBroadcaster{})

	rr := doAuthRequest(t, r, "GET", "/orders/SR-123456-AB1C", nil, claims)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestGetOrder_OtherUserForbidden(t *testing.T) {
	st := &mockOrderHandlerStore{
		getOrderByOrderIDFn: func(_ context.Context, orderID string) (store.Order, error) {
			return makeStoredOrder(uuid.New()), nil
		},
	}
	r := setupOrderRouter(&mockOrderService{}, st, &mockBroadcaster{})

	rr := doAuthRequest(t, r, "GET", "/orders/SR-123456-AB1C", nil, testClaims(enum.RoleUser))

	if rr.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestGetOrder_AdminCanReadAny(t *testing.T) {
	st := &mockOrderHandlerStore{
		getOrderByOrderIDFn: func(_ context.Context, orderID string) (store.Order, error) {
			return makeStoredOrder(uuid.New()), nil
		},
	}
	r := setupOrderRouter(&mockOrderService{}, st, &mockBroadcaster{})

	rr := doAuthRequest(t, r, "GET", "/orders/SR-123456-AB1C", nil, testClaims(enum.RoleAdmin))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d; body: %s", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	r := setupOrderRouter(&mockOrderService{}, &mockOrderHandlerStore{}, &mockBroadcaster{})

	rr := doAuthRequest(t, r, "GET", "/orders/SR-000000-XXXX", nil, testClaims(enum.RoleUser))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
	}
}
