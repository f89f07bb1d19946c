package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/saawariya-rasoi/api/internal/menu"
	"github.com/saawariya-rasoi/api/internal/notify"
	"github.com/saawariya-rasoi/api/internal/service"
	"github.com/saawariya-rasoi/api/internal/store"
	"github.com/shopspring/decimal"
)

// --- Mocks ---

type mockOrderStore struct {
	created []store.CreateOrderParams
	err     error
}

func (m *mockOrderStore) CreateOrder(_ context.Context, arg store.CreateOrderParams) (store.Order, error) {
	if m.err != nil {
		return store.Order{}, m.err
	}
	m.created = append(m.created, arg)
	return store.Order{
		ID:                  uuid.New(),
		OrderID:             arg.OrderID,
		UserID:              arg.UserID,
		CustomerName:        arg.CustomerName,
		CustomerEmail:       arg.CustomerEmail,
		CustomerPhone:       arg.CustomerPhone,
		PickupLocation:      arg.PickupLocation,
		PickupDatetime:      arg.PickupDatetime,
		Items:               arg.Items,
		TotalAmount:         arg.TotalAmount,
		PaymentStatus:       arg.PaymentStatus,
		SpecialInstructions: arg.SpecialInstructions,
		Status:              arg.Status,
		CreatedAt:           time.Now(),
	}, nil
}

type mockNotifier struct {
	dispatched []notify.OrderDetails
	err        error
}

func (m *mockNotifier) Dispatch(_ context.Context, order notify.OrderDetails) (notify.Ack, error) {
	if m.err != nil {
		return notify.Ack{}, m.err
	}
	m.dispatched = append(m.dispatched, order)
	return notify.Ack{Success: true}, nil
}

// --- Helpers ---

func validRequest() service.SubmitOrderRequest {
	return service.SubmitOrderRequest{
		UserID:        uuid.New(),
		ItemID:        1, // Thekua, ₹149 delivery / ₹135 takeaway
		Name:          "Asha Gupta",
		Email:         "asha@example.com",
		Phone:         "9876543210",
		PickupDate:    time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		PickupTime:    "12:00",
		Quantity:      3,
		PaymentMethod: "cash",
	}
}

var orderIDPattern = regexp.MustCompile(`^SR-\d{6}-[A-Z0-9]{4}$`)

// --- Tests ---

func TestGenerateOrderIDFormat(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := service.GenerateOrderID(now)
		if !orderIDPattern.MatchString(id) {
			t.Fatalf("order ID %q does not match pattern", id)
		}
		seen[id] = true
	}
	if len(seen) < 2 {
		t.Error("expected random suffixes to vary across generations")
	}
}

func TestSubmitValidOrder(t *testing.T) {
	st := &mockOrderStore{}
	nt := &mockNotifier{}
	svc := service.NewOrderService(st, nt)

	result, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Takeaway price ₹135 x 3.
	if result.Details.TotalAmount != "₹405.00" {
		t.Errorf("total: got %q, want %q", result.Details.TotalAmount, "₹405.00")
	}
	if !orderIDPattern.MatchString(result.Details.OrderID) {
		t.Errorf("order ID %q does not match pattern", result.Details.OrderID)
	}
	if result.Order.Status != enum.OrderStatusPending {
		t.Errorf("status: got %q, want %q", result.Order.Status, enum.OrderStatusPending)
	}
	if result.Details.PaymentStatus != "Cash on Pickup" {
		t.Errorf("payment status: got %q", result.Details.PaymentStatus)
	}
	if result.Details.SpecialInstructions != "None" {
		t.Errorf("instructions default: got %q, want %q", result.Details.SpecialInstructions, "None")
	}

	if len(st.created) != 1 {
		t.Fatalf("orders created: got %d, want 1", len(st.created))
	}
	if len(nt.dispatched) != 1 {
		t.Fatalf("notifications dispatched: got %d, want 1", len(nt.dispatched))
	}

	var items []notify.OrderItem
	if err := json.Unmarshal(st.created[0].Items, &items); err != nil {
		t.Fatalf("unmarshal stored items: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Thekua" || items[0].Quantity != 3 {
		t.Errorf("stored items: got %+v", items)
	}
	if items[0].Price != "₹135" {
		t.Errorf("stored unit price: got %q, want %q", items[0].Price, "₹135")
	}
}

func TestSubmitTotalFallsBackToDeliveryPrice(t *testing.T) {
	// An item without a takeaway price bills the delivery price:
	// ₹149 x 3 = ₹447.00.
	it := menu.Item{Price: decimal.NewFromInt(149)}
	total := it.PriceFor(enum.ModeTakeaway).Mul(decimal.NewFromInt(3))
	if got := "₹" + total.StringFixed(2); got != "₹447.00" {
		t.Errorf("total: got %q, want %q", got, "₹447.00")
	}
}

func TestSubmitOrderIDsFreshPerSubmission(t *testing.T) {
	st := &mockOrderStore{}
	svc := service.NewOrderService(st, &mockNotifier{})

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		result, err := svc.Submit(context.Background(), validRequest())
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if seen[result.Details.OrderID] {
			t.Fatalf("order ID %q reused", result.Details.OrderID)
		}
		seen[result.Details.OrderID] = true
	}
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*service.SubmitOrderRequest)
		wantErr error
	}{
		{"unknown item", func(r *service.SubmitOrderRequest) { r.ItemID = 9999 }, service.ErrItemNotFound},
		{"short name", func(r *service.SubmitOrderRequest) { r.Name = "A" }, service.ErrInvalidName},
		{"bad email", func(r *service.SubmitOrderRequest) { r.Email = "not-an-email" }, service.ErrInvalidEmail},
		{"short phone", func(r *service.SubmitOrderRequest) { r.Phone = "12345" }, service.ErrInvalidPhone},
		{"missing date", func(r *service.SubmitOrderRequest) { r.PickupDate = "" }, service.ErrPickupDateRequired},
		{"malformed date", func(r *service.SubmitOrderRequest) { r.PickupDate = "tomorrow" }, service.ErrPickupDateRequired},
		{"past date", func(r *service.SubmitOrderRequest) {
			r.PickupDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		}, service.ErrPickupDatePast},
		{"date too far ahead", func(r *service.SubmitOrderRequest) {
			r.PickupDate = time.Now().AddDate(0, 6, 0).Format("2006-01-02")
		}, service.ErrPickupDateTooFar},
		{"missing time", func(r *service.SubmitOrderRequest) { r.PickupTime = "" }, service.ErrPickupTimeRequired},
		{"zero quantity", func(r *service.SubmitOrderRequest) { r.Quantity = 0 }, service.ErrInvalidQuantity},
		{"bad payment method", func(r *service.SubmitOrderRequest) { r.PaymentMethod = "card" }, service.ErrInvalidPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &mockOrderStore{}
			svc := service.NewOrderService(st, &mockNotifier{})

			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error: got %v, want %v", err, tt.wantErr)
			}
			if !service.IsValidationError(err) {
				t.Errorf("expected %v to be a validation error", err)
			}
			if len(st.created) != 0 {
				t.Error("no order should be created on validation failure")
			}
		})
	}
}

func TestSubmitOnlinePaymentLabel(t *testing.T) {
	svc := service.NewOrderService(&mockOrderStore{}, &mockNotifier{})

	req := validRequest()
	req.PaymentMethod = "online"

	result, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Details.PaymentStatus != "Online Payment" {
		t.Errorf("payment status: got %q, want %q", result.Details.PaymentStatus, "Online Payment")
	}
}

func TestSubmitInsertFailureAborts(t *testing.T) {
	st := &mockOrderStore{err: errors.New("connection refused")}
	nt := &mockNotifier{}
	svc := service.NewOrderService(st, nt)

	_, err := svc.Submit(context.Background(), validRequest())
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
	if service.IsValidationError(err) {
		t.Error("store failure must not be a validation error")
	}
	if len(nt.dispatched) != 0 {
		t.Error("no notification should be dispatched when insert fails")
	}
}

func TestSubmitNotifyFailureStillSucceeds(t *testing.T) {
	st := &mockOrderStore{}
	nt := &mockNotifier{err: errors.New("webhook unreachable")}
	svc := service.NewOrderService(st, nt)

	result, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("submit should succeed despite notify failure: %v", err)
	}
	if len(st.created) != 1 {
		t.Errorf("orders created: got %d, want 1", len(st.created))
	}
	if result.Order.Status != enum.OrderStatusPending {
		t.Errorf("status: got %q, want %q", result.Order.Status, enum.OrderStatusPending)
	}
}
