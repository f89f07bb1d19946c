package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/saawariya-rasoi/api/internal/enum"
	"github.com/saawariya-rasoi/api/internal/menu"
	"github.com/saawariya-rasoi/api/internal/notify"
	"github.com/saawariya-rasoi/api/internal/store"
	"github.com/shopspring/decimal"
)

// Pickup dates are accepted up to this far ahead.
const maxPickupAhead = 3 * 31 * 24 * time.Hour

// Errors returned by the order service. Each maps to a field-level message
// on the bulk order form.
var (
	ErrItemNotFound       = errors.New("menu item not found")
	ErrInvalidName        = errors.New("name must be at least 2 characters")
	ErrInvalidEmail       = errors.New("please enter a valid email")
	ErrInvalidPhone       = errors.New("please enter a valid phone number")
	ErrPickupDateRequired = errors.New("please select a pickup date")
	ErrPickupDatePast     = errors.New("pickup date must be in the future")
	ErrPickupDateTooFar   = errors.New("pickup date must be within 3 months")
	ErrPickupTimeRequired = errors.New("please select a pickup time")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInvalidPayment     = errors.New("payment method must be cash or online")
)

// OrderStore defines the DB methods needed to persist orders.
// Satisfied by *store.Queries; narrow interface for testability.
type OrderStore interface {
	CreateOrder(ctx context.Context, arg store.CreateOrderParams) (store.Order, error)
}

// Notifier dispatches the admin notification for a submitted order.
// Satisfied by *notify.Dispatcher.
type Notifier interface {
	Dispatch(ctx context.Context, order notify.OrderDetails) (notify.Ack, error)
}

// SubmitOrderRequest is the bulk order form payload for a single menu item.
type SubmitOrderRequest struct {
	UserID              uuid.UUID
	ItemID              int
	Name                string
	Email               string
	Phone               string
	PickupAddress       string
	PickupDate          string // YYYY-MM-DD
	PickupTime          string // HH:MM
	Quantity            int
	PaymentMethod       string // cash | online
	SpecialInstructions string
}

// SubmitOrderResult is the persisted order plus the notification payload
// that was (or would have been) dispatched.
type SubmitOrderResult struct {
	Order   store.Order
	Details notify.OrderDetails
}

// OrderService validates bulk orders, persists them, and triggers the
// notification dispatcher.
type OrderService struct {
	store    OrderStore
	notifier Notifier
	now      func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(st OrderStore, notifier Notifier) *OrderService {
	return &OrderService{store: st, notifier: notifier, now: time.Now}
}

const orderIDSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderID produces an identifier of the form SR-<6 digits>-<4
// alphanumeric>: the last six digits of the unix-millisecond timestamp plus
// a random suffix.
func GenerateOrderID(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderIDSuffixChars[rand.Intn(len(orderIDSuffixChars))]
	}
	return fmt.Sprintf("SR-%06d-%s", now.UnixMilli()%1_000_000, suffix)
}

// Submit runs the two-step submission pipeline: persist the order row, then
// dispatch the admin notification. A dispatch failure is logged but never
// rolls back the insert or fails the submission.
func (s *OrderService) Submit(ctx context.Context, req SubmitOrderRequest) (*SubmitOrderResult, error) {
	item, details, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	itemsJSON, err := json.Marshal(details.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	order, err := s.store.CreateOrder(ctx, store.CreateOrderParams{
		OrderID:             details.OrderID,
		UserID:              req.UserID,
		CustomerName:        details.CustomerName,
		CustomerEmail:       details.CustomerEmail,
		CustomerPhone:       details.CustomerPhone,
		PickupLocation:      details.PickupLocation,
		PickupDatetime:      details.PickupDateTime,
		Items:               itemsJSON,
		TotalAmount:         details.TotalAmount,
		PaymentStatus:       details.PaymentStatus,
		SpecialInstructions: pgtype.Text{String: details.SpecialInstructions, Valid: true},
		Status:              enum.OrderStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("save order %s (%s): %w", details.OrderID, item.Name, err)
	}

	if _, err := s.notifier.Dispatch(ctx, details); err != nil {
		// At-most-once notification: the order is already saved, so the
		// submission still succeeds.
		log.Printf("ERROR: notification dispatch failed for order %s: %v", details.OrderID, err)
	}

	return &SubmitOrderResult{Order: order, Details: details}, nil
}

// validate checks every form field and builds the OrderDetails record.
func (s *OrderService) validate(req SubmitOrderRequest) (menu.Item, notify.OrderDetails, error) {
	item, ok := menu.Get(req.ItemID)
	if !ok {
		return menu.Item{}, notify.OrderDetails{}, ErrItemNotFound
	}

	if len(req.Name) < 2 {
		return item, notify.OrderDetails{}, ErrInvalidName
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return item, notify.OrderDetails{}, ErrInvalidEmail
	}
	if len(req.Phone) < 10 {
		return item, notify.OrderDetails{}, ErrInvalidPhone
	}

	if req.PickupDate == "" {
		return item, notify.OrderDetails{}, ErrPickupDateRequired
	}
	pickupDate, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		return item, notify.OrderDetails{}, ErrPickupDateRequired
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !pickupDate.After(today) {
		return item, notify.OrderDetails{}, ErrPickupDatePast
	}
	if pickupDate.After(today.Add(maxPickupAhead)) {
		return item, notify.OrderDetails{}, ErrPickupDateTooFar
	}

	if req.PickupTime == "" {
		return item, notify.OrderDetails{}, ErrPickupTimeRequired
	}
	if req.Quantity < 1 {
		return item, notify.OrderDetails{}, ErrInvalidQuantity
	}
	if req.PaymentMethod != enum.PaymentMethodCash && req.PaymentMethod != enum.PaymentMethodOnline {
		return item, notify.OrderDetails{}, ErrInvalidPayment
	}

	// Bulk orders are takeaway: the takeaway price applies, falling back to
	// the delivery price.
	unitPrice := item.PriceFor(enum.ModeTakeaway)
	total := unitPrice.Mul(decimal.NewFromInt(int64(req.Quantity)))

	paymentStatus := enum.PaymentLabelCashOnPickup
	if req.PaymentMethod == enum.PaymentMethodOnline {
		paymentStatus = enum.PaymentLabelOnlinePayment
	}

	pickupAddress := req.PickupAddress
	if pickupAddress == "" {
		pickupAddress = "Saawariya Rasoi, Kanpur, Uttar-Pradesh"
	}

	instructions := req.SpecialInstructions
	if instructions == "" {
		instructions = "None"
	}

	details := notify.OrderDetails{
		OrderID:        GenerateOrderID(now),
		CustomerName:   req.Name,
		CustomerEmail:  req.Email,
		CustomerPhone:  req.Phone,
		PickupLocation: pickupAddress,
		PickupDateTime: fmt.Sprintf("%s at %s", pickupDate.Format("Jan 2, 2006"), req.PickupTime),
		Items: []notify.OrderItem{{
			Name:     item.Name,
			Quantity: req.Quantity,
			Price:    "₹" + unitPrice.String(),
		}},
		TotalAmount:         "₹" + total.StringFixed(2),
		PaymentStatus:       paymentStatus,
		SpecialInstructions: instructions,
	}

	return item, details, nil
}

// IsValidationError reports whether err is a form-level validation error
// that should surface as 400 Bad Request.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrPickupDateRequired) ||
		errors.Is(err, ErrPickupDatePast) ||
		errors.Is(err, ErrPickupDateTooFar) ||
		errors.Is(err, ErrPickupTimeRequired) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidPayment)
}
