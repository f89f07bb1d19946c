package enum

// Order lifecycle (CHECK constrained in DB).

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusReady      = "ready"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Profile roles (CHECK constrained in DB).

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Order mode (displayed price + order action per menu item).

const (
	ModeDelivery = "delivery"
	ModeTakeaway = "takeaway"
)

// Payment (form input vs. stored human-readable label).

const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
)

const (
	PaymentLabelCashOnPickup  = "Cash on Pickup"
	PaymentLabelOnlinePayment = "Online Payment"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// IsValidOrderStatus reports whether s is one of the known order statuses.
func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidMode reports whether m is a known order mode.
func IsValidMode(m string) bool {
	return m == ModeDelivery || m == ModeTakeaway
}
