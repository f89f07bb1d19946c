// Package notify formats and dispatches admin notifications for new orders.
//
// Formatting is pure: two fixed templates (WhatsApp-style and email-style)
// rendered from the order payload. Dispatch POSTs the rendered messages to a
// configured webhook; with no webhook configured the messages are logged
// only. The eventual messaging provider is a config concern; delivery is
// at-most-once with no retry either way.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// OrderItem is one ordered line: name, quantity, display price.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

// OrderDetails is the notification payload, shaped like the submitted order.
type OrderDetails struct {
	OrderID             string      `json:"orderId"`
	CustomerName        string      `json:"customerName"`
	CustomerEmail       string      `json:"customerEmail"`
	CustomerPhone       string      `json:"customerPhone"`
	PickupLocation      string      `json:"pickupLocation"`
	PickupDateTime      string      `json:"pickupDateTime"`
	Items               []OrderItem `json:"items"`
	TotalAmount         string      `json:"totalAmount"`
	PaymentStatus       string      `json:"paymentStatus"`
	SpecialInstructions string      `json:"specialInstructions"`
}

// Ack is the dispatcher's JSON acknowledgment.
type Ack struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Details AckDetails `json:"details"`
}

type AckDetails struct {
	WhatsApp WhatsAppMessage `json:"whatsApp"`
	Email    EmailMessage    `json:"email"`
}

type WhatsAppMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func itemsList(items []OrderItem) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%s x %d", it.Name, it.Quantity)
	}
	return strings.Join(lines, "\n")
}

// FormatWhatsAppMessage renders the WhatsApp-style notification body.
func FormatWhatsAppMessage(order OrderDetails) string {
	return fmt.Sprintf(`📢 New Order Request! 🛍️

Customer Details:
👤 Name: %s
📞 Phone: %s
📧 Email: %s
📍 Pickup Address: %s
🕒 Preferred Pickup Time: %s

Order Details:
📌 Order ID: %s
📋 Items Ordered:

%s
💰 Total Amount: %s
💳 Payment Status: %s

📝 Special Instructions:
%s

🚀 Please confirm and process ASAP!`,
		order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.PickupLocation, order.PickupDateTime,
		order.OrderID, itemsList(order.Items),
		order.TotalAmount, order.PaymentStatus,
		order.SpecialInstructions)
}

// EmailSubject renders the notification email subject line.
func EmailSubject(order OrderDetails) string {
	return fmt.Sprintf("New Order Request – Order #%s", order.OrderID)
}

// FormatEmailBody renders the email-style notification body.
func FormatEmailBody(order OrderDetails) string {
	return fmt.Sprintf(`Hello Admin,

A new order request has been received. Please review the details below:

🔹 Customer Details:

Name: %s
Phone: %s
Email: %s
Pickup Location: %s
Preferred Time: %s

🔹 Order Details:

Order ID: %s
Items Ordered:
%s
Total Amount: %s
Payment Mode: %s

🔹 Special Instructions:
%s

Regards,
Saawariya Rasoi Team`,
		order.CustomerName, order.CustomerPhone, order.CustomerEmail,
		order.PickupLocation, order.PickupDateTime,
		order.OrderID, itemsList(order.Items),
		order.TotalAmount, order.PaymentStatus,
		order.SpecialInstructions)
}

// Dispatcher sends formatted order notifications to the admin contacts.
type Dispatcher struct {
	webhookURL string
	adminEmail string
	adminPhone string
	client     *http.Client
}

// NewDispatcher creates a Dispatcher. An empty webhookURL selects log-only
// dispatch.
func NewDispatcher(webhookURL, adminEmail, adminPhone string) *Dispatcher {
	return &Dispatcher{
		webhookURL: webhookURL,
		adminEmail: adminEmail,
		adminPhone: adminPhone,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// webhookPayload is the body POSTed to the webhook target.
type webhookPayload struct {
	WhatsAppMessage string       `json:"whatsappMessage"`
	EmailSubject    string       `json:"emailSubject"`
	EmailBody       string       `json:"emailBody"`
	OrderDetails    OrderDetails `json:"orderDetails"`
	AdminEmail      string       `json:"adminEmail"`
	AdminWhatsapp   string       `json:"adminWhatsapp"`
}

// Dispatch formats the notification and sends it. The returned Ack carries
// the rendered messages regardless of transport outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, order OrderDetails) (Ack, error) {
	whatsApp := FormatWhatsAppMessage(order)
	subject := EmailSubject(order)
	body := FormatEmailBody(order)

	ack := Ack{
		Success: true,
		Message: "Notification logs created (would send real messages in production)",
		Details: AckDetails{
			WhatsApp: WhatsAppMessage{To: d.adminPhone, Message: whatsApp},
			Email:    EmailMessage{To: d.adminEmail, Subject: subject, Body: body},
		},
	}

	if d.webhookURL == "" {
		log.Printf("notify: order %s: WhatsApp to %s, email to %s (no webhook configured)",
			order.OrderID, d.adminPhone, d.adminEmail)
		return ack, nil
	}

	payload, err := json.Marshal(webhookPayload{
		WhatsAppMessage: whatsApp,
		EmailSubject:    subject,
		EmailBody:       body,
		OrderDetails:    order,
		AdminEmail:      d.adminEmail,
		AdminWhatsapp:   d.adminPhone,
	})
	if err != nil {
		return Ack{}, fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return Ack{}, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return Ack{}, fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Ack{}, fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	ack.Message = "Notification dispatched to webhook"
	return ack, nil
}
