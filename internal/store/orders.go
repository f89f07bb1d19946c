package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const orderColumns = `id, order_id, user_id, customer_name, customer_email, customer_phone,
	pickup_location, pickup_datetime, items, total_amount, payment_status,
	special_instructions, status, created_at`

func scanOrder(row pgx.Row) (Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.OrderID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.PickupLocation, &o.PickupDatetime, &o.Items, &o.TotalAmount, &o.PaymentStatus,
		&o.SpecialInstructions, &o.Status, &o.CreatedAt,
	)
	return o, err
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()
	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type CreateOrderParams struct {
	OrderID             string
	UserID              uuid.UUID
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	PickupLocation      string
	PickupDatetime      string
	Items               []byte
	TotalAmount         string
	PaymentStatus       string
	SpecialInstructions pgtype.Text
	Status              string
}

const createOrder = `INSERT INTO orders (
	order_id, user_id, customer_name, customer_email, customer_phone,
	pickup_location, pickup_datetime, items, total_amount, payment_status,
	special_instructions, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + orderColumns

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, createOrder,
		arg.OrderID, arg.UserID, arg.CustomerName, arg.CustomerEmail, arg.CustomerPhone,
		arg.PickupLocation, arg.PickupDatetime, arg.Items, arg.TotalAmount, arg.PaymentStatus,
		arg.SpecialInstructions, arg.Status,
	))
}

const getOrderByOrderID = `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

func (q *Queries) GetOrderByOrderID(ctx context.Context, orderID string) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, getOrderByOrderID, orderID))
}

const listOrdersByUser = `SELECT ` + orderColumns + `
FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

func (q *Queries) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByUser, userID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

// ListAllOrdersParams filters the admin listing. Invalid (zero) filter
// fields are ignored by the query.
type ListAllOrdersParams struct {
	Status pgtype.Text
	Search pgtype.Text
	Date   pgtype.Date
	Limit  int32
	Offset int32
}

const listAllOrders = `SELECT ` + orderColumns + `
FROM orders
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::text IS NULL OR order_id ILIKE '%' || $2 || '%'
       OR customer_name ILIKE '%' || $2 || '%'
       OR customer_email ILIKE '%' || $2 || '%'
       OR customer_phone ILIKE '%' || $2 || '%')
  AND ($3::date IS NULL OR created_at::date = $3)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5`

func (q *Queries) ListAllOrders(ctx context.Context, arg ListAllOrdersParams) ([]Order, error) {
	rows, err := q.db.Query(ctx, listAllOrders, arg.Status, arg.Search, arg.Date, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

type UpdateOrderStatusParams struct {
	OrderID string
	Status  string
}

const updateOrderStatus = `UPDATE orders SET status = $2 WHERE order_id = $1
RETURNING ` + orderColumns

func (q *Queries) UpdateOrderStatus(ctx context.Context, arg UpdateOrderStatusParams) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, updateOrderStatus, arg.OrderID, arg.Status))
}
