package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgx methods the queries need. Satisfied by
// *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries runs the application's SQL against a pool or transaction.
type Queries struct {
	db DBTX
}

// New creates Queries over the given pool or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Connect opens a pgx pool and verifies the connection.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Order is a persisted order row. Items is the serialized line-item JSON
// exactly as submitted.
type Order struct {
	ID                  uuid.UUID
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
	CreatedAt           time.Time
}

// Profile is an account row. Role gates admin access; OrderMode is the
// persisted delivery/takeaway preference.
type Profile struct {
	ID             uuid.UUID
	Email          string
	HashedPassword string
	Role           string
	OrderMode      string
	CreatedAt      time.Time
}
