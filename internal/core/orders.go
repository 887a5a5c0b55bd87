package core

import (
	"context"
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ShippingDetails records where an order goes and whether it ships free.
type ShippingDetails struct {
	Address    string          `json:"address"`
	PostalCode string          `json:"postal_code"`
	Phone      string          `json:"phone"`
	Notes      string          `json:"notes,omitempty"`
	Outcome    ShippingOutcome `json:"outcome"`
}

// Order is a snapshot of a cart (and optional print job) at checkout.
type Order struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"` // e.g. ORD-2026-000001
	UserID    string          `json:"user_id"`
	Lines     []CartLine      `json:"items"`
	CartTotal int             `json:"cart_total"`
	PrintJob  *PrintQuote     `json:"print_job,omitempty"`
	JobTotal  int             `json:"job_total"`
	Total     int             `json:"total"`
	Shipping  ShippingDetails `json:"shipping"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type CheckoutInput struct {
	Address         string         `json:"address"`
	PostalCode      string         `json:"postal_code"`
	Phone           string         `json:"phone"`
	Notes           string         `json:"notes"`
	UseSavedAddress bool           `json:"use_saved_address"`
	PrintJob        *PrintJobInput `json:"print_job,omitempty"`
}

type OrderRepo interface {
	Create(ctx context.Context, order Order) error
	Get(ctx context.Context, id string) (Order, error)
	GetByNumber(ctx context.Context, number string) (Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, int64, error)
	NextOrderNumber(ctx context.Context) (string, error)
}

// OrderEvents publishes order lifecycle events to the message broker.
type OrderEvents interface {
	OrderPlaced(ctx context.Context, order Order) error
}

// OrderNotifier tells the customer about their order.
type OrderNotifier interface {
	OrderConfirmation(ctx context.Context, order Order, user UserProfile) error
}

// FormatOrderNumber renders the human readable order number for a year and sequence.
func FormatOrderNumber(year int, seq int64) string {
	return fmt.Sprintf("ORD-%d-%06d", year, seq)
}

var (
	ErrOrderNotFound = fmt.Errorf("%w: order not found", ErrNotFound)
	ErrOrderExists   = fmt.Errorf("%w: order already exists", ErrConflict)
	ErrEmptyOrder    = fmt.Errorf("%w: nothing to order", ErrValidation)
)
