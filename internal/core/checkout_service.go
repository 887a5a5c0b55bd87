package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lamontana/storefront/internal/platform/ids"
)

type CheckoutService interface {
	// PlaceOrder turns the cart (and an optional print job) into a persisted order
	PlaceOrder(ctx context.Context, userID string, cart *Cart, in CheckoutInput) (Order, error)

	// Get retrieves an order owned by userID
	Get(ctx context.Context, userID, id string) (Order, error)

	// GetByNumber retrieves an order owned by userID by its human readable number
	GetByNumber(ctx context.Context, userID, number string) (Order, error)

	// List returns the user's orders, newest first
	List(ctx context.Context, userID string, limit, offset int) ([]Order, int64, error)
}

type checkoutService struct {
	orders   OrderRepo
	users    UserRepo
	pricing  PricingService
	events   OrderEvents
	notifier OrderNotifier
	log      *slog.Logger
	clock    func() time.Time
}

func NewCheckoutService(orders OrderRepo, users UserRepo, pricing PricingService, events OrderEvents, notifier OrderNotifier, log *slog.Logger) CheckoutService {
	if log == nil {
		log = slog.Default()
	}
	return &checkoutService{
		orders:   orders,
		users:    users,
		pricing:  pricing,
		events:   events,
		notifier: notifier,
		log:      log,
		clock:    time.Now,
	}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, userID string, cart *Cart, in CheckoutInput) (Order, error) {
	if strings.TrimSpace(userID) == "" {
		return Order{}, fmt.Errorf("%w: missing user ID", ErrValidation)
	}
	if cart == nil {
		return Order{}, fmt.Errorf("%w: cart is nil", ErrInvalidArgument)
	}

	// 1) Snapshot the cart and price the print job
	snap := cart.Snapshot()
	var quote *PrintQuote
	jobTotal := 0
	if in.PrintJob != nil {
		q, err := s.pricing.Quote(ctx, *in.PrintJob)
		if err != nil {
			return Order{}, err
		}
		if q.Total > 0 {
			quote = &q
			jobTotal = q.Total
		}
	}

	// 2) Refuse empty orders
	total := snap.TotalAmount + jobTotal
	if total <= 0 {
		return Order{}, ErrEmptyOrder
	}

	// 3) Resolve shipping details
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return Order{}, err
	}
	shipping := ShippingDetails{
		Address:    strings.TrimSpace(in.Address),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Phone:      strings.TrimSpace(in.Phone),
		Notes:      strings.TrimSpace(in.Notes),
	}
	if in.UseSavedAddress {
		shipping.Address = user.Address
		shipping.Phone = user.Phone
	}

	// 4) Classify postal code; the outcome is informational only
	shipping.Outcome = ClassifyPostalCode(shipping.PostalCode)

	// 5) Allocate number and persist
	number, err := s.orders.NextOrderNumber(ctx)
	if err != nil {
		return Order{}, fmt.Errorf("failed to generate order number: %w", err)
	}
	order := Order{
		ID:        ids.New(),
		Number:    number,
		UserID:    userID,
		Lines:     snap.Lines,
		CartTotal: snap.TotalAmount,
		PrintJob:  quote,
		JobTotal:  jobTotal,
		Total:     total,
		Shipping:  shipping,
		Status:    OrderStatusPlaced,
		CreatedAt: s.clock(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return Order{}, err
	}

	// 6) Clear the cart only once the order is stored
	cart.Clear()

	// 7) Publish and notify (best-effort, the order already exists)
	if s.events != nil {
		if err := s.events.OrderPlaced(ctx, order); err != nil {
			s.log.Warn("publish order.placed failed", "order", order.Number, "err", err)
		}
	}
	if s.notifier != nil {
		if err := s.notifier.OrderConfirmation(ctx, order, user); err != nil {
			s.log.Warn("order confirmation email failed", "order", order.Number, "err", err)
		}
	}

	return order, nil
}

func (s *checkoutService) Get(ctx context.Context, userID, id string) (Order, error) {
	if id == "" {
		return Order{}, fmt.Errorf("%w: missing order ID", ErrValidation)
	}
	order, err := s.orders.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	// Someone else's order looks the same as a missing one.
	if order.UserID != userID {
		return Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *checkoutService) GetByNumber(ctx context.Context, userID, number string) (Order, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return Order{}, fmt.Errorf("%w: missing order number", ErrValidation)
	}
	order, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return Order{}, err
	}
	if order.UserID != userID {
		return Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *checkoutService) List(ctx context.Context, userID string, limit, offset int) ([]Order, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.orders.ListByUser(ctx, userID, limit, offset)
}
