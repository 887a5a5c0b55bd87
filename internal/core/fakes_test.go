package core

import (
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"
)

type memProducts struct {
	mu    sync.Mutex
	items []Product
	err   error
	lists int
}

func (m *memProducts) List(context.Context) ([]Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	if m.err != nil {
		return nil, m.err
	}
	out := make([]Product, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memProducts) GetByName(_ context.Context, name string) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.items {
		if p.Name == name {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

func (m *memProducts) UpsertByName(_ context.Context, p Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].Name == p.Name {
			m.items[i] = p
			return nil
		}
	}
	m.items = append(m.items, p)
	return nil
}

type memUsers struct {
	mu   sync.Mutex
	byID map[string]UserProfile
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]UserProfile{}} }

func (m *memUsers) Create(_ context.Context, u UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return ErrUserExists
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) Get(_ context.Context, id string) (UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return UserProfile{}, ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return UserProfile{}, ErrUserNotFound
}

func (m *memUsers) Update(_ context.Context, id string, patch UserPatch, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Address != nil {
		u.Address = *patch.Address
	}
	u.UpdatedAt = updatedAt
	m.byID[id] = u
	return nil
}

func (m *memUsers) SetPasswordHash(_ context.Context, id, hash string, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	u.PasswordHash = hash
	u.UpdatedAt = updatedAt
	m.byID[id] = u
	return nil
}

type memOrders struct {
	mu        sync.Mutex
	byID      map[string]Order
	seq       int64
	createErr error
}

func newMemOrders() *memOrders { return &memOrders{byID: map[string]Order{}} }

func (m *memOrders) Create(_ context.Context, o Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.byID[o.ID]; ok {
		return ErrOrderExists
	}
	m.byID[o.ID] = o
	return nil
}

func (m *memOrders) Get(_ context.Context, id string) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.byID[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (m *memOrders) GetByNumber(_ context.Context, number string) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.byID {
		if o.Number == number {
			return o, nil
		}
	}
	return Order{}, ErrOrderNotFound
}

func (m *memOrders) ListByUser(_ context.Context, userID string, limit, offset int) ([]Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var mine []Order
	for _, o := range m.byID {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].Number > mine[j].Number })
	total := int64(len(mine))
	if offset >= len(mine) {
		return []Order{}, total, nil
	}
	end := min(offset+limit, len(mine))
	return mine[offset:end], total, nil
}

func (m *memOrders) NextOrderNumber(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	return FormatOrderNumber(2026, m.seq), nil
}

type recordedEvents struct {
	placed []Order
	err    error
}

func (r *recordedEvents) OrderPlaced(_ context.Context, o Order) error {
	r.placed = append(r.placed, o)
	return r.err
}

type recordedNotifier struct {
	sent []string
	err  error
}

func (r *recordedNotifier) OrderConfirmation(_ context.Context, o Order, u UserProfile) error {
	r.sent = append(r.sent, o.Number+" "+u.Email)
	return r.err
}

type staticTokens struct{}

func (staticTokens) Issue(userID, email string) (string, error) {
	return "token-" + userID, nil
}

type fixedCounter struct {
	pages int
	err   error
	delay time.Duration
}

func (f fixedCounter) CountPages(ctx context.Context, _ io.ReadSeeker) (int, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return f.pages, f.err
}

var errBoom = errors.New("boom")
