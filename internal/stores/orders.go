package stores

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/repos"
)

const (
	ordersStorageKey = "orders-storage"
	ordersCollection = "orders"
)

var ErrInvalidStatus = errors.New("invalid order status")

// OrderStore tracks orders created at checkout and reviewed by the
// admin. Status moves freely between the three states on explicit
// admin action; only unknown status values are rejected. Each
// successful add and each status change emits one notification through
// the injected callback.
type OrderStore struct {
	mu     sync.Mutex
	orders []domain.Order
	state  *repos.StateDB
	docs   *repos.DocStore
	notify func(domain.Notification)
}

type ordersSnapshot struct {
	Orders []domain.Order `json:"orders"`
}

// NewOrderStore wires the store with its notification sink; notify may
// be nil. docs may be nil for local-only mode.
func NewOrderStore(state *repos.StateDB, docs *repos.DocStore, notify func(domain.Notification)) *OrderStore {
	s := &OrderStore{state: state, docs: docs, notify: notify}

	var snap ordersSnapshot
	found, err := state.Load(ordersStorageKey, &snap)
	if err != nil {
		applog.Error(nil, "orders.hydrate.fail", err, nil)
	}
	if found {
		s.orders = snap.Orders
		return s
	}

	if docs != nil {
		if raw, err := docs.ListAll(ordersCollection, "createdAt", true); err != nil {
			applog.Error(nil, "orders.remote.list.fail", err, nil)
		} else if ords, err := repos.DecodeAll[domain.Order](raw); err == nil {
			s.orders = ords
		}
	}
	return s
}

// NewOrderNumber derives a human-readable number from the last six
// digits of the epoch-millisecond timestamp.
func NewOrderNumber(t time.Time) string {
	return fmt.Sprintf("ORD-%06d", t.UnixMilli()%1_000_000)
}

func (s *OrderStore) persist() {
	if err := s.state.Save(ordersStorageKey, ordersSnapshot{Orders: s.orders}); err != nil {
		applog.Error(nil, "orders.persist.fail", err, nil)
	}
}

func (s *OrderStore) mirror(action string, fn func() error) {
	if s.docs == nil {
		return
	}
	if err := fn(); err != nil {
		applog.Error(nil, action, err, nil)
	}
}

func (s *OrderStore) emit(n domain.Notification) {
	if s.notify != nil {
		s.notify(n)
	}
}

// AddOrder assigns id, order number and timestamps when absent; a
// missing or unknown status lands as Pending so the store never holds
// a value outside the enum.
func (s *OrderStore) AddOrder(o domain.Order) domain.Order {
	s.mu.Lock()
	now := time.Now().UTC()
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber(now)
	}
	if !o.Status.Valid() {
		o.Status = domain.OrderPending
	}
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders = append(s.orders, o)
	s.persist()
	s.mirror("orders.remote.create.fail", func() error {
		return s.docs.Put(ordersCollection, o.ID, o)
	})
	s.mu.Unlock()

	s.emit(domain.Notification{
		Type:    "order_created",
		Title:   "New Order",
		Message: fmt.Sprintf("Order %s placed by %s for GHC %.2f", o.OrderNumber, o.CustomerName, o.TotalAmount),
		Metadata: map[string]string{
			"orderId":     o.ID,
			"orderNumber": o.OrderNumber,
		},
	})
	return o
}

// OrderUpdate is a typed partial update; nil fields are left alone.
type OrderUpdate struct {
	CustomerName  *string
	CustomerEmail *string
	Address       *string
	City          *string
	Zip           *string
	TotalAmount   *float64
	Status        *domain.OrderStatus
}

func (u OrderUpdate) apply(o *domain.Order) {
	if u.CustomerName != nil {
		o.CustomerName = *u.CustomerName
	}
	if u.CustomerEmail != nil {
		o.CustomerEmail = *u.CustomerEmail
	}
	if u.Address != nil {
		o.Address = *u.Address
	}
	if u.City != nil {
		o.City = *u.City
	}
	if u.Zip != nil {
		o.Zip = *u.Zip
	}
	if u.TotalAmount != nil {
		o.TotalAmount = *u.TotalAmount
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
}

// UpdateOrder shallow-merges the update; ok is false when the id is
// absent. A status value outside the enum rejects the whole update.
func (s *OrderStore) UpdateOrder(id string, u OrderUpdate) (domain.Order, error) {
	if u.Status != nil && !u.Status.Valid() {
		return domain.Order{}, ErrInvalidStatus
	}

	s.mu.Lock()
	var updated domain.Order
	var prevStatus domain.OrderStatus
	found := false
	for i := range s.orders {
		if s.orders[i].ID == id {
			prevStatus = s.orders[i].Status
			u.apply(&s.orders[i])
			s.orders[i].UpdatedAt = time.Now().UTC()
			updated = s.orders[i]
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return domain.Order{}, errors.New("order not found")
	}
	s.persist()
	s.mirror("orders.remote.update.fail", func() error {
		return s.docs.Put(ordersCollection, updated.ID, updated)
	})
	s.mu.Unlock()

	if u.Status != nil && *u.Status != prevStatus {
		s.emit(domain.Notification{
			Type:    "order_status",
			Title:   "Order Status Updated",
			Message: fmt.Sprintf("Order %s moved from %s to %s", updated.OrderNumber, prevStatus, updated.Status),
			Metadata: map[string]string{
				"orderId":     updated.ID,
				"orderNumber": updated.OrderNumber,
				"status":      string(updated.Status),
			},
		})
	}
	return updated, nil
}

// UpdateStatus is a constrained call of UpdateOrder.
func (s *OrderStore) UpdateStatus(id string, status domain.OrderStatus) (domain.Order, error) {
	return s.UpdateOrder(id, OrderUpdate{Status: &status})
}

func (s *OrderStore) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			s.persist()
			s.mirror("orders.remote.delete.fail", func() error {
				_, err := s.docs.Delete(ordersCollection, id)
				return err
			})
			return true
		}
	}
	return false
}

func (s *OrderStore) Get(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}

// Orders returns a newest-first copy.
func (s *OrderStore) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// CountByStatus powers the admin dashboard cards.
func (s *OrderStore) CountByStatus() map[domain.OrderStatus]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[domain.OrderStatus]int{}
	for _, o := range s.orders {
		counts[o.Status]++
	}
	return counts
}
