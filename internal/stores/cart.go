package stores

import (
	"sync"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/repos"
)

const cartStorageKey = "cart-storage"

// CartStore holds the shopper's current selection. At most one line
// item exists per product id; adding an already-present product bumps
// its quantity instead of duplicating. Every mutation writes the whole
// collection back to the state snapshot, best-effort.
type CartStore struct {
	mu    sync.Mutex
	items []domain.CartItem
	open  bool
	state *repos.StateDB
}

type cartSnapshot struct {
	Items  []domain.CartItem `json:"items"`
	IsOpen bool              `json:"isCartOpen"`
}

func NewCartStore(state *repos.StateDB) *CartStore {
	s := &CartStore{state: state}
	var snap cartSnapshot
	if found, err := state.Load(cartStorageKey, &snap); err != nil {
		applog.Error(nil, "cart.hydrate.fail", err, nil)
	} else if found {
		s.items = snap.Items
		s.open = snap.IsOpen
	}
	return s
}

func (s *CartStore) persist() {
	if err := s.state.Save(cartStorageKey, cartSnapshot{Items: s.items, IsOpen: s.open}); err != nil {
		applog.Error(nil, "cart.persist.fail", err, nil)
	}
}

// AddItem merges by product id. No stock-limit check: quantities may
// exceed the catalog's stock.
func (s *CartStore) AddItem(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			s.persist()
			return
		}
	}
	s.items = append(s.items, domain.CartItem{Product: p, Quantity: 1})
	s.persist()
}

func (s *CartStore) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
	s.persist()
}

func (s *CartStore) removeLocked(productID string) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the exact quantity; zero or below removes the
// item.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(productID)
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

func (s *CartStore) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.persist()
}

func (s *CartStore) CloseCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.persist()
}

func (s *CartStore) ToggleCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
	s.persist()
}

func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Total is recomputed on demand, never cached.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

func (s *CartStore) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}
