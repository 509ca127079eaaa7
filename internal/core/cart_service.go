package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// cartIdleTTL is how long an untouched cart survives before eviction. Carts are
// session state and never persist across a restart.
const cartIdleTTL = 24 * time.Hour

// CartService is an in-memory registry of session carts keyed by an opaque id.
// All methods return defensive snapshots; the bool result is false when the
// cart id is unknown or expired.
type CartService interface {
	// Create opens a new empty cart.
	Create() Cart
	// Get returns a snapshot of the cart.
	Get(id string) (Cart, bool)
	// AddItem merges one unit of the product into the cart.
	AddItem(id string, p Product) (Cart, bool)
	// AdjustItem applies a quantity delta to the product's line, clamped at 1.
	AdjustItem(id string, productID, delta int) (Cart, bool)
	// RemoveItem deletes the product's line from the cart.
	RemoveItem(id string, productID int) (Cart, bool)
}

type cartEntry struct {
	cart     *Cart
	lastUsed time.Time
}

type cartService struct {
	mu    sync.Mutex
	carts map[string]*cartEntry
}

func NewCartService() CartService {
	s := &cartService{carts: make(map[string]*cartEntry)}
	s.startPurge(context.Background())
	return s
}

func (s *cartService) Create() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &Cart{ID: uuid.NewString()}
	s.carts[cart.ID] = &cartEntry{cart: cart, lastUsed: time.Now()}
	return snapshot(cart)
}

func (s *cartService) Get(id string) (Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(id)
	if !ok {
		return Cart{}, false
	}
	return snapshot(e.cart), true
}

func (s *cartService) AddItem(id string, p Product) (Cart, bool) {
	return s.mutate(id, func(c *Cart) { c.Add(p) })
}

func (s *cartService) AdjustItem(id string, productID, delta int) (Cart, bool) {
	return s.mutate(id, func(c *Cart) { c.AdjustQuantity(productID, delta) })
}

func (s *cartService) RemoveItem(id string, productID int) (Cart, bool) {
	return s.mutate(id, func(c *Cart) { c.Remove(productID) })
}

// mutate runs fn against the cart under the lock, so each cart mutation runs to
// completion before the next one is applied.
func (s *cartService) mutate(id string, fn func(*Cart)) (Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(id)
	if !ok {
		return Cart{}, false
	}
	fn(e.cart)
	e.lastUsed = time.Now()
	return snapshot(e.cart), true
}

// lookup must be called with the lock held. Expired entries are evicted lazily.
func (s *cartService) lookup(id string) (*cartEntry, bool) {
	e, ok := s.carts[id]
	if !ok {
		return nil, false
	}
	if time.Since(e.lastUsed) > cartIdleTTL {
		delete(s.carts, id)
		return nil, false
	}
	return e, true
}

func snapshot(c *Cart) Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{ID: c.ID, Lines: lines}
}

// startPurge starts a background goroutine that evicts idle carts every hour.
func (s *cartService) startPurge(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				for id, e := range s.carts {
					if time.Since(e.lastUsed) > cartIdleTTL {
						delete(s.carts, id)
					}
				}
				s.mu.Unlock()
			}
		}
	}()
}
