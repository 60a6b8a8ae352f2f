package cache

import (
	"context"
	"sync"

	"github.com/viviapp/pedidos/internal/types"
)

//go:generate mockgen -source cache.go -destination cache_mock_test.go -package cache

type Lister interface {
	List(ctx context.Context) ([]types.Order, error)
}

// Cache holds the last accepted order list and a monotonic refresh
// token. Every fetch is stamped with the token current when it started;
// a response whose token is no longer current is discarded, so a slow
// early fetch can never clobber the result of a later one.
type Cache struct {
	mu     sync.Mutex
	token  uint64
	orders []types.Order
}

func New() *Cache {
	return &Cache{}
}

// Begin starts a new refresh: bumps the token and returns the value the
// matching Apply must present.
func (c *Cache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token++
	return c.token
}

// Apply installs a fetched order list if token is still current.
// Returns false when the response is stale and was discarded.
func (c *Cache) Apply(token uint64, orders []types.Order) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.token {
		return false
	}
	c.orders = orders
	return true
}

// Refresh runs one fetch-and-reconcile cycle. A stale response is not an
// error; it is simply not applied.
func (c *Cache) Refresh(ctx context.Context, lister Lister) error {

	token := c.Begin()

	orders, err := lister.List(ctx)
	if err != nil {
		return err
	}
	c.Apply(token, orders)
	return nil
}

// Orders returns a copy of the current view.
func (c *Cache) Orders() []types.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Get looks up one order in the current view.
func (c *Cache) Get(id int64) (*types.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, order := range c.orders {
		if order.ID == id {
			return &order, true
		}
	}
	return nil, false
}

// Remove drops an order from the view without waiting for the next
// refresh. Used after a delete or a completed payment so the UI updates
// immediately; the server stays authoritative via the follow-up refresh.
func (c *Cache) Remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.orders[:0]
	for _, order := range c.orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	c.orders = kept
}

// Token returns the current refresh token.
func (c *Cache) Token() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}
