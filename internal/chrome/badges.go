// Package chrome owns the header badge state (cart quantity, unread
// notifications) that the original site read from ambient client
// storage. Here it is an injected store with an explicit update channel.
package chrome

import "sync"

// Subscriber receives every badge update for a session.
type Subscriber func(sessionID string, cartQty, unread int)

type counts struct {
	cart   int
	unread int
}

// Badges is shared by all handlers, so unlike the page-scoped state
// models it needs a lock.
type Badges struct {
	mu       sync.Mutex
	sessions map[string]counts
	subs     []Subscriber
}

func NewBadges() *Badges {
	return &Badges{sessions: make(map[string]counts)}
}

// Subscribe registers an update listener. Listeners run synchronously
// under the store lock and must not call back into the store.
func (b *Badges) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// AddToCart bumps the session's cart badge by qty (at least 1).
func (b *Badges) AddToCart(sessionID string, qty int) {
	if qty < 1 {
		qty = 1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.sessions[sessionID]
	c.cart += qty
	b.sessions[sessionID] = c
	b.publish(sessionID, c)
}

// Notify bumps the session's unread notification badge.
func (b *Badges) Notify(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.sessions[sessionID]
	c.unread++
	b.sessions[sessionID] = c
	b.publish(sessionID, c)
}

// ClearUnread resets the notification badge, e.g. when the tray opens.
func (b *Badges) ClearUnread(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.sessions[sessionID]
	c.unread = 0
	b.sessions[sessionID] = c
	b.publish(sessionID, c)
}

// Counts reads the current badge values for a session.
func (b *Badges) Counts(sessionID string) (cartQty, unread int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := b.sessions[sessionID]
	return c.cart, c.unread
}

func (b *Badges) publish(sessionID string, c counts) {
	for _, fn := range b.subs {
		fn(sessionID, c.cart, c.unread)
	}
}
