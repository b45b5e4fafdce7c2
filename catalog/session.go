package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/TuanAnh19122003/motoparts-storefront/models"
	"github.com/TuanAnh19122003/motoparts-storefront/utils"
)

// ListingSession is the listing page's filter state machine. Each filter
// change replaces one field, bumps a generation counter and dispatches
// exactly one background fetch; a fetch that completes for a superseded
// generation is discarded, so rapid successive changes can never overwrite a
// newer product list with an older response. On fetch failure the previous
// list is retained and the error kept for the next snapshot.
type ListingSession struct {
	client *Client

	mu       sync.Mutex
	filter   FilterState
	gen      uint64
	products []models.Product
	loading  bool
	lastErr  error
	changed  chan struct{}
	lastUsed time.Time
}

// Snapshot is the settled view of a listing session
type Snapshot struct {
	Products []models.Product
	Filter   FilterState
	Loading  bool
	Err      error
}

const fetchTimeout = 10 * time.Second

// NewListingSession creates a session with the default filter and fetches
// the unfiltered listing.
func NewListingSession(client *Client) *ListingSession {
	s := &ListingSession{
		client:   client,
		filter:   DefaultFilter(),
		products: []models.Product{},
		changed:  make(chan struct{}),
		lastUsed: time.Now(),
	}
	s.mu.Lock()
	s.dispatchLocked()
	s.mu.Unlock()
	return s
}

// SetKeyword replaces the free-text keyword
func (s *ListingSession) SetKeyword(keyword string) {
	s.apply(func(f *FilterState) { f.Keyword = keyword })
}

// SetCategories replaces the selected category set
func (s *ListingSession) SetCategories(categories []string) {
	s.apply(func(f *FilterState) { f.Categories = categories })
}

// SetPriceRange replaces the price range
func (s *ListingSession) SetPriceRange(min, max float64) {
	s.apply(func(f *FilterState) { f.PriceRange = [2]float64{min, max} })
}

// apply mutates the filter, normalizes it, and dispatches a re-fetch when
// the selection actually changed.
func (s *ListingSession) apply(mutate func(*FilterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.filter
	next.Categories = append([]string(nil), s.filter.Categories...)
	mutate(&next)
	next = next.Normalize()

	// An unchanged selection is a no-op unless the last fetch failed; a
	// re-trigger after a failure must dispatch again.
	if next.Equal(s.filter) && s.lastErr == nil {
		return
	}
	s.filter = next
	s.dispatchLocked()
}

// dispatchLocked starts a background fetch for the current filter. Caller
// holds the lock.
func (s *ListingSession) dispatchLocked() {
	s.gen++
	s.loading = true
	s.signalLocked()

	gen := s.gen
	filter := s.filter
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		products, err := s.client.ListProducts(ctx, filter)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer filter change superseded this fetch.
			utils.LogDebug("Stale product fetch discarded (generation %d, current %d)", gen, s.gen)
			return
		}
		if err != nil {
			utils.LogError("Product fetch failed: %v", err)
			s.lastErr = err
		} else {
			s.products = products
			s.lastErr = nil
		}
		s.loading = false
		s.signalLocked()
	}()
}

// Snapshot returns the current state without waiting
func (s *ListingSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Wait blocks until the latest dispatched fetch settles or the context ends,
// then returns the state. A context expiry returns whatever is current,
// loading flag included.
func (s *ListingSession) Wait(ctx context.Context) Snapshot {
	for {
		s.mu.Lock()
		if !s.loading {
			snap := s.snapshotLocked()
			s.mu.Unlock()
			return snap
		}
		changed := s.changed
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			return s.Snapshot()
		case <-changed:
		}
	}
}

// Filter returns the current filter selection
func (s *ListingSession) Filter() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *ListingSession) snapshotLocked() Snapshot {
	s.lastUsed = time.Now()
	return Snapshot{
		Products: s.products,
		Filter:   s.filter,
		Loading:  s.loading,
		Err:      s.lastErr,
	}
}

// signalLocked wakes every waiter. Caller holds the lock.
func (s *ListingSession) signalLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}

// Registry hands out one ListingSession per browser session and discards
// sessions that have been idle past the TTL, the server-side counterpart of
// the listing page unmounting.
type Registry struct {
	client *Client
	ttl    time.Duration

	mu       sync.Mutex
	sessions map[string]*ListingSession
}

// NewRegistry creates a registry with the given idle TTL
func NewRegistry(client *Client, ttl time.Duration) *Registry {
	return &Registry{
		client:   client,
		ttl:      ttl,
		sessions: make(map[string]*ListingSession),
	}
}

// Get returns the listing session for a session id, creating it with the
// default filter on first use. Expired sessions are swept on access.
func (r *Registry) Get(sid string) *ListingSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, sess := range r.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastUsed)
		sess.mu.Unlock()
		if idle > r.ttl {
			delete(r.sessions, id)
		}
	}

	if sess, ok := r.sessions[sid]; ok {
		return sess
	}
	sess := NewListingSession(r.client)
	r.sessions[sid] = sess
	return sess
}

// Len reports how many live sessions the registry holds
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
