package dashboard

import (
	"context"
	"sync"
	"time"

	domainAsset "asset-inventory-dashboard/internal/domain/asset"

	"github.com/google/uuid"
)

// Session is one open dashboard. The asset list is loaded once when the session
// opens and its enrichment pass runs in the background until the session closes.
type Session struct {
	ID       uuid.UUID
	OpenedAt time.Time

	filter      *domainAsset.Filter
	loader      *Loader
	recentLimit int

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.RWMutex
	assets      []*domainAsset.Asset
	aggregation *Aggregation
	done        <-chan struct{}
	lastAccess  time.Time
}

func newSession(id uuid.UUID, filter *domainAsset.Filter, loader *Loader, recentLimit int, now time.Time) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	closed := make(chan struct{})
	close(closed)

	return &Session{
		ID:          id,
		OpenedAt:    now,
		filter:      filter,
		loader:      loader,
		recentLimit: recentLimit,
		ctx:         ctx,
		cancel:      cancel,
		done:        closed,
		lastAccess:  now,
	}
}

// setAssets installs a new asset list and its aggregation.
func (s *Session) setAssets(assets []*domainAsset.Asset) *Aggregation {
	agg := Aggregate(assets)

	s.mu.Lock()
	s.assets = assets
	s.aggregation = agg
	s.mu.Unlock()

	return agg
}

func (s *Session) setDone(done <-chan struct{}) {
	if done == nil {
		return
	}
	s.mu.Lock()
	s.done = done
	s.mu.Unlock()
}

// View composes the current view model, including partial enrichment results.
func (s *Session) View() *ViewModel {
	s.mu.RLock()
	assets := s.assets
	agg := s.aggregation
	s.mu.RUnlock()

	// Loading first: a pass that ends after this read has already stored its summaries.
	loading := s.loader.Loading()
	view := BuildView(ViewInput{
		Assets:      assets,
		Aggregation: agg,
		Summaries:   s.loader.Summaries(),
		Loading:     loading,
		Metrics:     s.loader.Metrics().Snapshot(),
		RecentLimit: s.recentLimit,
	})
	id := s.ID
	view.SessionID = &id

	return view
}

// Wait blocks until the current enrichment pass ends or ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	s.mu.RLock()
	done := s.done
	s.mu.RUnlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loading reports whether the enrichment pass is still running.
func (s *Session) Loading() bool {
	return s.loader.Loading()
}

// Aggregation returns the aggregation of the current asset list.
func (s *Session) Aggregation() *Aggregation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aggregation
}

// Close cancels the enrichment pass. Fetches already in flight finish but their
// results are dropped.
func (s *Session) Close() {
	s.cancel()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastAccess = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAccess
}
