package dashboard

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"asset-inventory-dashboard/internal/diagnostics"
	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"
	"asset-inventory-dashboard/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultFetchTimeout = 10 * time.Second

// LoaderConfig controls how an enrichment pass fetches summaries.
// Concurrency 1 fetches one company at a time in iteration order.
type LoaderConfig struct {
	SessionID    string
	Concurrency  int
	FetchTimeout time.Duration
}

// Loader runs enrichment passes: one maintenance summary fetch per company,
// accumulated into a mapping that only ever grows.
type Loader struct {
	fetcher domainMaintenance.SummaryFetcher
	sink    diagnostics.Sink
	cfg     LoaderConfig
	metrics *MetricsTracker

	// summaries is replaced wholesale on every write; published maps are never mutated.
	summaries atomic.Pointer[map[uuid.UUID]domainMaintenance.Summary]
	writeMu   sync.Mutex

	pending atomic.Int32
	runMu   sync.Mutex

	stateMu       sync.Mutex
	lastSignature string
	hasRun        bool
}

// NewLoader creates a loader with an empty summary mapping.
func NewLoader(fetcher domainMaintenance.SummaryFetcher, sink diagnostics.Sink, cfg LoaderConfig) *Loader {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	if sink == nil {
		sink = diagnostics.NopSink{}
	}

	l := &Loader{
		fetcher: fetcher,
		sink:    sink,
		cfg:     cfg,
		metrics: NewMetricsTracker(),
	}
	empty := make(map[uuid.UUID]domainMaintenance.Summary)
	l.summaries.Store(&empty)

	return l
}

// Summaries returns the latest committed mapping. The map must not be modified.
func (l *Loader) Summaries() map[uuid.UUID]domainMaintenance.Summary {
	return *l.summaries.Load()
}

// Summary returns the loaded summary of one company.
func (l *Loader) Summary(companyID uuid.UUID) (domainMaintenance.Summary, bool) {
	s, ok := l.Summaries()[companyID]
	return s, ok
}

// Loading reports whether a pass is queued or in progress.
func (l *Loader) Loading() bool {
	return l.pending.Load() > 0
}

// Metrics exposes the pass metrics tracker.
func (l *Loader) Metrics() *MetricsTracker {
	return l.metrics
}

// Run performs a pass and blocks until every company has been attempted
// or ctx is done. Fetch failures are logged, never returned.
func (l *Loader) Run(ctx context.Context, companyIDs []uuid.UUID) {
	l.begin(companySignature(distinctIDs(companyIDs)))
	l.run(ctx, companyIDs)
}

// Start marks the loader as loading and runs a pass in the background.
// The returned channel is closed when the pass ends.
func (l *Loader) Start(ctx context.Context, companyIDs []uuid.UUID) <-chan struct{} {
	l.begin(companySignature(distinctIDs(companyIDs)))
	return l.spawn(ctx, companyIDs)
}

// Refresh starts a pass only when the distinct company set differs from the
// one of the latest started pass. It reports whether a pass was started.
func (l *Loader) Refresh(ctx context.Context, companyIDs []uuid.UUID) (<-chan struct{}, bool) {
	signature := companySignature(distinctIDs(companyIDs))

	l.stateMu.Lock()
	if l.hasRun && signature == l.lastSignature {
		l.stateMu.Unlock()
		logger.Debug("Company set unchanged, skipping enrichment pass",
			zap.String("session_id", l.cfg.SessionID),
		)
		return nil, false
	}
	l.markLocked(signature)
	l.stateMu.Unlock()

	return l.spawn(ctx, companyIDs), true
}

// begin records the company set of a pass and marks it pending before the
// pass waits for earlier ones.
func (l *Loader) begin(signature string) {
	l.stateMu.Lock()
	defer l.stateMu.Unlock()
	l.markLocked(signature)
}

func (l *Loader) markLocked(signature string) {
	l.lastSignature = signature
	l.hasRun = true
	l.pending.Add(1)
}

func (l *Loader) spawn(ctx context.Context, companyIDs []uuid.UUID) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.run(ctx, companyIDs)
	}()

	return done
}

func (l *Loader) run(ctx context.Context, companyIDs []uuid.UUID) {
	l.runMu.Lock()
	defer l.runMu.Unlock()
	defer l.pending.Add(-1)

	ids := distinctIDs(companyIDs)

	start := time.Now()
	l.metrics.Update(func(m *PassMetrics) {
		m.Passes++
		m.LastPassStartedAt = start
	})

	logger.Debug("Enrichment pass started",
		zap.String("session_id", l.cfg.SessionID),
		zap.Int("companies", len(ids)),
		zap.Int("concurrency", l.cfg.Concurrency),
	)

	var succeeded, failed atomic.Int64
	record := func(ok bool) {
		if ok {
			succeeded.Add(1)
		} else {
			failed.Add(1)
		}
	}

	if l.cfg.Concurrency == 1 {
		l.fetchSequential(ctx, ids, record)
	} else {
		l.fetchConcurrent(ctx, ids, record)
	}

	finished := time.Now()
	duration := finished.Sub(start)
	l.metrics.Update(func(m *PassMetrics) {
		m.LastPassFinishedAt = finished
		m.LastPassDuration = duration
	})

	cancelled := ctx.Err() != nil
	l.sink.PassCompleted(diagnostics.PassCompletedEvent{
		SessionID:  l.cfg.SessionID,
		Companies:  len(ids),
		Succeeded:  int(succeeded.Load()),
		Failed:     int(failed.Load()),
		Cancelled:  cancelled,
		Duration:   duration,
		FinishedAt: finished,
	})

	logger.Info("Enrichment pass completed",
		zap.String("session_id", l.cfg.SessionID),
		zap.Int("companies", len(ids)),
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("failed", failed.Load()),
		zap.Bool("cancelled", cancelled),
		zap.Duration("duration", duration),
	)
}

func (l *Loader) fetchSequential(ctx context.Context, ids []uuid.UUID, record func(bool)) {
	for _, companyID := range ids {
		if ctx.Err() != nil {
			return
		}
		if ok, attempted := l.fetchOne(ctx, companyID); attempted {
			record(ok)
		}
	}
}

func (l *Loader) fetchConcurrent(ctx context.Context, ids []uuid.UUID, record func(bool)) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Concurrency)

	for _, companyID := range ids {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if ok, attempted := l.fetchOne(gctx, companyID); attempted {
				record(ok)
			}
			return nil
		})
	}

	_ = g.Wait()
}

// fetchOne fetches and stores one summary. attempted is false when the pass
// was cancelled before the result could be used; such fetches are not counted.
func (l *Loader) fetchOne(ctx context.Context, companyID uuid.UUID) (ok bool, attempted bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, l.cfg.FetchTimeout)
	defer cancel()

	summary, err := l.fetcher.FetchSummary(fetchCtx, companyID)
	if err == nil && summary == nil {
		err = domainMaintenance.ErrSummaryUnavailable
	}

	if ctx.Err() != nil {
		logger.Debug("Enrichment pass cancelled, dropping summary",
			zap.String("session_id", l.cfg.SessionID),
			zap.String("company_id", companyID.String()),
		)
		return false, false
	}

	if err != nil {
		l.metrics.Update(func(m *PassMetrics) {
			m.FetchesAttempted++
			m.FetchesFailed++
		})

		logger.Warn("Failed to fetch maintenance summary",
			zap.String("session_id", l.cfg.SessionID),
			zap.String("company_id", companyID.String()),
			zap.Bool("timeout", errors.Is(err, context.DeadlineExceeded)),
			zap.Error(err),
		)
		l.sink.FetchFailed(diagnostics.FetchFailedEvent{
			SessionID:  l.cfg.SessionID,
			CompanyID:  companyID.String(),
			Error:      err.Error(),
			OccurredAt: time.Now(),
		})
		return false, true
	}

	l.store(companyID, *summary)
	l.metrics.Update(func(m *PassMetrics) {
		m.FetchesAttempted++
		m.FetchesSucceeded++
	})

	return true, true
}

func (l *Loader) store(companyID uuid.UUID, summary domainMaintenance.Summary) {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	current := *l.summaries.Load()
	next := make(map[uuid.UUID]domainMaintenance.Summary, len(current)+1)
	for id, s := range current {
		next[id] = s
	}
	next[companyID] = summary

	l.summaries.Store(&next)
}

func distinctIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// companySignature is order-insensitive.
func companySignature(ids []uuid.UUID) string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
