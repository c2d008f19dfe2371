package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"asset-inventory-dashboard/internal/config"
	"asset-inventory-dashboard/internal/diagnostics"
	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"
	"asset-inventory-dashboard/internal/logger"
	appErrors "asset-inventory-dashboard/pkg/errors"
	"asset-inventory-dashboard/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements dashboard use cases
type Service struct {
	assetRepo domainAsset.Repository
	fetcher   domainMaintenance.SummaryFetcher
	sink      diagnostics.Sink
	cfg       config.DashboardConfig
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewService creates a new dashboard service
func NewService(assetRepo domainAsset.Repository, fetcher domainMaintenance.SummaryFetcher, sink diagnostics.Sink, cfg config.DashboardConfig) *Service {
	if sink == nil {
		sink = diagnostics.NopSink{}
	}
	return &Service{
		assetRepo: assetRepo,
		fetcher:   fetcher,
		sink:      sink,
		cfg:       cfg,
		now:       time.Now,
		sessions:  make(map[uuid.UUID]*Session),
	}
}

// Open loads the asset list, aggregates it and starts the enrichment pass.
func (s *Service) Open(ctx context.Context, req *OpenSessionRequest) (*Session, error) {
	if req == nil {
		req = &OpenSessionRequest{}
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if s.cfg.MaxOpenSessions > 0 && s.OpenSessions() >= s.cfg.MaxOpenSessions {
		return nil, ErrTooManySessions
	}

	filter, err := req.toFilter()
	if err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid company ID", err)
	}

	assets, err := s.loadAssets(ctx, filter)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	loader := NewLoader(s.fetcher, s.sink, LoaderConfig{
		SessionID:    id.String(),
		Concurrency:  s.cfg.FetchConcurrency,
		FetchTimeout: s.cfg.FetchTimeout,
	})

	session := newSession(id, filter, loader, s.cfg.RecentLimit, s.now())
	agg := session.setAssets(assets)

	s.mu.Lock()
	if s.cfg.MaxOpenSessions > 0 && len(s.sessions) >= s.cfg.MaxOpenSessions {
		s.mu.Unlock()
		session.Close()
		return nil, ErrTooManySessions
	}
	s.sessions[id] = session
	s.mu.Unlock()

	session.setDone(loader.Start(session.ctx, agg.CompanyIDs()))

	logger.Info("Dashboard session opened",
		zap.String("session_id", id.String()),
		zap.Int("assets", agg.TotalAssets),
		zap.Int("companies", len(agg.CompanyOrder)),
		zap.String("event", "dashboard_session_opened"),
	)

	return session, nil
}

// Get returns an open session and marks it as recently used.
func (s *Service) Get(sessionID uuid.UUID) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	session.touch(s.now())
	return session, nil
}

// View returns the current view model of an open session.
func (s *Service) View(sessionID uuid.UUID) (*ViewModel, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

// Reload re-reads the asset list of a session and re-runs enrichment only if
// the set of companies changed. It reports whether a new pass was started.
func (s *Service) Reload(ctx context.Context, sessionID uuid.UUID) (*ViewModel, bool, error) {
	session, err := s.Get(sessionID)
	if err != nil {
		return nil, false, err
	}

	assets, err := s.loadAssets(ctx, session.filter)
	if err != nil {
		return nil, false, err
	}

	agg := session.setAssets(assets)
	done, started := session.loader.Refresh(session.ctx, agg.CompanyIDs())
	session.setDone(done)

	logger.Info("Dashboard session reloaded",
		zap.String("session_id", sessionID.String()),
		zap.Int("assets", agg.TotalAssets),
		zap.Bool("enrichment_started", started),
	)

	return session.View(), started, nil
}

// Close tears a session down and cancels its enrichment pass.
func (s *Service) Close(sessionID uuid.UUID) error {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	session.Close()

	logger.Info("Dashboard session closed",
		zap.String("session_id", sessionID.String()),
		zap.String("event", "dashboard_session_closed"),
	)

	return nil
}

// Snapshot opens a session, waits for its enrichment pass (bounded by the
// snapshot timeout) and returns the view. A timed out pass yields a partial view.
func (s *Service) Snapshot(ctx context.Context, req *OpenSessionRequest) (*ViewModel, error) {
	session, err := s.Open(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.Close(session.ID)
	}()

	waitCtx := ctx
	if s.cfg.SnapshotTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.cfg.SnapshotTimeout)
		defer cancel()
	}

	if err := session.Wait(waitCtx); err != nil {
		logger.Warn("Returning partial dashboard snapshot",
			zap.String("session_id", session.ID.String()),
			zap.Error(err),
		)
	}

	view := session.View()
	view.SessionID = nil
	return view, nil
}

// OpenSessions returns the number of open sessions.
func (s *Service) OpenSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// CloseAll tears down every open session.
func (s *Service) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = make(map[uuid.UUID]*Session)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

func (s *Service) loadAssets(ctx context.Context, filter *domainAsset.Filter) ([]*domainAsset.Asset, error) {
	assets, _, err := s.assetRepo.List(ctx, filter)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	return assets, nil
}
