package dashboard

import (
	"context"
	"time"

	"asset-inventory-dashboard/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultJanitorInterval = time.Minute

// StartSessionJanitor closes sessions idle for longer than the session TTL
func (s *Service) StartSessionJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Dashboard session janitor started",
		zap.Duration("interval", interval),
		zap.Duration("ttl", s.cfg.SessionTTL),
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Dashboard session janitor stopped")
			return
		case <-ticker.C:
			s.closeIdleSessions()
		}
	}
}

func (s *Service) closeIdleSessions() int {
	cutoff := s.now().Add(-s.cfg.SessionTTL)

	var expired []uuid.UUID
	s.mu.RLock()
	for id, session := range s.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, id)
		}
	}
	s.mu.RUnlock()

	closed := 0
	for _, id := range expired {
		if err := s.Close(id); err == nil {
			closed++
		}
	}

	if closed > 0 {
		logger.Debug("Idle dashboard sessions closed",
			zap.Int("closed", closed),
			zap.Duration("ttl", s.cfg.SessionTTL),
		)
	}

	return closed
}
