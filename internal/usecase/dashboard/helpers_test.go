package dashboard

import (
	"context"
	"fmt"
	"sync"

	"asset-inventory-dashboard/internal/diagnostics"
	domainAsset "asset-inventory-dashboard/internal/domain/asset"
	domainMaintenance "asset-inventory-dashboard/internal/domain/maintenance"

	"github.com/google/uuid"
)

func newAsset(name string, status domainAsset.Status, companyID *uuid.UUID, companyName string) *domainAsset.Asset {
	a := &domainAsset.Asset{
		ID:        uuid.New(),
		Name:      name,
		Tag:       "TAG-" + name,
		Status:    status,
		CompanyID: companyID,
	}
	if companyName != "" {
		a.CompanyName = &companyName
	}
	return a
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

// funcFetcher adapts a function to the SummaryFetcher interface.
type funcFetcher func(ctx context.Context, companyID uuid.UUID) (*domainMaintenance.Summary, error)

func (f funcFetcher) FetchSummary(ctx context.Context, companyID uuid.UUID) (*domainMaintenance.Summary, error) {
	return f(ctx, companyID)
}

// staticFetcher serves fixed summaries and fails for unknown companies.
func staticFetcher(summaries map[uuid.UUID]domainMaintenance.Summary) funcFetcher {
	return func(_ context.Context, companyID uuid.UUID) (*domainMaintenance.Summary, error) {
		s, ok := summaries[companyID]
		if !ok {
			return nil, fmt.Errorf("no summary for %s", companyID)
		}
		return &s, nil
	}
}

type recordingSink struct {
	mu     sync.Mutex
	failed []diagnostics.FetchFailedEvent
	passes []diagnostics.PassCompletedEvent
}

func (s *recordingSink) FetchFailed(event diagnostics.FetchFailedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, event)
}

func (s *recordingSink) PassCompleted(event diagnostics.PassCompletedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passes = append(s.passes, event)
}

func (s *recordingSink) Failed() []diagnostics.FetchFailedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]diagnostics.FetchFailedEvent(nil), s.failed...)
}

func (s *recordingSink) Passes() []diagnostics.PassCompletedEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]diagnostics.PassCompletedEvent(nil), s.passes...)
}
