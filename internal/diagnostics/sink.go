package diagnostics

import (
	"time"
)

// FetchFailedEvent reports a maintenance summary fetch that did not succeed.
type FetchFailedEvent struct {
	SessionID  string    `json:"session_id,omitempty"`
	CompanyID  string    `json:"company_id"`
	Error      string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PassCompletedEvent reports the outcome of one enrichment pass.
type PassCompletedEvent struct {
	SessionID  string        `json:"session_id,omitempty"`
	Companies  int           `json:"companies"`
	Succeeded  int           `json:"succeeded"`
	Failed     int           `json:"failed"`
	Cancelled  bool          `json:"cancelled"`
	Duration   time.Duration `json:"duration_ns"`
	FinishedAt time.Time     `json:"finished_at"`
}

// Sink receives enrichment diagnostics. Implementations must not block the caller.
type Sink interface {
	FetchFailed(event FetchFailedEvent)
	PassCompleted(event PassCompletedEvent)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) FetchFailed(FetchFailedEvent)     {}
func (NopSink) PassCompleted(PassCompletedEvent) {}
