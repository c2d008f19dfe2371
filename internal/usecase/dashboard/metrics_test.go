package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsTrackerUpdate(t *testing.T) {
	tracker := NewMetricsTracker()

	tracker.Update(func(m *PassMetrics) { m.FetchesAttempted++ })
	tracker.Update(func(m *PassMetrics) {
		m.FetchesAttempted++
		m.FetchesFailed++
	})
	tracker.Update(nil)

	snapshot := tracker.Snapshot()
	assert.Equal(t, int64(2), snapshot.FetchesAttempted)
	assert.Equal(t, int64(1), snapshot.FetchesFailed)

	snapshot.Passes = 10
	assert.Zero(t, tracker.Snapshot().Passes, "snapshot is a copy")
}
