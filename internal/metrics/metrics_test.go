package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollector(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())

	assert.NotNil(t, collector.runs)
	assert.NotNil(t, collector.failures)
	assert.NotNil(t, collector.processes)
	assert.NotNil(t, collector.waitingTime)
	assert.NotNil(t, collector.simulated)
}

func TestRecordRun(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())
	result, err := schedulers.ScheduleShortestJobFirst([]core.Process{{ID: 1, BurstTime: 2}, {ID: 2, BurstTime: 1}})
	require.NoError(t, err)

	collector.RecordRun(result)
	collector.RecordRun(result)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.runs.WithLabelValues("sjf")))
	assert.Equal(t, 0.0, testutil.ToFloat64(collector.runs.WithLabelValues("fcfs")))
}

func TestRecordFailure(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())

	collector.RecordFailure(schedulers.RoundRobin, ReasonInvalidInput)
	collector.RecordFailure(schedulers.RoundRobin, ReasonInternal)
	collector.RecordFailure(schedulers.RoundRobin, ReasonInvalidInput)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.failures.WithLabelValues("rr", "invalid_input")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.failures.WithLabelValues("rr", "internal")))
}

func TestHandler(t *testing.T) {
	collector := NewCollector(prometheus.NewRegistry())
	collector.RecordFailure(schedulers.Priority, ReasonInternal)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `scheduler_run_failures_total{algorithm="priority",reason="internal"} 1`)
}
