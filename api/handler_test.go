package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/responses"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{"jobs": [
	{"process_id": 1, "arrival_time": 0, "burst_time": 5, "priority": 1},
	{"process_id": 2, "arrival_time": 1, "burst_time": 3, "priority": 5},
	{"process_id": 3, "arrival_time": 2, "burst_time": 8, "priority": 3}
]}`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.SchedulerConfig{RoundRobinTimeQuantum: 2, RoundRobinSeed: "first"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	collector := metrics.NewCollector(prometheus.NewRegistry())

	handler, err := NewSchedulerHandlerImpl(cfg, collector, logger)
	require.NoError(t, err)
	return NewApp(handler, collector)
}

func post(t *testing.T, app *fiber.App, path, body string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestFirstComeFirstServeEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := post(t, app, "/api/v1/fcfs", sampleBody)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "fcfs", out.Algorithm)
	assert.InDelta(t, 10.0/3.0, out.AverageWaitingTime, 1e-9)
	assert.Equal(t, 16, out.TotalTime)
	assert.Len(t, out.Timeline, 3)
}

func TestRoundRobinEndpointUsesRequestQuantum(t *testing.T) {
	app := newTestApp(t)

	body := `{"jobs": [{"process_id": 1, "burst_time": 4}, {"process_id": 2, "burst_time": 3}], "time_quantum": 3}`
	resp, data := post(t, app, "/api/v1/rr", body)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(data))

	var out responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 3, out.TimeQuantum)
	assert.Len(t, out.Timeline, 3)
}

func TestPriorityEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, data := post(t, app, "/api/v1/priority", `{"jobs": [
		{"process_id": 1, "burst_time": 5, "priority": 1},
		{"process_id": 2, "burst_time": 3, "priority": 5}
	]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 2, out.Timeline[0].ProcessId)
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, data := post(t, app, "/api/v1/all", sampleBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []responses.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out, 4)
	assert.Equal(t, "sjf", out[1].Algorithm)
}

func TestInvalidRequests(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name, path, body string
	}{
		{"malformed body", "/api/v1/fcfs", `{"jobs": [`},
		{"empty set", "/api/v1/sjf", `{"jobs": []}`},
		{"zero burst", "/api/v1/fcfs", `{"jobs": [{"process_id": 1, "burst_time": 0}]}`},
		{"negative quantum", "/api/v1/rr", `{"jobs": [{"process_id": 1, "burst_time": 2}], "time_quantum": -1}`},
		{"clock overflow", "/api/v1/all", `{"jobs": [{"process_id": 1, "arrival_time": 9223372036854775806, "burst_time": 5}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, data := post(t, app, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var out map[string]string
			require.NoError(t, json.Unmarshal(data, &out))
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestRejectedRequestsAreCountedAsInvalidInput(t *testing.T) {
	app := newTestApp(t)
	post(t, app, "/api/v1/fcfs", `{"jobs": [{"process_id": 1, "burst_time": 0}]}`)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `scheduler_run_failures_total{algorithm="fcfs",reason="invalid_input"} 1`)
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)
	post(t, app, "/api/v1/sjf", sampleBody)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), `scheduler_runs_total{algorithm="sjf"} 1`)
}

func TestNewSchedulerHandlerRejectsUnknownSeed(t *testing.T) {
	cfg := &config.SchedulerConfig{RoundRobinTimeQuantum: 2, RoundRobinSeed: "lifo"}

	_, err := NewSchedulerHandlerImpl(cfg, nil, slog.Default())
	assert.Error(t, err)
}
