// Package metrics exposes Prometheus metrics about simulation runs.
package metrics

import (
	"net/http"

	"cpu-scheduler/internal/schedulers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec

	processes   prometheus.Histogram
	waitingTime *prometheus.HistogramVec
	simulated   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// NewCollector registers the scheduler metrics on reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_runs_total",
			Help: "Total number of completed simulation runs",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_run_failures_total",
			Help: "Total number of failed simulation runs, by reason",
		}, []string{"algorithm", "reason"}),
		processes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scheduler_run_processes",
			Help:    "Number of processes per simulation run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		waitingTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_average_waiting_time",
			Help:    "Average waiting time of a run in simulated time units",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"algorithm"}),
		simulated: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduler_simulated_time",
			Help:    "Final clock value of a run in simulated time units",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"algorithm"}),
		gatherer: reg,
	}

	reg.MustRegister(c.runs, c.failures, c.processes, c.waitingTime, c.simulated)
	return c
}

func (c *Collector) RecordRun(result schedulers.Result) {
	algorithm := string(result.Algorithm)
	c.runs.WithLabelValues(algorithm).Inc()
	c.processes.Observe(float64(len(result.Processes)))
	c.waitingTime.WithLabelValues(algorithm).Observe(result.AverageWaitingTime)
	c.simulated.WithLabelValues(algorithm).Observe(float64(result.Cpu.TotalTime))
}

// Failure reasons used as the reason label of scheduler_run_failures_total.
const (
	ReasonInvalidInput = "invalid_input"
	ReasonInternal     = "internal"
)

func (c *Collector) RecordFailure(algorithm schedulers.Algorithm, reason string) {
	c.failures.WithLabelValues(string(algorithm), reason).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
