// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Plan mutation labels.
const (
	PlanCreated         = "create"
	PlanDeleted         = "delete"
	PlanExerciseAdded   = "add_exercise"
	PlanExerciseRemoved = "remove_exercise"
)

// Recorder is what the HTTP layer and the interactors report to.
type Recorder interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	RecordPlanMutation(op string)
	RecordUserRegistered()
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
	planMutations     *prometheus.CounterVec
	userRegistrations prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workout_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "workout_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		planMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "workout_plan_mutations_total",
			Help: "Successful workout plan mutations by operation.",
		}, []string{"op"}),
		userRegistrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "workout_user_registrations_total",
			Help: "Successful user registrations.",
		}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpLatency,
		c.planMutations,
		c.userRegistrations,
	)

	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordPlanMutation(op string) {
	c.planMutations.WithLabelValues(op).Inc()
}

func (c *Collector) RecordUserRegistered() {
	c.userRegistrations.Inc()
}

// Nop discards everything. Useful in tests.
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordPlanMutation(string)                            {}
func (Nop) RecordUserRegistered()                                {}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
