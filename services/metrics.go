package services

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resolution outcomes recorded by the resolver
const (
	OutcomeNow     = "now"
	OutcomeParsed  = "parsed"
	OutcomeInvalid = "invalid"
)

// Metrics holds the Prometheus collectors for the timestamp API.
type Metrics struct {
	resolutionsTotal *prometheus.CounterVec
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec

	registerer prometheus.Registerer
	mu         sync.Mutex
	registered bool
}

// NewMetrics creates the collectors. Nothing is registered until Register is called.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timestamp_api",
				Name:      "resolutions_total",
				Help:      "Total number of date strings resolved, by outcome.",
			},
			[]string{"outcome"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timestamp_api",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "timestamp_api",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		registerer: registerer,
	}
}

// Register registers all collectors. Calling it more than once is harmless.
func (m *Metrics) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}

	collectors := []prometheus.Collector{
		m.resolutionsTotal,
		m.requestsTotal,
		m.requestDuration,
	}
	for _, c := range collectors {
		if err := m.registerer.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}

	m.registered = true
	return nil
}

// RecordResolution counts one resolution with the given outcome
func (m *Metrics) RecordResolution(outcome string) {
	if m == nil {
		return
	}
	m.resolutionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records a served HTTP request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
