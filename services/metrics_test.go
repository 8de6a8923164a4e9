package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	require.NoError(t, m.Register())
	require.NoError(t, m.Register())

	// A second set of collectors with the same names is tolerated
	other := NewMetrics(reg)
	require.NoError(t, other.Register())
}

func TestMetricsObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	require.NoError(t, m.Register())

	m.ObserveRequest("GET", "/api/timestamp/:date_string", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "/api/timestamp/:date_string", 200, 25*time.Millisecond)
	m.ObserveRequest("GET", "/health", 200, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/api/timestamp/:date_string", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestDuration))
}

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordResolution(OutcomeParsed)
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
	})
}

func TestMetricsGather(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	require.NoError(t, m.Register())

	m.RecordResolution(OutcomeInvalid)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "timestamp_api_resolutions_total")
}
