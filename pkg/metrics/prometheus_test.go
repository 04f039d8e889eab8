package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsRegistersOnRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("flightcal", reg)

	m.EmailsParsed.Inc()
	m.ParseFailures.WithLabelValues("EmptyInput").Inc()
	m.CalendarArtifacts.WithLabelValues("ics").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EmailsParsed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ParseFailures.WithLabelValues("EmptyInput")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CalendarArtifacts.WithLabelValues("ics")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "flightcal_emails_parsed_total")
	assert.Contains(t, names, "flightcal_parse_failures_total")
}

func TestNewMetricsSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("flightcal", prometheus.NewRegistry())
		NewMetrics("flightcal", prometheus.NewRegistry())
	})
}
