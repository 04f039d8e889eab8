package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	EmailsParsed      prometheus.Counter
	ParseFailures     *prometheus.CounterVec
	ParseDuration     prometheus.Histogram
	EmailsIngested    prometheus.Counter
	CalendarArtifacts *prometheus.CounterVec
	NotificationsSent prometheus.Counter
	ErrorsCount       *prometheus.CounterVec
}

// NewMetrics registers the service metrics on reg. A nil reg uses the default registerer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		EmailsParsed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_parsed_total",
			Help:      "The total number of emails successfully parsed into flights",
		}),
		ParseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "The total number of emails that could not be parsed",
		}, []string{"kind"}),
		ParseDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "email_parse_duration_seconds",
			Help:      "Time taken to extract a flight from an email",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 4, 8),
		}),
		EmailsIngested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_ingested_total",
			Help:      "The total number of emails pulled from Gmail",
		}),
		CalendarArtifacts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_artifacts_total",
			Help:      "The total number of calendar links and files generated",
		}, []string{"kind"}),
		NotificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "The total number of flight notifications delivered",
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
