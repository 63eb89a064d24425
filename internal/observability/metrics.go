package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	ProviderFetches prometheus.Counter
	ProviderErrors  prometheus.Counter
	SeededRecords   prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		ProviderFetches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_fetches_total",
			Help:      "Outbound fetches issued to the person data provider.",
		}),
		ProviderErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "Failed provider fetches, including malformed payloads.",
		}),
		SeededRecords: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeded_records_total",
			Help:      "Records inserted by the startup seeding policy.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
