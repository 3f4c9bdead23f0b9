package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Deprecation metrics
	DeprecationWarnings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgkit_deprecation_warnings_total",
			Help: "Total number of deprecation warnings emitted",
		},
		[]string{"category"},
	)

	// Bot API metrics
	APICalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tgkit_api_calls_total",
			Help: "Total number of Bot API calls",
		},
		[]string{"method", "status"}, // status: success|error
	)
)

// Init registers all metrics with Prometheus
func Init() {
	prometheus.MustRegister(DeprecationWarnings)
	prometheus.MustRegister(APICalls)
}

// Handler returns Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordDeprecationWarning records one emitted deprecation warning
func RecordDeprecationWarning(category string) {
	DeprecationWarnings.WithLabelValues(category).Inc()
}

// RecordAPICall records a Bot API call
func RecordAPICall(method string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	APICalls.WithLabelValues(method, status).Inc()
}
