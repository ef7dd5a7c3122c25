package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petadoption_api_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petadoption_api_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	adoptionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petadoption_adoption_request_events_total",
			Help: "Adoption request lifecycle events",
		},
		[]string{"event"},
	)
)

// StatusClass agrupa el código en 2xx/3xx/4xx/5xx.
func StatusClass(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

func RecordHTTPRequest(method, route string, statusCode int, durationSeconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, StatusClass(statusCode)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordAdoptionEvent cuenta submitted/approved/rejected/deleted.
func RecordAdoptionEvent(event string) {
	adoptionEvents.WithLabelValues(event).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
