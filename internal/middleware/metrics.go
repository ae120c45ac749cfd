package middleware

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "callguard_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "status"})
	checksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "callguard_checks_total",
		Help: "Total number of phone number checks by resulting risk level",
	}, []string{"risk"})
	reportsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "callguard_reports_total",
		Help: "Total number of user reports submitted",
	})
	aiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "callguard_ai_requests_total",
		Help: "Total number of AI enrichment calls by outcome",
	}, []string{"kind", "outcome"})
)

func init() {
	prometheus.MustRegister(httpRequestsTotal, checksTotal, reportsTotal, aiRequestsTotal)
}

// ObserveCheck records one completed number check.
func ObserveCheck(risk string) {
	checksTotal.WithLabelValues(risk).Inc()
}

// ObserveReport records one submitted report.
func ObserveReport() {
	reportsTotal.Inc()
}

// ObserveAI records one AI call outcome ("ok" or "error") for a request kind
// ("number" or "conversation").
func ObserveAI(kind, outcome string) {
	aiRequestsTotal.WithLabelValues(kind, outcome).Inc()
}

// Metrics tracks request counts per method/status.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)
		httpRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(wrapped.statusCode)).Inc()
	})
}

// MetricsHandler exposes the prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
