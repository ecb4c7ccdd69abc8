package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "espaygw",
			Name:      "http_requests_total",
			Help:      "Inbound requests by route and outcome",
		},
		[]string{"route", "status", "method"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "espaygw",
			Name:      "http_request_duration_seconds",
			Help:      "Inbound request latency by route and outcome",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"route", "status"},
	)

	// partner calls are labelled by product and by error kind ("ok" on success)
	PartnerCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "espaygw",
			Name:      "partner_calls_total",
			Help:      "Outbound partner calls by product and outcome",
		},
		[]string{"product", "outcome"},
	)

	PartnerCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "espaygw",
			Name:      "partner_call_duration_seconds",
			Help:      "Outbound partner call latency by product and outcome",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 90},
		},
		[]string{"product", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal, RequestDuration, PartnerCallsTotal, PartnerCallDuration)
}

func IncRequest(route, status, method string) {
	RequestsTotal.WithLabelValues(route, status, method).Inc()
}

func ObserveDuration(route, status string, seconds float64) {
	RequestDuration.WithLabelValues(route, status).Observe(seconds)
}

func ObservePartnerCall(product, outcome string, seconds float64) {
	PartnerCallsTotal.WithLabelValues(product, outcome).Inc()
	PartnerCallDuration.WithLabelValues(product, outcome).Observe(seconds)
}
