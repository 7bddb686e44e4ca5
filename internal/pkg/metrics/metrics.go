package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// UpstreamMetrics tracks calls made to the clinic management system.
type UpstreamMetrics struct {
	callsTotal    *prometheus.CounterVec
	callLatency   *prometheus.HistogramVec
	tokenRefresh  *prometheus.CounterVec
	droppedRecord *prometheus.CounterVec
}

func NewUpstreamMetrics(reg prometheus.Registerer) *UpstreamMetrics {
	m := &UpstreamMetrics{
		callsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic_bridge",
			Subsystem: "upstream",
			Name:      "calls_total",
			Help:      "Total calls made to the upstream clinic system",
		}, []string{"endpoint", "outcome"}),
		callLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic_bridge",
			Subsystem: "upstream",
			Name:      "call_duration_seconds",
			Help:      "Latency of upstream clinic system calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		tokenRefresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic_bridge",
			Subsystem: "upstream",
			Name:      "token_refresh_total",
			Help:      "Upstream access token refreshes",
		}, []string{"outcome"}),
		droppedRecord: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic_bridge",
			Subsystem: "mapping",
			Name:      "dropped_records_total",
			Help:      "Upstream records dropped because they could not be mapped",
		}, []string{"resource"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.callsTotal, m.callLatency, m.tokenRefresh, m.droppedRecord)
	return m
}

func (m *UpstreamMetrics) ObserveCall(endpoint, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.callsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.callLatency.WithLabelValues(endpoint).Observe(seconds)
}

func (m *UpstreamMetrics) ObserveTokenRefresh(success bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.tokenRefresh.WithLabelValues(outcome).Inc()
}

func (m *UpstreamMetrics) ObserveDroppedRecord(resource string) {
	if m == nil {
		return
	}
	m.droppedRecord.WithLabelValues(resource).Inc()
}

// HTTPMetrics tracks inbound requests per matched route.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic_bridge",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total inbound HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic_bridge",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of inbound HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

func (m *HTTPMetrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}
