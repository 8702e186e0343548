// Package metrics exposes Prometheus collectors for the aggregator.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/webasoo/swagger-aggregate/aggregate"
)

// Metrics holds the collectors and the registry they are registered with.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry  *prometheus.Registry
	resources *prometheus.GaugeVec
	requests  *prometheus.CounterVec
}

// New creates a private registry so several instances can coexist in one process.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resources: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "swagger_aggregate_resources",
			Help: "Documentation resources listed in the UI, by specification version.",
		}, []string{"version"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "swagger_aggregate_document_requests_total",
			Help: "Requests for raw documentation files, by response status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		m.resources,
		m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveResources replaces the per-version resource counts.
func (m *Metrics) ObserveResources(resources []aggregate.Resource) {
	if m == nil {
		return
	}
	m.resources.Reset()
	for _, v := range []aggregate.Version{aggregate.Swagger2, aggregate.OpenAPI3} {
		m.resources.WithLabelValues(string(v)).Set(0)
	}
	for _, r := range resources {
		m.resources.WithLabelValues(string(r.Version)).Inc()
	}
}

// ObserveDocumentRequest counts one document response.
func (m *Metrics) ObserveDocumentRequest(status int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(strconv.Itoa(status)).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
