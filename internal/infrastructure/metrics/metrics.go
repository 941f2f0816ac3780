// Package metrics agrupa los colectores Prometheus del servicio.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Resultados posibles de una llamada al servicio remoto.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeMalformed   = "malformed"
)

// Metrics colectores de la aplicación registrados en un registry propio.
type Metrics struct {
	Registry *prometheus.Registry

	customersCreated prometheus.Counter
	profileBatchSize prometheus.Histogram
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	graphqlRequests  *prometheus.CounterVec
}

// New crea y registra los colectores (incluye métricas de Go y del proceso).
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		customersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crm_customers_created_total",
			Help: "Clientes creados mediante addCustomer.",
		}),
		profileBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "crm_profile_batch_size",
			Help:    "Cantidad de clientes por resolución en lote de profile.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_upstream_requests_total",
			Help: "Llamadas al servicio GraphQL de países por operación y resultado.",
		}, []string{"operation", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crm_upstream_request_duration_seconds",
			Help:    "Latencia de las llamadas al servicio GraphQL de países.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		graphqlRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crm_graphql_requests_total",
			Help: "Peticiones GraphQL atendidas, por estado (ok, error).",
		}, []string{"status"}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.customersCreated,
		m.profileBatchSize,
		m.upstreamRequests,
		m.upstreamDuration,
		m.graphqlRequests,
	)
	return m
}

// CustomerCreated incrementa el contador de altas.
func (m *Metrics) CustomerCreated() { m.customersCreated.Inc() }

// ProfileBatch registra el tamaño de una resolución en lote.
func (m *Metrics) ProfileBatch(size int) { m.profileBatchSize.Observe(float64(size)) }

// Upstream registra una llamada al servicio remoto.
func (m *Metrics) Upstream(operation, outcome string, elapsed time.Duration) {
	m.upstreamRequests.WithLabelValues(operation, outcome).Inc()
	m.upstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// GraphQLRequest registra una petición GraphQL; hasErrors indica si la respuesta llevó errores.
func (m *Metrics) GraphQLRequest(hasErrors bool) {
	status := "ok"
	if hasErrors {
		status = "error"
	}
	m.graphqlRequests.WithLabelValues(status).Inc()
}
