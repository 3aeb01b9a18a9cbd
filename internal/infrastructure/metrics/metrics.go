// Package metrics expone métricas Prometheus de las operaciones GraphQL.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome de una operación GraphQL.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics agrupa los colectores de la API sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// New crea el registry con las métricas de operaciones y los colectores de Go/proceso.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anylist_graphql_operations_total",
				Help: "Total de operaciones GraphQL por campo raíz y resultado",
			},
			[]string{"operation", "outcome"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "anylist_graphql_operation_duration_seconds",
				Help:    "Duración de las operaciones GraphQL",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"operation"},
		),
	}
	m.registry.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOperation registra una ejecución. operation debe venir de un conjunto acotado
// (ver graphql.Handler); vacío se cuenta como "anonymous".
func (m *Metrics) ObserveOperation(operation string, failed bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	if operation == "" {
		operation = "anonymous"
	}
	outcome := OutcomeOK
	if failed {
		outcome = OutcomeError
	}
	m.operationsTotal.WithLabelValues(operation, outcome).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Registry devuelve el registry subyacente.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler sirve el formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
