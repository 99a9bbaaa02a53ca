package collection

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opList      = "list"
	opGet       = "get"
	opCreate    = "create"
	opUpdate    = "update"
	opUpsert    = "upsert"
	opDelete    = "delete"
	opDeleteAll = "delete_all"
)

const (
	resultOK          = "ok"
	resultNotFound    = "not_found"
	resultInvalid     = "invalid"
	resultUnavailable = "unavailable"
	resultError       = "error"
)

// Metrics records collection operation counts and latencies.
type Metrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "agrostore",
				Subsystem: "collection",
				Name:      "operations_total",
				Help:      "Collection operations by entity, operation and result.",
			},
			[]string{"entity", "operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "agrostore",
				Subsystem: "collection",
				Name:      "operation_duration_seconds",
				Help:      "Collection operation latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"entity", "operation"},
		),
	}

	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(entity, operation string, elapsed time.Duration, err error) {
	m.operations.WithLabelValues(entity, operation, result(err)).Inc()
	m.duration.WithLabelValues(entity, operation).Observe(elapsed.Seconds())
}

func result(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, ErrNotFound):
		return resultNotFound
	case errors.Is(err, ErrValidation):
		return resultInvalid
	case errors.Is(err, ErrBackendUnavailable):
		return resultUnavailable
	}
	return resultError
}
