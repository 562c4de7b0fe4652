// Package metrics exposes prometheus instrumentation of wallet operations.
// A nil *Service is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pouch"

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

type Service struct {
	operations *prometheus.CounterVec
	accounts   prometheus.Gauge
}

// New registers the wallet collectors on reg.
func New(reg prometheus.Registerer) (*Service, error) {
	s := &Service{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "operations_total",
			Help:      "Number of wallet operations by outcome.",
		}, []string{"operation", "result"}),
		accounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "accounts",
			Help:      "Number of accounts in the loaded wallet.",
		}),
	}

	for _, c := range []prometheus.Collector{s.operations, s.accounts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// ObserveOperation counts one finished operation.
func (s *Service) ObserveOperation(operation string, err error) {
	if s == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultError
	}

	s.operations.WithLabelValues(operation, result).Inc()
}

// SetAccounts records the current account count.
func (s *Service) SetAccounts(n int) {
	if s == nil {
		return
	}

	s.accounts.Set(float64(n))
}
