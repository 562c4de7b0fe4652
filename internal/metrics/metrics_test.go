package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/metrics"
)

func TestObserveOperation(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)

	m.ObserveOperation("create_wallet", nil)
	m.ObserveOperation("create_wallet", nil)
	m.ObserveOperation("private_key", assert.AnError)
	m.SetAccounts(3)

	count, err := testutil.GatherAndCount(reg, "pouch_wallet_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				key := mf.GetName()
				for _, l := range metric.GetLabel() {
					key += "/" + l.GetValue()
				}
				values[key] = metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[mf.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}

	assert.InDelta(t, 2, values["pouch_wallet_operations_total/create_wallet/success"], 0)
	assert.InDelta(t, 1, values["pouch_wallet_operations_total/private_key/error"], 0)
	assert.InDelta(t, 3, values["pouch_wallet_accounts"], 0)
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)
	require.Error(t, err)
}

func TestNilServiceIsNoop(t *testing.T) {
	var m *metrics.Service

	assert.NotPanics(t, func() {
		m.ObserveOperation("reset_wallet", nil)
		m.SetAccounts(1)
	})
}
