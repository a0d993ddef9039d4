package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DepositsInitiated counts successfully provisioned deposit sessions.
	DepositsInitiated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "statechain_deposits_initiated_total",
		Help: "Number of deposit sessions provisioned.",
	})

	// DepositFailures counts failed deposit initiations by failure kind.
	DepositFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "statechain_deposit_failures_total",
		Help: "Number of failed deposit initiations by kind.",
	}, []string{"kind"})
)
