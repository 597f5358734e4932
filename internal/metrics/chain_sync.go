package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Nilismith/hydra/internal/chain/sync"
)

var (
	syncRollForwardTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydra_chain",
		Subsystem: "chain_sync",
		Name:      "roll_forward_total",
		Help:      "Count of processed roll-forward blocks by outcome.",
	}, []string{"status"})

	syncRollForwardDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hydra_chain",
		Subsystem: "chain_sync",
		Name:      "roll_forward_duration_seconds",
		Help:      "Duration of processing one roll-forward block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	syncRollBackwardTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydra_chain",
		Subsystem: "chain_sync",
		Name:      "roll_backward_total",
		Help:      "Count of processed roll-backward points by outcome.",
	}, []string{"status"})

	syncObservationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydra_chain",
		Subsystem: "chain_sync",
		Name:      "observation_total",
		Help:      "Count of Head transitions observed, by transition tag.",
	}, []string{"tag"})

	syncTimeConversionFailureTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hydra_chain",
		Subsystem: "chain_sync",
		Name:      "time_conversion_failure_total",
		Help:      "Count of fatal slot-to-UTC conversion failures during roll-forward.",
	})
)

// ChainSync tracks ChainSyncHandler outcomes, implementing sync.Metrics.
type ChainSync struct{}

var _ sync.Metrics = ChainSync{}

// NewChainSync constructs a ChainSync metrics recorder.
func NewChainSync() ChainSync {
	return ChainSync{}
}

// ObserveRollForward records one roll-forward block's outcome and duration.
func (ChainSync) ObserveRollForward(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncRollForwardTotal.WithLabelValues(status).Inc()
	syncRollForwardDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveRollBackward records one roll-backward call's outcome.
func (ChainSync) ObserveRollBackward(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	syncRollBackwardTotal.WithLabelValues(status).Inc()
}

// ObserveObservation records one classified transaction by its tag.
func (ChainSync) ObserveObservation(tag string) {
	syncObservationTotal.WithLabelValues(tag).Inc()
}

// ObserveTimeConversionFailure records a fatal time-conversion failure.
func (ChainSync) ObserveTimeConversionFailure() {
	syncTimeConversionFailureTotal.Inc()
}
