package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Nilismith/hydra/internal/chain/wallet"
)

var (
	walletCoverFeeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydra_chain",
		Subsystem: "wallet",
		Name:      "cover_fee_total",
		Help:      "Count of cover_fee calls by outcome.",
	}, []string{"status"})

	walletCoverFeeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hydra_chain",
		Subsystem: "wallet",
		Name:      "cover_fee_duration_seconds",
		Help:      "Duration of balancing a partial transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	walletSignDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hydra_chain",
		Subsystem: "wallet",
		Name:      "sign_duration_seconds",
		Help:      "Duration of attaching our witness to a transaction.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Wallet tracks TinyWallet operation outcomes, implementing wallet.Metrics.
type Wallet struct{}

var _ wallet.Metrics = Wallet{}

// NewWallet constructs a Wallet metrics recorder.
func NewWallet() Wallet {
	return Wallet{}
}

// ObserveCoverFee records a cover_fee call's outcome and duration.
func (Wallet) ObserveCoverFee(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	walletCoverFeeTotal.WithLabelValues(status).Inc()
	walletCoverFeeDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// ObserveSign records a sign call's duration. Signing never fails.
func (Wallet) ObserveSign(started time.Time) {
	walletSignDuration.Observe(time.Since(started).Seconds())
}
