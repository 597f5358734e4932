package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Nilismith/hydra/internal/chain/poster"
)

var (
	posterPostTxTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydra_chain",
		Subsystem: "poster",
		Name:      "post_tx_total",
		Help:      "Count of post_tx calls by request tag and outcome.",
	}, []string{"tag", "status"})

	posterPostTxDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hydra_chain",
		Subsystem: "poster",
		Name:      "post_tx_duration_seconds",
		Help:      "Duration of post_tx, from construction through submission.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"tag", "status"})

	posterDraftCommitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hydra_chain",
		Subsystem: "poster",
		Name:      "draft_commit_total",
		Help:      "Count of draft_commit_tx calls by outcome.",
	}, []string{"status"})
)

// Poster tracks ChainPoster operation outcomes, implementing poster.Metrics.
type Poster struct{}

var _ poster.Metrics = Poster{}

// NewPoster constructs a Poster metrics recorder.
func NewPoster() Poster {
	return Poster{}
}

// ObservePostTx records one post_tx call by request tag, outcome, and duration.
func (Poster) ObservePostTx(tag string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	posterPostTxTotal.WithLabelValues(tag, status).Inc()
	posterPostTxDuration.WithLabelValues(tag, status).Observe(time.Since(started).Seconds())
}

// ObserveDraftCommit records one draft_commit_tx call's outcome.
func (Poster) ObserveDraftCommit(err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	posterDraftCommitTotal.WithLabelValues(status).Inc()
}
