package state

import (
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/Nilismith/hydra/internal/chain/config"
	"github.com/Nilismith/hydra/internal/chain/model"
	"github.com/Nilismith/hydra/pkg/batcher"
)

// Persister appends ChainStateAt records to an underlying writer in
// rate-limited batches: pushed states are buffered and flushed by size
// or interval rather than fsync'd one at a time.
type Persister struct {
	mu sync.Mutex
	w  io.Writer

	logger  *zap.Logger
	batcher *batcher.Batcher[model.ChainStateAt]
}

// NewPersister wraps w (an append-only file, typically) with a batched
// writer using the defaults in package config.
func NewPersister(w io.Writer, logger *zap.Logger) *Persister {
	p := &Persister{w: w, logger: logger.Named("persister")}
	p.batcher = batcher.New(
		p.logger,
		p.flush,
		config.PersistenceBatchSize,
		config.PersistenceFlushInterval,
		config.PersistenceFlushRate,
	)
	return p
}

// Start begins the background flush loop.
func (p *Persister) Start(ctx context.Context) {
	p.batcher.Start(ctx)
}

// Stop drains any buffered records and stops the background flush loop.
func (p *Persister) Stop() {
	p.batcher.Stop()
}

// Append queues s to be written to the underlying writer.
func (p *Persister) Append(ctx context.Context, s model.ChainStateAt) error {
	return p.batcher.Add(ctx, s)
}

func (p *Persister) flush(_ context.Context, batch []model.ChainStateAt) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range batch {
		if err := EncodeRecord(p.w, s); err != nil {
			return fmt.Errorf("persist chain state record: %w", err)
		}
	}
	return nil
}
