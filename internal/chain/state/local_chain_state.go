// Package state implements LocalChainState: the single mutable,
// rollback-capable history of ChainStateAt values, single writer, many
// readers, plus its on-disk persistence codec.
package state

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// LocalChainState owns the current ChainStateHistory exclusively; every
// other component holds only read handles or the bounded push/rollback
// operations below.
type LocalChainState struct {
	mu      sync.Mutex
	history model.ChainStateHistory
	logger  *zap.Logger
}

// New builds a LocalChainState seeded with genesis.
func New(genesis model.ChainStateAt, logger *zap.Logger) *LocalChainState {
	return &LocalChainState{
		history: model.NewChainStateHistory(genesis),
		logger:  logger.Named("local_chain_state"),
	}
}

// FromHistory builds a LocalChainState from an already-validated history,
// as produced by recovery from the persisted layout.
func FromHistory(history model.ChainStateHistory, logger *zap.Logger) *LocalChainState {
	return &LocalChainState{history: history, logger: logger.Named("local_chain_state")}
}

// GetLatest returns the current (tail) ChainStateAt.
func (s *LocalChainState) GetLatest() model.ChainStateAt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Current()
}

// PushNew appends a new state, provided its slot is strictly greater than
// the current one. The slot check and the append happen under one lock; a
// caller's earlier GetLatest is a separate lock acquisition, so the two
// together are not one atomic read-modify-write.
func (s *LocalChainState) PushNew(next model.ChainStateAt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.history.WithPushed(next)
	if err != nil {
		return fmt.Errorf("push_new: %w", err)
	}
	s.history = history
	return nil
}

// ErrRollbackPastAnchor is returned when a requested rollback slot predates
// the pinned safety anchor: a hard rollback limit the Head cannot recover
// from.
var ErrRollbackPastAnchor = fmt.Errorf("rollback target predates the pinned safety anchor")

// Rollback drops every entry with slot greater than toSlot and returns the
// resulting current state. Idempotent: calling it twice with the
// same toSlot leaves the same current state. Returns ErrRollbackPastAnchor
// if toSlot predates the pinned anchor.
func (s *LocalChainState) Rollback(toSlot model.ChainSlot) (model.ChainStateAt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, current, hitAnchor := s.history.WithRolledBackTo(toSlot)
	s.history = history
	if hitAnchor {
		s.logger.Error("rollback past safety anchor", zap.Uint64("to_slot", uint64(toSlot)))
		return current, ErrRollbackPastAnchor
	}
	return current, nil
}

// History returns the full current ChainStateHistory.
func (s *LocalChainState) History() model.ChainStateHistory {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history
}
