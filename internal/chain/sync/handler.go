package sync

import (
	"context"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"github.com/Nilismith/hydra/internal/chain/chaintime"
	"github.com/Nilismith/hydra/internal/chain/event"
	"github.com/Nilismith/hydra/internal/chain/model"
	"github.com/Nilismith/hydra/internal/chain/observer"
	"github.com/Nilismith/hydra/internal/chain/state"
)

// Handler implements the two ChainSyncHandler callbacks. A single
// chain-sync driver thread is expected to invoke OnRollForward/
// OnRollBackward serially; Handler itself holds no state beyond its
// collaborators, all of which are already safe for that single-writer
// discipline.
type Handler struct {
	state      *state.LocalChainState
	observer   *observer.Observer
	wallet     Wallet
	queue      *event.Queue
	timeHandle chaintime.Provider

	logger  *zap.Logger
	metrics Metrics
}

// New builds a Handler wired to one Head's LocalChainState and Observer.
// wallet may be nil if this process does not run a wallet (e.g. a
// read-only follower).
func New(
	st *state.LocalChainState,
	obs *observer.Observer,
	wallet Wallet,
	queue *event.Queue,
	timeHandle chaintime.Provider,
	metrics Metrics,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		state:      st,
		observer:   obs,
		wallet:     wallet,
		queue:      queue,
		timeHandle: timeHandle,
		logger:     logger.Named("chain_sync"),
		metrics:    metrics,
	}
}

// OnRollForward processes one new block in chain order:
//  1. logs the point and transaction ids;
//  2. converts the block's slot to UTC via a fresh TimeHandle, raising a
//     fatal TimeConversionException on failure;
//  3. emits a Tick event;
//  4. observes each transaction in order, pushing any resulting state
//     transition and emitting an Observation event for it (see observeOne);
//  5. applies the block to the wallet's UTxO snapshot, if one is wired.
func (h *Handler) OnRollForward(ctx context.Context, header model.ChainPoint, txs []model.Tx) (err error) {
	started := time.Now()
	defer func() { h.metrics.ObserveRollForward(err, started) }()

	txIds := make([]string, 0, len(txs))
	for _, tx := range txs {
		id, _ := model.ComputeTxId(tx)
		txIds = append(txIds, hex.EncodeToString(id[:]))
	}
	h.logger.Info("roll forward",
		zap.Uint64("slot", uint64(header.Slot)),
		zap.String("block_hash", hex.EncodeToString(header.BlockHash[:])),
		zap.Int("tx_count", len(txs)),
		zap.Strings("tx_ids", txIds),
	)

	handle, handleErr := h.timeHandle(ctx)
	if handleErr != nil {
		h.metrics.ObserveTimeConversionFailure()
		h.logger.Error("acquire time handle for roll forward", zap.Error(handleErr), zap.Uint64("slot", uint64(header.Slot)))
		err = TimeConversionException{Slot: header.Slot, Reason: handleErr.Error()}
		return err
	}

	chainTime, convErr := handle.SlotToUTC(header.Slot)
	if convErr != nil {
		h.metrics.ObserveTimeConversionFailure()
		h.logger.Error("convert roll forward slot to utc", zap.Error(convErr), zap.Uint64("slot", uint64(header.Slot)))
		err = TimeConversionException{Slot: header.Slot, Reason: convErr.Error()}
		return err
	}

	h.queue.Push(ctx, event.ChainEvent{
		Tag:       event.EventTick,
		ChainTime: chainTime,
		ChainSlot: header.Slot,
	})

	for _, tx := range txs {
		h.observeOne(ctx, header, tx)
	}

	if h.wallet != nil {
		h.wallet.ApplyBlock(txs)
	}

	return nil
}

// observeOne classifies a single transaction against the current state
// and, if it advances the Head lifecycle, pushes the resulting state and
// emits the corresponding Observation event. The read (GetLatest) and the
// push (PushNew) take LocalChainState's lock separately, so read-observe-push
// is not one atomic step; PushNew still rejects a state whose slot does not
// advance the history.
func (h *Handler) observeOne(ctx context.Context, header model.ChainPoint, tx model.Tx) {
	current := h.state.GetLatest()
	newUtxo, obs, matched := h.observer.ObserveTx(current.UTxO, tx)
	if !matched {
		return
	}
	h.metrics.ObserveObservation(obs.Tag.String())

	point := header
	newState := model.ChainStateAt{UTxO: newUtxo, RecordedAt: &point}
	if err := h.state.PushNew(newState); err != nil {
		// An observed transition whose slot does not advance the history
		// is logged and dropped rather than raised: it does not mutate
		// chain state and the node never sees it.
		h.logger.Error("push observed state", zap.Error(err), zap.String("tag", obs.Tag.String()))
		return
	}

	onChainTx, ok := observer.ConvertObservation(obs)
	if !ok {
		return
	}
	h.queue.Push(ctx, event.ChainEvent{
		Tag:        event.EventObservation,
		ObservedTx: onChainTx,
		NewState:   newState,
	})
}

// OnRollBackward processes a rollback notification: logs the
// target point, atomically rolls LocalChainState back to it, and emits a
// Rollback event carrying the resulting state. A rollback past the
// pinned safety anchor is logged and returned as a fatal error; the
// Rollback event is still emitted with the anchor state so any observer
// that only watches events stays consistent.
func (h *Handler) OnRollBackward(ctx context.Context, point model.ChainPoint) error {
	h.logger.Info("roll backward", zap.Uint64("slot", uint64(point.Slot)))

	rolledBackTo, err := h.state.Rollback(point.Slot)
	h.metrics.ObserveRollBackward(err)

	h.queue.Push(ctx, event.ChainEvent{
		Tag:          event.EventRollback,
		RolledBackTo: rolledBackTo,
	})

	if err != nil {
		h.logger.Error("rollback past safety anchor", zap.Error(err), zap.Uint64("to_slot", uint64(point.Slot)))
		return err
	}
	return nil
}
