// Package sync implements the ChainSyncHandler: the two callbacks
// invoked by the external chain-sync client on roll-forward and
// roll-backward, which update LocalChainState and emit Tick/Observation/
// Rollback events upward in strict chain order.
package sync

import (
	"fmt"
	"time"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// Metrics records ChainSyncHandler operation outcomes.
type Metrics interface {
	ObserveRollForward(err error, started time.Time)
	ObserveRollBackward(err error)
	ObserveObservation(tag string)
	ObserveTimeConversionFailure()
}

// Wallet is the subset of TinyWallet the handler needs: applying every
// roll-forward block's spent/produced outputs to the wallet's UTxO
// snapshot.
type Wallet interface {
	ApplyBlock(txs []model.Tx)
}

// TimeConversionException is raised when converting a roll-forward
// block's slot to UTC fails: fatal for the block being processed. The
// supervisor is expected to restart the chain-sync client with a fresh
// era history on seeing this error.
type TimeConversionException struct {
	Slot   model.Slot
	Reason string
}

func (e TimeConversionException) Error() string {
	return fmt.Sprintf("time conversion failed for slot %d: %s", e.Slot, e.Reason)
}
