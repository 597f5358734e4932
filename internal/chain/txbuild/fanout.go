package txbuild

import (
	"github.com/Nilismith/hydra/internal/chain/model"
)

// Fanout builds FanoutTx: only legal at or after deadlineSlot,
// distributes finalUtxo (U0 composed with the snapshot diff) to original
// addresses and burns the thread token.
func Fanout(
	ctx model.ChainContext,
	chainState model.ChainStateAt,
	finalUtxo model.UTxO,
	deadlineSlot model.Slot,
) (model.Tx, error) {
	threadIn, _, threadDatum, ok := findThreadOutput(ctx, chainState.UTxO)
	if !ok {
		return model.Tx{}, ErrFanout{Reason: "no thread output found"}
	}
	if threadDatum.Stage != model.ThreadStageClosed {
		return model.Tx{}, ErrFanout{Reason: "fanout is only legal while the thread is Closed"}
	}

	outputs := make([]model.TxOut, 0, len(finalUtxo))
	for _, in := range finalUtxo.SortedKeys() {
		outputs = append(outputs, finalUtxo[in])
	}

	start := deadlineSlot
	return model.Tx{
		Inputs:        []model.TxIn{threadIn},
		Outputs:       outputs,
		Mint:          threadMint(ctx, threadDatum.HeadId, -1),
		ValidityStart: &start,
	}, nil
}
