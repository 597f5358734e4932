package txbuild

import (
	"time"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// Contest builds ContestTx: only legal with a snapshot number
// strictly greater than the currently closed one; extends the
// contestation deadline by cp from upperTime.
func Contest(
	ctx model.ChainContext,
	chainState model.ChainStateAt,
	snapshot model.Snapshot,
	upperSlot model.Slot,
	upperTime time.Time,
) (model.Tx, error) {
	threadIn, threadOut, threadDatum, ok := findThreadOutput(ctx, chainState.UTxO)
	if !ok {
		return model.Tx{}, ErrContest{Reason: "no thread output found"}
	}
	if threadDatum.Stage != model.ThreadStageClosed {
		return model.Tx{}, ErrContest{Reason: "contest is only legal while the thread is Closed"}
	}
	if snapshot.Number <= threadDatum.SnapshotNumber {
		return model.Tx{}, ErrContest{Reason: "contesting snapshot must supersede the currently closed one"}
	}

	deadline := upperTime.Add(threadDatum.ContestationPeriod.Duration())
	newDatum := threadDatum
	newDatum.SnapshotNumber = snapshot.Number
	newDatum.ContestationDeadline = deadline

	datumBytes, err := model.EncodeThreadDatum(newDatum)
	if err != nil {
		return model.Tx{}, ErrContest{Reason: "encode thread datum: " + err.Error()}
	}

	end := upperSlot
	return model.Tx{
		Inputs: []model.TxIn{threadIn},
		Outputs: []model.TxOut{{
			Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head),
			Value:   threadOut.Value,
			Datum:   datumBytes,
		}},
		ValidityEnd: &end,
	}, nil
}
