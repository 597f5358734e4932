package txbuild

import (
	"time"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// Close builds CloseTx: only legal while the thread is Open.
// The validity interval is [currentSlot, upperSlot] and the datum records
// snapshot.Number plus contestationDeadline = upperTime + cp.
func Close(
	ctx model.ChainContext,
	chainState model.ChainStateAt,
	params model.HeadParameters,
	snapshot model.Snapshot,
	currentSlot model.Slot,
	upperSlot model.Slot,
	upperTime time.Time,
) (model.Tx, error) {
	threadIn, threadOut, threadDatum, ok := findThreadOutput(ctx, chainState.UTxO)
	if !ok {
		return model.Tx{}, ErrClose{Reason: "no thread output found"}
	}
	if threadDatum.Stage != model.ThreadStageOpen {
		return model.Tx{}, ErrClose{Reason: "close is only legal while the thread is Open"}
	}

	deadline := upperTime.Add(params.ContestationPeriod.Duration())
	newDatum := model.ThreadDatum{
		Stage:                model.ThreadStageClosed,
		HeadId:               threadDatum.HeadId,
		Parties:              params.Parties,
		ContestationPeriod:   params.ContestationPeriod,
		SnapshotNumber:       snapshot.Number,
		ContestationDeadline: deadline,
	}
	datumBytes, err := model.EncodeThreadDatum(newDatum)
	if err != nil {
		return model.Tx{}, ErrClose{Reason: "encode thread datum: " + err.Error()}
	}

	start, end := currentSlot, upperSlot
	return model.Tx{
		Inputs: []model.TxIn{threadIn},
		Outputs: []model.TxOut{{
			Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head),
			Value:   threadOut.Value,
			Datum:   datumBytes,
		}},
		ValidityStart: &start,
		ValidityEnd:   &end,
	}, nil
}
