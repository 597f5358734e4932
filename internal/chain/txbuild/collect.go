package txbuild

import (
	"github.com/Nilismith/hydra/internal/chain/model"
)

// Collect builds CollectComTx: consumes all commit outputs plus the
// thread output, producing a new thread output carrying the union of all
// committed UTxOs as the initial snapshot U0 and moving the Head to Open.
func Collect(ctx model.ChainContext, chainState model.ChainStateAt) (model.Tx, error) {
	threadIn, threadOut, threadDatum, ok := findThreadOutput(ctx, chainState.UTxO)
	if !ok {
		return model.Tx{}, ErrCollect{Reason: "no thread output found"}
	}
	if threadDatum.Stage != model.ThreadStageInitial {
		return model.Tx{}, ErrCollect{Reason: "collect is only legal while the thread is in its Initial stage"}
	}

	commits, err := commitOutputs(ctx, chainState.UTxO)
	if err != nil {
		return model.Tx{}, ErrCollect{Reason: err.Error()}
	}

	inputs := []model.TxIn{threadIn}
	total := threadOut.Value
	for _, in := range sortedTxIns(commits) {
		inputs = append(inputs, in)
		total += chainState.UTxO[in].Value
	}

	newDatum := model.ThreadDatum{
		Stage:              model.ThreadStageOpen,
		HeadId:             threadDatum.HeadId,
		Parties:            threadDatum.Parties,
		ContestationPeriod: threadDatum.ContestationPeriod,
		SnapshotNumber:     0,
	}
	datumBytes, err := model.EncodeThreadDatum(newDatum)
	if err != nil {
		return model.Tx{}, ErrCollect{Reason: "encode thread datum: " + err.Error()}
	}

	return model.Tx{
		Inputs: inputs,
		Outputs: []model.TxOut{{
			Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head),
			Value:   total,
			Datum:   datumBytes,
		}},
	}, nil
}
