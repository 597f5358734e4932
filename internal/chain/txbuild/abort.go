package txbuild

import (
	"github.com/Nilismith/hydra/internal/chain/model"
)

// Abort builds AbortTx. Only legal while the Head is in Initial:
// refunds every committed UTxO and uncommitted initial bond to their
// owners, and burns the thread token.
func Abort(
	ctx model.ChainContext,
	headState model.HeadState,
	chainState model.ChainStateAt,
	seedTxIn model.TxIn,
) (model.Tx, error) {
	if headState != model.StateInitial {
		return model.Tx{}, ErrAbort{Reason: "abort is only legal from the Initial state, got " + headState.String()}
	}

	threadIn, _, threadDatum, ok := findThreadOutput(ctx, chainState.UTxO)
	if !ok {
		return model.Tx{}, ErrAbort{Reason: "no thread output found"}
	}

	seedHeadId, err := model.NewHeadId(seedTxIn)
	if err != nil {
		return model.Tx{}, ErrAbort{Reason: "derive head id from seed: " + err.Error()}
	}
	if !seedHeadId.Equal(threadDatum.HeadId) {
		return model.Tx{}, ErrInvalidSeed{Seed: seedTxIn.String()}
	}

	initials, err := allInitialOutputs(ctx, chainState.UTxO)
	if err != nil {
		return model.Tx{}, ErrAbort{Reason: err.Error()}
	}
	commits, err := commitOutputs(ctx, chainState.UTxO)
	if err != nil {
		return model.Tx{}, ErrAbort{Reason: err.Error()}
	}

	inputs := []model.TxIn{threadIn}
	outputs := make([]model.TxOut, 0, len(initials)+len(commits))

	for _, in := range sortedTxIns(initials) {
		d := initials[in]
		inputs = append(inputs, in)
		outputs = append(outputs, model.TxOut{
			Address: model.PartyAddress(ctx.NetworkId, d.Party),
			Value:   chainState.UTxO[in].Value,
		})
	}
	for _, in := range sortedTxIns(commits) {
		d := commits[in]
		inputs = append(inputs, in)
		outputs = append(outputs, model.TxOut{
			Address: model.PartyAddress(ctx.NetworkId, d.Party),
			Value:   d.Committed.TotalValue(),
		})
	}

	return model.Tx{
		Inputs:  inputs,
		Outputs: outputs,
		Mint:    threadMint(ctx, threadDatum.HeadId, -1),
	}, nil
}
