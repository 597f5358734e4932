package txbuild

import (
	"github.com/Nilismith/hydra/internal/chain/model"
)

// Commit builds CommitTx: spends our initial output, locks
// userUtxo's value in a commit output whose datum encodes (party,
// committed). Returns ErrSpendingNodeUtxoForbidden if any input in
// userUtxo is also controlled by the wallet (walletUtxo), which would
// double-count fuel as commit value.
func Commit(
	ctx model.ChainContext,
	headId model.HeadId,
	state model.ChainStateAt,
	userUtxo model.UTxO,
	walletUtxo model.UTxO,
) (model.Tx, error) {
	for _, in := range userUtxo.SortedKeys() {
		if _, owned := walletUtxo[in]; owned {
			return model.Tx{}, ErrSpendingNodeUtxoForbidden{Input: in.String()}
		}
	}

	initialIn, _, ok := initialOutputFor(ctx, state.UTxO, ctx.OwnParty)
	if !ok {
		return model.Tx{}, ErrCommit{Reason: "no initial output found for our party"}
	}

	datumBytes, err := model.EncodeCommitDatum(model.CommitDatum{
		HeadId:    headId,
		Party:     ctx.OwnParty,
		Committed: userUtxo,
	})
	if err != nil {
		return model.Tx{}, ErrCommit{Reason: "encode commit datum: " + err.Error()}
	}

	inputs := append([]model.TxIn{initialIn}, userUtxo.SortedKeys()...)
	commitOut := model.TxOut{
		Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Commit),
		Value:   userUtxo.TotalValue(),
		Datum:   datumBytes,
	}

	return model.Tx{
		Inputs:  inputs,
		Outputs: []model.TxOut{commitOut},
	}, nil
}
