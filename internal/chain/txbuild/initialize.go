package txbuild

import (
	"fmt"

	"github.com/Nilismith/hydra/internal/chain/config"
	"github.com/Nilismith/hydra/internal/chain/model"
)

// Initialize builds InitTx: creates the Head thread output carrying
// (parties, cp, headId = hash(seedInput)) plus one initial output per
// party, consuming seedInput. partyKeys supplies each party's verification
// key explicitly rather than reading it from ctx.
func Initialize(
	ctx model.ChainContext,
	params model.HeadParameters,
	seedInput model.TxIn,
	partyKeys []model.PartyKeys,
) (model.Tx, error) {
	if err := params.Validate(); err != nil {
		return model.Tx{}, fmt.Errorf("initialize: invalid head parameters: %w", err)
	}
	if len(partyKeys) != len(params.Parties) {
		return model.Tx{}, fmt.Errorf(
			"initialize: %d party keys supplied for %d parties", len(partyKeys), len(params.Parties),
		)
	}

	headId, err := model.NewHeadId(seedInput)
	if err != nil {
		return model.Tx{}, fmt.Errorf("initialize: derive head id: %w", err)
	}

	threadDatum := model.ThreadDatum{
		Stage:              model.ThreadStageInitial,
		HeadId:             headId,
		Parties:            params.Parties,
		ContestationPeriod: params.ContestationPeriod,
		SnapshotNumber:     0,
	}
	threadDatumBytes, err := model.EncodeThreadDatum(threadDatum)
	if err != nil {
		return model.Tx{}, fmt.Errorf("initialize: encode thread datum: %w", err)
	}

	outputs := make([]model.TxOut, 0, len(partyKeys)+1)
	outputs = append(outputs, model.TxOut{
		Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head),
		Value:   config.MinUTxOValue,
		Datum:   threadDatumBytes,
	})

	for _, pk := range partyKeys {
		initialDatumBytes, err := model.EncodeInitialDatum(model.InitialDatum{HeadId: headId, Party: pk.Party})
		if err != nil {
			return model.Tx{}, fmt.Errorf("initialize: encode initial datum for party: %w", err)
		}
		outputs = append(outputs, model.TxOut{
			Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Initial),
			Value:   config.MinUTxOValue,
			Datum:   initialDatumBytes,
		})
	}

	return model.Tx{
		Inputs:  []model.TxIn{seedInput},
		Outputs: outputs,
		Mint:    threadMint(ctx, headId, 1),
	}, nil
}
