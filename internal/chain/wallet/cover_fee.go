package wallet

import (
	"context"
	"sort"
	"time"

	"github.com/Nilismith/hydra/internal/chain/config"
	"github.com/Nilismith/hydra/internal/chain/model"
)

// estimateFee applies the linear fee model to a draft, pricing both
// serialized size and any declared script execution budget.
func estimateFee(tx model.Tx) uint64 {
	size := uint64(len(model.CanonicalBytes(tx))) + witnessSizeEstimate(len(tx.Inputs))
	fee := config.FeeConstant + config.FeePerByte*size
	fee += config.FeePerMemory * tx.ExecutionUnits.Memory
	fee += config.FeePerStep * tx.ExecutionUnits.Steps
	return fee
}

// witnessSizeEstimate accounts for the witnesses the balanced transaction
// will eventually carry (one per distinct spending key), which are not yet
// attached on the draft passed to CoverFee.
func witnessSizeEstimate(inputCount int) uint64 {
	const perWitness = 102 // ed25519 pubkey + signature + cbor framing, rounded
	if inputCount == 0 {
		return perWitness
	}
	return uint64(inputCount) * perWitness
}

// CoverFee greedily adds wallet inputs by descending value (ties broken
// by TxIn byte order) until the accumulated value covers outputs plus
// worst-case fee, re-pricing
// after each addition since fee grows with size, then either attaches a
// change output or absorbs dust change into the fee if it would fall below
// the min-UTxO threshold.
func (w *TinyWallet) CoverFee(ctx context.Context, knownUtxo model.UTxO, partial model.Tx) (tx model.Tx, err error) {
	started := time.Now()
	defer func() { w.metrics.ObserveCoverFee(err, started) }()

	if partial.ExecutionUnits.Memory > config.MaxExecutionMemory || partial.ExecutionUnits.Steps > config.MaxExecutionSteps {
		return model.Tx{}, ErrScriptExecutionFailed{
			Ptr:    firstScriptPtr(partial, knownUtxo),
			Reason: "execution unit budget exceeds protocol maximum",
		}
	}

	w.mu.RLock()
	snapshot := w.utxo.Clone()
	w.mu.RUnlock()

	alreadySpent := make(map[model.TxIn]bool, len(partial.Inputs))
	for _, in := range partial.Inputs {
		alreadySpent[in] = true
	}

	candidates := make([]model.TxIn, 0, len(snapshot))
	for in := range snapshot {
		if !alreadySpent[in] {
			candidates = append(candidates, in)
		}
	}
	sortByValueDescThenTxIn(candidates, snapshot)

	if len(candidates) == 0 {
		return model.Tx{}, ErrNoFuelUTxOFound{}
	}

	already := partial.InputValue(knownUtxo)
	outputs := partial.OutputValue()
	draft := partial.Clone()

	var accumulated uint64
	covered := false

	for _, in := range candidates {
		draft.Inputs = append(draft.Inputs, in)
		accumulated += snapshot[in].Value

		fee := estimateFee(draft)
		if already+accumulated >= outputs+fee {
			draft.Fee = fee
			covered = true
			break
		}
	}

	if !covered {
		fee := estimateFee(draft)
		return model.Tx{}, ErrNotEnoughFunds{
			Available: already + accumulated,
			Required:  outputs + fee,
		}
	}

	if err := w.attachChange(&draft, already+accumulated, outputs); err != nil {
		return model.Tx{}, err
	}

	if err := ctx.Err(); err != nil {
		return model.Tx{}, ErrOther{Reason: err.Error()}
	}
	if len(model.CanonicalBytes(draft)) > config.MaxTxSize {
		return model.Tx{}, ErrOther{Reason: "balanced transaction exceeds max tx size"}
	}

	return draft, nil
}

// attachChange sets draft.Fee and, if the remaining change clears the
// min-UTxO threshold, appends a change output back to the wallet. It
// iterates a few times because adding a change output changes the draft's
// size and therefore its fee; each iteration either converges or absorbs
// the remainder into the fee.
func (w *TinyWallet) attachChange(draft *model.Tx, covered, outputs uint64) error {
	for i := 0; i < 4; i++ {
		fee := estimateFee(*draft)
		if covered < outputs+fee {
			// Ran out of room re-pricing with the change output attached;
			// fall back to absorbing everything remaining into the fee.
			draft.Fee = covered - outputs
			if len(draft.Outputs) > 0 && draft.Outputs[len(draft.Outputs)-1].Address == w.address {
				draft.Outputs = draft.Outputs[:len(draft.Outputs)-1]
			}
			return nil
		}
		change := covered - outputs - fee

		hasChangeOutput := len(draft.Outputs) > 0 && draft.Outputs[len(draft.Outputs)-1].Address == w.address
		switch {
		case change == 0:
			draft.Fee = fee
			if hasChangeOutput {
				draft.Outputs = draft.Outputs[:len(draft.Outputs)-1]
			}
			return nil
		case change < config.MinUTxOValue:
			draft.Fee = covered - outputs
			if hasChangeOutput {
				draft.Outputs = draft.Outputs[:len(draft.Outputs)-1]
			}
			return nil
		default:
			draft.Fee = fee
			out := model.TxOut{Address: w.address, Value: change}
			if hasChangeOutput {
				draft.Outputs[len(draft.Outputs)-1] = out
			} else {
				draft.Outputs = append(draft.Outputs, out)
			}
		}
	}
	return nil
}

// sortByValueDescThenTxIn orders candidate inputs by descending value,
// breaking ties by TxIn byte order for reproducibility.
func sortByValueDescThenTxIn(ins []model.TxIn, snapshot model.UTxO) {
	sort.Slice(ins, func(i, j int) bool {
		a, b := ins[i], ins[j]
		va, vb := snapshot[a].Value, snapshot[b].Value
		if va != vb {
			return va > vb
		}
		return a.Less(b)
	})
}

// firstScriptPtr names the first script-locked input in partial (present in
// knownUtxo with a reference script), used as the redeemer pointer in
// ErrScriptExecutionFailed.
func firstScriptPtr(tx model.Tx, knownUtxo model.UTxO) string {
	for _, in := range tx.Inputs {
		if out, ok := knownUtxo[in]; ok && len(out.ReferenceScript) > 0 {
			return in.String()
		}
	}
	if len(tx.Inputs) > 0 {
		return tx.Inputs[0].String()
	}
	return "tx"
}
