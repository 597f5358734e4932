package txbuild

import (
	"fmt"
	"sort"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// sortedTxIns returns the keys of a TxIn-keyed map in deterministic order,
// so constructors that iterate commit/initial outputs produce the same
// input/output ordering on every node given the same chain state.
func sortedTxIns[V any](m map[model.TxIn]V) []model.TxIn {
	keys := make([]model.TxIn, 0, len(m))
	for in := range m {
		keys = append(keys, in)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// headAssetName derives the thread token's asset name from a HeadId, so
// mint/burn actions across initialize/abort/fanout agree on the same name.
func headAssetName(headId model.HeadId) string {
	return "head" + headId.String()
}

// threadMint builds the MintAction for minting (quantity=1) or burning
// (quantity=-1) the Head's unique thread token.
func threadMint(ctx model.ChainContext, headId model.HeadId, quantity int64) *model.MintAction {
	return &model.MintAction{
		PolicyId:  ctx.Scripts.Head,
		AssetName: headAssetName(headId),
		Quantity:  quantity,
	}
}

// findThreadOutput locates the Head's thread output in utxo by script
// address and decodes its datum. Returns ok=false if no thread output for
// this network/script is present.
func findThreadOutput(ctx model.ChainContext, utxo model.UTxO) (in model.TxIn, out model.TxOut, datum model.ThreadDatum, ok bool) {
	threadAddr := model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head)
	for _, candidate := range utxo.SortedKeys() {
		o := utxo[candidate]
		if o.Address != threadAddr {
			continue
		}
		d, decoded := model.DecodeThreadDatum(o.Datum)
		if !decoded {
			continue
		}
		return candidate, o, d, true
	}
	return model.TxIn{}, model.TxOut{}, model.ThreadDatum{}, false
}

// initialOutputFor locates the initial output belonging to party in utxo.
func initialOutputFor(ctx model.ChainContext, utxo model.UTxO, party model.Party) (in model.TxIn, out model.TxOut, ok bool) {
	initialAddr := model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Initial)
	for _, candidate := range utxo.SortedKeys() {
		o := utxo[candidate]
		if o.Address != initialAddr {
			continue
		}
		d, decoded := model.DecodeInitialDatum(o.Datum)
		if !decoded || !d.Party.Equal(party) {
			continue
		}
		return candidate, o, true
	}
	return model.TxIn{}, model.TxOut{}, false
}

// allInitialOutputs collects every initial output present in utxo, keyed
// by the TxIn that produced them, decoding each one's InitialDatum.
func allInitialOutputs(ctx model.ChainContext, utxo model.UTxO) (map[model.TxIn]model.InitialDatum, error) {
	initialAddr := model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Initial)
	found := make(map[model.TxIn]model.InitialDatum)
	for _, in := range utxo.SortedKeys() {
		o := utxo[in]
		if o.Address != initialAddr {
			continue
		}
		d, ok := model.DecodeInitialDatum(o.Datum)
		if !ok {
			return nil, fmt.Errorf("initial output %s carries an undecodable datum", in)
		}
		found[in] = d
	}
	return found, nil
}

// commitOutputs collects every commit output present in utxo, keyed by the
// TxIn that produced them, decoding each one's CommitDatum.
func commitOutputs(ctx model.ChainContext, utxo model.UTxO) (map[model.TxIn]model.CommitDatum, error) {
	commitAddr := model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Commit)
	found := make(map[model.TxIn]model.CommitDatum)
	for _, in := range utxo.SortedKeys() {
		o := utxo[in]
		if o.Address != commitAddr {
			continue
		}
		d, ok := model.DecodeCommitDatum(o.Datum)
		if !ok {
			return nil, fmt.Errorf("commit output %s carries an undecodable datum", in)
		}
		found[in] = d
	}
	return found, nil
}
