package observer

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// Observer classifies transactions against the script addresses of one
// Head's validators. It holds no mutable state; ObserveTx/ObserveAll are
// pure functions of their arguments.
type Observer struct {
	networkId model.NetworkId
	scripts   model.ScriptHashes
}

// New builds an Observer scoped to a network and a Head's script hashes.
func New(networkId model.NetworkId, scripts model.ScriptHashes) *Observer {
	return &Observer{networkId: networkId, scripts: scripts}
}

func (o *Observer) threadAddr() string  { return model.ScriptAddress(o.networkId, o.scripts.Head) }
func (o *Observer) initialAddr() string { return model.ScriptAddress(o.networkId, o.scripts.Initial) }
func (o *Observer) commitAddr() string  { return model.ScriptAddress(o.networkId, o.scripts.Commit) }

// spentThread reports the thread output tx consumes, if utxo carries one
// among tx's inputs.
func (o *Observer) spentThread(utxo model.UTxO, tx model.Tx) (model.TxOut, model.ThreadDatum, bool) {
	for _, in := range tx.Inputs {
		out, ok := utxo[in]
		if !ok || out.Address != o.threadAddr() {
			continue
		}
		datum, decoded := model.DecodeThreadDatum(out.Datum)
		if decoded {
			return out, datum, true
		}
	}
	return model.TxOut{}, model.ThreadDatum{}, false
}

// producedThread reports the thread output tx produces, if any.
func (o *Observer) producedThread(tx model.Tx) (model.TxOut, model.ThreadDatum, bool) {
	for _, out := range tx.Outputs {
		if out.Address != o.threadAddr() {
			continue
		}
		datum, decoded := model.DecodeThreadDatum(out.Datum)
		if decoded {
			return out, datum, true
		}
	}
	return model.TxOut{}, model.ThreadDatum{}, false
}

// spentInitials reports every initial output tx consumes.
func (o *Observer) spentInitials(utxo model.UTxO, tx model.Tx) []model.InitialDatum {
	var found []model.InitialDatum
	for _, in := range tx.Inputs {
		out, ok := utxo[in]
		if !ok || out.Address != o.initialAddr() {
			continue
		}
		if datum, decoded := model.DecodeInitialDatum(out.Datum); decoded {
			found = append(found, datum)
		}
	}
	return found
}

// spentCommits reports every commit output tx consumes.
func (o *Observer) spentCommits(utxo model.UTxO, tx model.Tx) []model.CommitDatum {
	var found []model.CommitDatum
	for _, in := range tx.Inputs {
		out, ok := utxo[in]
		if !ok || out.Address != o.commitAddr() {
			continue
		}
		if datum, decoded := model.DecodeCommitDatum(out.Datum); decoded {
			found = append(found, datum)
		}
	}
	return found
}

// producedCommit reports the commit output tx produces, if any.
func (o *Observer) producedCommit(tx model.Tx) (model.CommitDatum, bool) {
	for _, out := range tx.Outputs {
		if out.Address != o.commitAddr() {
			continue
		}
		if datum, decoded := model.DecodeCommitDatum(out.Datum); decoded {
			return datum, true
		}
	}
	return model.CommitDatum{}, false
}

// relevantOutputs returns the subset of tx's outputs this observer tracks
// (thread/initial/commit outputs), keyed by the TxIn they create.
func (o *Observer) relevantOutputs(tx model.Tx) model.UTxO {
	txId, _ := model.ComputeTxId(tx)
	result := model.NewUTxO()
	for i, out := range tx.Outputs {
		switch out.Address {
		case o.threadAddr(), o.initialAddr(), o.commitAddr():
			result[model.TxIn{TxId: chainhash.Hash(txId), Index: uint32(i)}] = out
		}
	}
	return result
}

// ObserveTx inspects tx against the known Head UTxO set utxo, returning
// the updated UTxO set and the classified observation. If tx is unrelated
// to this Head, utxo is returned unchanged and ok is false.
func (o *Observer) ObserveTx(utxo model.UTxO, tx model.Tx) (model.UTxO, HeadObservation, bool) {
	if obs, ok := o.classify(utxo, tx); ok {
		newUtxo := utxo.Without(tx.Inputs...).Merge(o.relevantOutputs(tx))
		return newUtxo, obs, true
	}
	return utxo, HeadObservation{}, false
}

func (o *Observer) classify(utxo model.UTxO, tx model.Tx) (HeadObservation, bool) {
	_, spentDatum, spentThread := o.spentThread(utxo, tx)
	_, producedDatum, producedThread := o.producedThread(tx)

	switch {
	case !spentThread && producedThread && producedDatum.Stage == model.ThreadStageInitial:
		return HeadObservation{
			Tag:                TagInit,
			HeadId:             producedDatum.HeadId,
			HeadSeed:           model.TxInToHeadSeed(tx.Inputs[0]),
			ContestationPeriod: producedDatum.ContestationPeriod,
			Parties:            producedDatum.Parties,
		}, true

	case spentThread && !producedThread && tx.Mint != nil && tx.Mint.Quantity < 0 &&
		spentDatum.Stage == model.ThreadStageInitial:
		return HeadObservation{Tag: TagAbort, HeadId: spentDatum.HeadId}, true

	case spentThread && producedThread &&
		spentDatum.Stage == model.ThreadStageInitial && producedDatum.Stage == model.ThreadStageOpen:
		return HeadObservation{
			Tag:    TagCollectCom,
			HeadId: producedDatum.HeadId,
			UTxO:   o.collectedUtxo(utxo, tx),
		}, true

	case spentThread && producedThread &&
		spentDatum.Stage == model.ThreadStageOpen && producedDatum.Stage == model.ThreadStageClosed:
		return HeadObservation{
			Tag:                  TagClose,
			HeadId:               producedDatum.HeadId,
			SnapshotNumber:       producedDatum.SnapshotNumber,
			ContestationDeadline: producedDatum.ContestationDeadline,
		}, true

	case spentThread && producedThread &&
		spentDatum.Stage == model.ThreadStageClosed && producedDatum.Stage == model.ThreadStageClosed &&
		producedDatum.SnapshotNumber > spentDatum.SnapshotNumber:
		return HeadObservation{Tag: TagContest, HeadId: producedDatum.HeadId, SnapshotNumber: producedDatum.SnapshotNumber}, true

	case spentThread && !producedThread && tx.Mint != nil && tx.Mint.Quantity < 0 &&
		spentDatum.Stage == model.ThreadStageClosed:
		return HeadObservation{Tag: TagFanout, HeadId: spentDatum.HeadId}, true
	}

	if datum, ok := o.producedCommit(tx); ok && len(o.spentInitials(utxo, tx)) > 0 {
		return HeadObservation{
			Tag:       TagCommit,
			HeadId:    datum.HeadId,
			Party:     datum.Party,
			Committed: datum.Committed,
		}, true
	}

	return HeadObservation{}, false
}

// collectedUtxo reconstructs U0 for a CollectCom observation: the union of
// every commit output's committed value, which is exactly the UTxO that
// CollectComTx construction folded into the new thread output.
func (o *Observer) collectedUtxo(utxo model.UTxO, tx model.Tx) model.UTxO {
	result := model.NewUTxO()
	for _, datum := range o.spentCommits(utxo, tx) {
		result = result.Merge(datum.Committed)
	}
	return result
}

// ObserveAll folds ObserveTx over txs in order, threading the updated
// UTxO set and collecting observations in order.
func (o *Observer) ObserveAll(utxo model.UTxO, txs []model.Tx) (model.UTxO, []HeadObservation) {
	observations := make([]HeadObservation, 0, len(txs))
	current := utxo
	for _, tx := range txs {
		newUtxo, obs, ok := o.ObserveTx(current, tx)
		current = newUtxo
		if ok {
			observations = append(observations, obs)
		}
	}
	return current, observations
}
