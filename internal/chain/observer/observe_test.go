package observer

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/Nilismith/hydra/internal/chain/model"
	"github.com/Nilismith/hydra/internal/chain/txbuild"
)

func testContext(t *testing.T) model.ChainContext {
	t.Helper()
	return model.ChainContext{
		NetworkId: 1,
		OwnParty:  model.Party{VerificationKey: []byte("verification-key")},
		Scripts: model.ScriptHashes{
			Head:    [28]byte{1},
			Initial: [28]byte{2},
			Commit:  [28]byte{3},
		},
	}
}

func txIn(t *testing.T, label string, index uint32) model.TxIn {
	t.Helper()
	return model.TxIn{TxId: chainhash.HashH([]byte(label)), Index: index}
}

func TestObserveTx_ClassifiesInit(t *testing.T) {
	ctx := testContext(t)
	seed := txIn(t, "seed", 0)
	params := model.HeadParameters{Parties: []model.Party{ctx.OwnParty}, ContestationPeriod: model.ContestationPeriod(60_000_000_000)}
	tx, err := txbuild.Initialize(ctx, params, seed, []model.PartyKeys{{Party: ctx.OwnParty, VerificationKey: ctx.OwnParty.VerificationKey}})
	require.NoError(t, err)

	o := New(ctx.NetworkId, ctx.Scripts)
	before := model.UTxO{seed: {Address: "addr-seed", Value: 5_000_000}}

	newUtxo, obs, ok := o.ObserveTx(before, tx)
	require.True(t, ok)
	require.Equal(t, TagInit, obs.Tag)
	require.NotEqual(t, before, newUtxo) // UTxO advancement

	headId, err := model.NewHeadId(seed)
	require.NoError(t, err)
	require.Equal(t, headId, obs.HeadId)
}

func TestObserveTx_NonInterferenceForUnrelatedTx(t *testing.T) {
	ctx := testContext(t)
	o := New(ctx.NetworkId, ctx.Scripts)

	in := txIn(t, "payment", 0)
	utxo := model.UTxO{in: {Address: "addr-a", Value: 1_000_000}}
	unrelated := model.Tx{
		Inputs:  []model.TxIn{in},
		Outputs: []model.TxOut{{Address: "addr-b", Value: 1_000_000}},
	}

	newUtxo, _, ok := o.ObserveTx(utxo, unrelated)
	require.False(t, ok)
	require.Equal(t, utxo, newUtxo) // unrelated txs leave the set unchanged
}

func TestObserveAll_FoldsOverMultipleTransactions(t *testing.T) {
	ctx := testContext(t)
	o := New(ctx.NetworkId, ctx.Scripts)

	in1 := txIn(t, "p1", 0)
	in2 := txIn(t, "p2", 0)
	utxo := model.UTxO{
		in1: {Address: "addr-a", Value: 1_000_000},
		in2: {Address: "addr-b", Value: 1_000_000},
	}
	txs := []model.Tx{
		{Inputs: []model.TxIn{in1}, Outputs: []model.TxOut{{Address: "addr-c", Value: 1_000_000}}},
		{Inputs: []model.TxIn{in2}, Outputs: []model.TxOut{{Address: "addr-d", Value: 1_000_000}}},
	}

	finalUtxo, observations := o.ObserveAll(utxo, txs)
	require.Equal(t, utxo, finalUtxo)
	require.Empty(t, observations)
}

func TestObserveTx_ClassifiesCommitAfterInit(t *testing.T) {
	ctx := testContext(t)
	seed := txIn(t, "seed", 0)
	params := model.HeadParameters{Parties: []model.Party{ctx.OwnParty}, ContestationPeriod: model.ContestationPeriod(60_000_000_000)}
	initTx, err := txbuild.Initialize(ctx, params, seed, []model.PartyKeys{{Party: ctx.OwnParty, VerificationKey: ctx.OwnParty.VerificationKey}})
	require.NoError(t, err)

	o := New(ctx.NetworkId, ctx.Scripts)
	afterInit, _, ok := o.ObserveTx(model.NewUTxO(), initTx)
	require.True(t, ok)

	headId, err := model.NewHeadId(seed)
	require.NoError(t, err)

	userIn := txIn(t, "user-funds", 0)
	userUtxo := model.UTxO{userIn: {Address: "addr-user", Value: 3_000_000}}
	commitTx, err := txbuild.Commit(ctx, headId, model.ChainStateAt{UTxO: afterInit}, userUtxo, model.NewUTxO())
	require.NoError(t, err)

	withUser := afterInit.Clone()
	withUser[userIn] = model.TxOut{Address: "addr-user", Value: 3_000_000}

	_, obs, ok := o.ObserveTx(withUser, commitTx)
	require.True(t, ok)
	require.Equal(t, TagCommit, obs.Tag)
	require.True(t, obs.Committed.Equal(userUtxo))
}

func TestObserveTx_ContestRequiresHigherSnapshot(t *testing.T) {
	ctx := testContext(t)
	o := New(ctx.NetworkId, ctx.Scripts)

	closedDatum := model.ThreadDatum{Stage: model.ThreadStageClosed, HeadId: model.HeadId{7}, SnapshotNumber: 3}
	closedBytes, err := model.EncodeThreadDatum(closedDatum)
	require.NoError(t, err)
	threadIn := txIn(t, "thread", 0)
	threadAddr := model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head)
	utxo := model.UTxO{threadIn: {Address: threadAddr, Value: 2_000_000, Datum: closedBytes}}

	contested := closedDatum
	contested.SnapshotNumber = 5
	contestedBytes, err := model.EncodeThreadDatum(contested)
	require.NoError(t, err)
	contestTx := model.Tx{
		Inputs:  []model.TxIn{threadIn},
		Outputs: []model.TxOut{{Address: threadAddr, Value: 2_000_000, Datum: contestedBytes}},
	}

	_, obs, ok := o.ObserveTx(utxo, contestTx)
	require.True(t, ok)
	require.Equal(t, TagContest, obs.Tag)
	require.Equal(t, uint64(5), obs.SnapshotNumber)

	// A contest carrying a snapshot at or below the closed one is not a
	// Head transition: no observation, UTxO unchanged.
	stale := closedDatum
	stale.SnapshotNumber = 2
	staleBytes, err := model.EncodeThreadDatum(stale)
	require.NoError(t, err)
	staleTx := model.Tx{
		Inputs:  []model.TxIn{threadIn},
		Outputs: []model.TxOut{{Address: threadAddr, Value: 2_000_000, Datum: staleBytes}},
	}
	newUtxo, _, ok := o.ObserveTx(utxo, staleTx)
	require.False(t, ok)
	require.Equal(t, utxo, newUtxo)
}

func TestConvertObservation_PreservesCloseFields(t *testing.T) {
	obs := HeadObservation{Tag: TagClose, SnapshotNumber: 7}
	onChainTx, ok := ConvertObservation(obs)
	require.True(t, ok)
	require.Equal(t, uint64(7), onChainTx.SnapshotNumber)
}
