package txbuild

import (
	"crypto/ed25519"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"

	"github.com/Nilismith/hydra/internal/chain/model"
)

func testContext(t *testing.T) model.ChainContext {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return model.ChainContext{
		NetworkId:          1,
		OwnParty:           model.Party{VerificationKey: pub},
		OwnVerificationKey: pub,
		OwnSigningKey:      priv,
		ContestationPeriod: model.ContestationPeriod(60_000_000_000),
		Scripts: model.ScriptHashes{
			Head:    [28]byte{1},
			Initial: [28]byte{2},
			Commit:  [28]byte{3},
		},
	}
}

func testTxIn(t *testing.T, label string, index uint32) model.TxIn {
	t.Helper()
	return model.TxIn{TxId: chainhash.HashH([]byte(label)), Index: index}
}

func mustInitialize(t *testing.T, ctx model.ChainContext, parties []model.Party) (model.Tx, model.HeadId, model.TxIn) {
	t.Helper()
	seed := testTxIn(t, "seed", 0)
	params := model.HeadParameters{Parties: parties, ContestationPeriod: ctx.ContestationPeriod}
	keys := make([]model.PartyKeys, len(parties))
	for i, p := range parties {
		keys[i] = model.PartyKeys{Party: p, VerificationKey: p.VerificationKey}
	}
	tx, err := Initialize(ctx, params, seed, keys)
	require.NoError(t, err)
	headId, err := model.NewHeadId(seed)
	require.NoError(t, err)
	return tx, headId, seed
}

// stateAfter wraps the outputs of a just-built tx into a ChainStateAt,
// simulating what an observer would record: the new outputs become the
// Head-relevant UTxO slice, keyed by a synthesized TxIn derived from
// label/index so successive fixtures stay collision-free.
func stateAfter(label string, tx model.Tx) model.ChainStateAt {
	utxo := model.NewUTxO()
	for i, out := range tx.Outputs {
		utxo[model.TxIn{TxId: chainhash.HashH([]byte(label)), Index: uint32(i)}] = out
	}
	return model.ChainStateAt{UTxO: utxo}
}
