package txbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nilismith/hydra/internal/chain/model"
)

func TestAbort_RefundsUncommittedInitialOutput(t *testing.T) {
	ctx := testContext(t)
	initTx, _, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})
	state := stateAfter("after-init", initTx)

	seed := testTxIn(t, "seed", 0)
	tx, err := Abort(ctx, model.StateInitial, state, seed)
	require.NoError(t, err)
	require.NotNil(t, tx.Mint)
	require.Equal(t, int64(-1), tx.Mint.Quantity)
	require.Len(t, tx.Outputs, 1)
	require.Equal(t, model.PartyAddress(ctx.NetworkId, ctx.OwnParty), tx.Outputs[0].Address)
}

func TestAbort_RefundsCommittedUtxoValue(t *testing.T) {
	ctx := testContext(t)
	initTx, headId, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})
	state := stateAfter("after-init", initTx)

	userIn := testTxIn(t, "user-funds", 0)
	userUtxo := model.UTxO{userIn: {Address: "addr-user", Value: 3_000_000}}
	commitTx, err := Commit(ctx, headId, state, userUtxo, model.NewUTxO())
	require.NoError(t, err)

	// A post-commit state still carries the thread output (never spent by
	// Commit) plus the new commit output.
	combined := state.UTxO.Clone()
	combined[testTxIn(t, "commit", 0)] = commitTx.Outputs[0]
	postCommit := model.ChainStateAt{UTxO: combined}

	tx, err := Abort(ctx, model.StateInitial, postCommit, testTxIn(t, "seed", 0))
	require.NoError(t, err)

	var refundedCommit bool
	for _, out := range tx.Outputs {
		if out.Value == 3_000_000 {
			refundedCommit = true
		}
	}
	require.True(t, refundedCommit)
}

func TestAbort_RejectsSeedOfAnotherHead(t *testing.T) {
	ctx := testContext(t)
	initTx, _, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})
	state := stateAfter("after-init", initTx)

	_, err := Abort(ctx, model.StateInitial, state, testTxIn(t, "some-other-seed", 0))
	var invalidSeed ErrInvalidSeed
	require.ErrorAs(t, err, &invalidSeed)
}

func TestAbort_RejectsOutsideInitialState(t *testing.T) {
	ctx := testContext(t)
	initTx, _, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})
	state := stateAfter("after-init", initTx)

	_, err := Abort(ctx, model.StateOpen, state, testTxIn(t, "seed", 0))
	require.Error(t, err)
}
