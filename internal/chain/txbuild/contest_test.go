package txbuild

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Nilismith/hydra/internal/chain/model"
)

func closedThreadState(t *testing.T, ctx model.ChainContext, headId model.HeadId, snapshotNumber uint64) model.ChainStateAt {
	t.Helper()
	datum := model.ThreadDatum{
		Stage:              model.ThreadStageClosed,
		HeadId:             headId,
		Parties:            []model.Party{ctx.OwnParty},
		ContestationPeriod: ctx.ContestationPeriod,
		SnapshotNumber:     snapshotNumber,
	}
	datumBytes, err := model.EncodeThreadDatum(datum)
	require.NoError(t, err)
	return model.ChainStateAt{UTxO: model.UTxO{
		testTxIn(t, "thread", 0): {Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head), Value: 2_000_000, Datum: datumBytes},
	}}
}

func TestContest_AcceptsHigherSnapshot(t *testing.T) {
	ctx := testContext(t)
	_, headId, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})
	state := closedThreadState(t, ctx, headId, 3)

	upperTime := time.Now().UTC().Truncate(time.Millisecond)
	tx, err := Contest(ctx, state, model.Snapshot{Number: 5}, 200, upperTime)
	require.NoError(t, err)

	datum, ok := model.DecodeThreadDatum(tx.Outputs[0].Datum)
	require.True(t, ok)
	require.Equal(t, uint64(5), datum.SnapshotNumber)
	require.True(t, datum.ContestationDeadline.Equal(upperTime.Add(ctx.ContestationPeriod.Duration())))
}

func TestContest_RejectsLowerOrEqualSnapshot(t *testing.T) {
	ctx := testContext(t)
	_, headId, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})
	state := closedThreadState(t, ctx, headId, 5)

	_, err := Contest(ctx, state, model.Snapshot{Number: 4}, 200, time.Now())
	require.Error(t, err)

	_, err = Contest(ctx, state, model.Snapshot{Number: 5}, 200, time.Now())
	require.Error(t, err)
}
