package txbuild

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Nilismith/hydra/internal/chain/model"
)

func openThreadState(t *testing.T, ctx model.ChainContext, headId model.HeadId) model.ChainStateAt {
	t.Helper()
	datum := model.ThreadDatum{Stage: model.ThreadStageOpen, HeadId: headId, Parties: []model.Party{ctx.OwnParty}, ContestationPeriod: ctx.ContestationPeriod}
	datumBytes, err := model.EncodeThreadDatum(datum)
	require.NoError(t, err)
	return model.ChainStateAt{UTxO: model.UTxO{
		testTxIn(t, "thread", 0): {Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head), Value: 2_000_000, Datum: datumBytes},
	}}
}

func TestClose_RecordsSnapshotAndDeadline(t *testing.T) {
	ctx := testContext(t)
	_, headId, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})
	state := openThreadState(t, ctx, headId)

	params := model.HeadParameters{Parties: []model.Party{ctx.OwnParty}, ContestationPeriod: ctx.ContestationPeriod}
	snapshot := model.Snapshot{Number: 3}
	upperTime := time.Now().UTC().Truncate(time.Millisecond)

	tx, err := Close(ctx, state, params, snapshot, 100, 110, upperTime)
	require.NoError(t, err)
	require.NotNil(t, tx.ValidityStart)
	require.NotNil(t, tx.ValidityEnd)
	require.Equal(t, model.Slot(100), *tx.ValidityStart)
	require.Equal(t, model.Slot(110), *tx.ValidityEnd)

	datum, ok := model.DecodeThreadDatum(tx.Outputs[0].Datum)
	require.True(t, ok)
	require.Equal(t, model.ThreadStageClosed, datum.Stage)
	require.Equal(t, uint64(3), datum.SnapshotNumber)
	require.True(t, datum.ContestationDeadline.Equal(upperTime.Add(ctx.ContestationPeriod.Duration())))
}

func TestClose_RejectsNonOpenThread(t *testing.T) {
	ctx := testContext(t)
	_, headId, _ := mustInitialize(t, ctx, []model.Party{ctx.OwnParty})

	datum := model.ThreadDatum{Stage: model.ThreadStageInitial, HeadId: headId}
	datumBytes, err := model.EncodeThreadDatum(datum)
	require.NoError(t, err)
	state := model.ChainStateAt{UTxO: model.UTxO{
		testTxIn(t, "thread", 0): {Address: model.ScriptAddress(ctx.NetworkId, ctx.Scripts.Head), Datum: datumBytes},
	}}

	params := model.HeadParameters{Parties: []model.Party{ctx.OwnParty}, ContestationPeriod: ctx.ContestationPeriod}
	_, err = Close(ctx, state, params, model.Snapshot{Number: 1}, 0, 10, time.Now())
	require.Error(t, err)
}
