package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func point(slot Slot) *ChainPoint {
	return &ChainPoint{Slot: slot}
}

func TestChainStateHistory_WithPushed_RequiresStrictlyIncreasingSlot(t *testing.T) {
	h := NewChainStateHistory(ChainStateAt{UTxO: NewUTxO()})
	h, err := h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(10)})
	require.NoError(t, err)

	_, err = h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(10)})
	require.Error(t, err)
	_, err = h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(5)})
	require.Error(t, err)

	h, err = h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(11)})
	require.NoError(t, err)
	require.Equal(t, Slot(11), h.Current().RecordedAt.Slot)
}

func TestChainStateHistory_WithRolledBackTo_Idempotent(t *testing.T) {
	h := NewChainStateHistory(ChainStateAt{UTxO: NewUTxO()})
	h, _ = h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(10)})
	h, _ = h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(20)})
	h, _ = h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(30)})

	once, current, hitAnchor := h.WithRolledBackTo(15)
	require.False(t, hitAnchor)
	require.Equal(t, Slot(10), current.RecordedAt.Slot)

	twice, current2, hitAnchor2 := once.WithRolledBackTo(15)
	require.False(t, hitAnchor2)
	require.Equal(t, current.RecordedAt.Slot, current2.RecordedAt.Slot)
	require.Equal(t, once.Len(), twice.Len())
	require.LessOrEqual(t, current2.RecordedAt.Slot, Slot(15))
}

func TestChainStateHistory_WithRolledBackTo_HardLimitAtAnchor(t *testing.T) {
	h := NewChainStateHistory(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(5)})
	h, _ = h.WithPushed(ChainStateAt{UTxO: NewUTxO(), RecordedAt: point(10)})

	rolled, current, hitAnchor := h.WithRolledBackTo(1)
	require.True(t, hitAnchor)
	require.Equal(t, h.Anchor(), current)
	require.Equal(t, 1, rolled.Len())
}

func TestChainStateHistoryFromSlice_RejectsEmpty(t *testing.T) {
	_, err := ChainStateHistoryFromSlice(nil)
	require.ErrorIs(t, err, ErrEmptyHistory)
}

func TestChainStateHistoryFromSlice_RejectsNonIncreasingSlots(t *testing.T) {
	_, err := ChainStateHistoryFromSlice([]ChainStateAt{
		{UTxO: NewUTxO(), RecordedAt: point(10)},
		{UTxO: NewUTxO(), RecordedAt: point(10)},
	})
	require.Error(t, err)
}
