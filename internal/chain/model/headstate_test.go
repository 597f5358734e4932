package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition_LegalMoves(t *testing.T) {
	legal := [][2]HeadState{
		{StateIdle, StateInitial},
		{StateInitial, StateInitial}, // repeated commits
		{StateInitial, StateAborted},
		{StateInitial, StateOpen},
		{StateOpen, StateClosed},
		{StateClosed, StateClosed}, // contest
		{StateClosed, StateFanout},
	}
	for _, tr := range legal {
		require.True(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestCanTransition_IllegalMoves(t *testing.T) {
	illegal := [][2]HeadState{
		{StateIdle, StateOpen},
		{StateIdle, StateClosed},
		{StateOpen, StateInitial},
		{StateOpen, StateFanout},
		{StateClosed, StateOpen},
		{StateAborted, StateInitial},
		{StateFanout, StateClosed},
	}
	for _, tr := range illegal {
		require.False(t, CanTransition(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestHeadState_Terminal(t *testing.T) {
	require.True(t, StateAborted.Terminal())
	require.True(t, StateFanout.Terminal())
	require.False(t, StateIdle.Terminal())
	require.False(t, StateInitial.Terminal())
	require.False(t, StateOpen.Terminal())
	require.False(t, StateClosed.Terminal())
}
