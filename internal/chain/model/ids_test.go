package model

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func TestHeadSeedTxInRoundTrip(t *testing.T) {
	in := TxIn{TxId: chainhash.HashH([]byte("seed")), Index: 3}

	seed := TxInToHeadSeed(in)
	require.Equal(t, in, HeadSeedToTxIn(seed))

	roundTripped := TxInToHeadSeed(HeadSeedToTxIn(seed))
	require.Equal(t, seed, roundTripped)
}

func TestNewHeadId_DeterministicForSameSeed(t *testing.T) {
	in := TxIn{TxId: chainhash.HashH([]byte("seed")), Index: 0}

	id1, err := NewHeadId(in)
	require.NoError(t, err)
	id2, err := NewHeadId(in)
	require.NoError(t, err)

	require.True(t, id1.Equal(id2))
}

func TestNewHeadId_DiffersForDifferentSeeds(t *testing.T) {
	a := TxIn{TxId: chainhash.HashH([]byte("a")), Index: 0}
	b := TxIn{TxId: chainhash.HashH([]byte("b")), Index: 0}

	idA, err := NewHeadId(a)
	require.NoError(t, err)
	idB, err := NewHeadId(b)
	require.NoError(t, err)

	require.False(t, idA.Equal(idB))
}

func TestTxIn_LessIsDeterministicTieBreak(t *testing.T) {
	a := TxIn{TxId: chainhash.HashH([]byte("a")), Index: 0}
	b := TxIn{TxId: chainhash.HashH([]byte("a")), Index: 1}
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
}
