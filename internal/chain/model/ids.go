// Package model defines the data model of the Hydra Head on-chain interface:
// UTxO/transaction primitives, the Head lifecycle state, and chain position
// types shared by every other chain/* package.
package model

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/blake2b"
)

// HeadIdSize is the byte length of a HeadId, matching a blake2b-224 digest.
const HeadIdSize = 28

// HeadId opaquely identifies one Head instance on chain. It is derived from
// the hash of the seed input consumed by InitTx.
type HeadId [HeadIdSize]byte

// NewHeadId derives a HeadId from the seed TxIn consumed by InitTx.
func NewHeadId(seed TxIn) (HeadId, error) {
	digest, err := blake2b.New(HeadIdSize, nil)
	if err != nil {
		return HeadId{}, fmt.Errorf("init head id hasher: %w", err)
	}
	if _, err := digest.Write(seed.Bytes()); err != nil {
		return HeadId{}, fmt.Errorf("hash seed input: %w", err)
	}

	var id HeadId
	copy(id[:], digest.Sum(nil))
	return id, nil
}

// Bytes returns the raw identifier bytes.
func (h HeadId) Bytes() []byte {
	return h[:]
}

// String renders the HeadId as lowercase hex.
func (h HeadId) String() string {
	return hex.EncodeToString(h[:])
}

// Equal reports whether two HeadIds carry the same bytes.
func (h HeadId) Equal(other HeadId) bool {
	return bytes.Equal(h[:], other[:])
}

// Less orders HeadIds by their byte representation, for deterministic sorting.
func (h HeadId) Less(other HeadId) bool {
	return bytes.Compare(h[:], other[:]) < 0
}

// HeadSeed references the specific UTxO input consumed by InitTx. It
// uniquely identifies one Head instance and is in bijection with a TxIn.
type HeadSeed struct {
	TxIn TxIn
}

// HeadSeedToTxIn extracts the underlying TxIn from a HeadSeed.
func HeadSeedToTxIn(seed HeadSeed) TxIn {
	return seed.TxIn
}

// TxInToHeadSeed wraps a TxIn as a HeadSeed. Defined so the two conversions
// round-trip: HeadSeedToTxIn(TxInToHeadSeed(in)) == in for every in, and
// TxInToHeadSeed(HeadSeedToTxIn(seed)) == seed for every seed.
func TxInToHeadSeed(in TxIn) HeadSeed {
	return HeadSeed{TxIn: in}
}

// SeedHeadId is a convenience wrapper deriving the HeadId directly from a
// HeadSeed.
func SeedHeadId(seed HeadSeed) (HeadId, error) {
	return NewHeadId(seed.TxIn)
}

// TxIn identifies a transaction output by the id of the transaction that
// produced it and the output's index within that transaction.
type TxIn struct {
	TxId  chainhash.Hash
	Index uint32
}

// Bytes returns a canonical byte encoding of the TxIn, used both for hashing
// (HeadId derivation) and for the deterministic tie-break ordering the
// wallet's fee-coverage algorithm relies on.
func (t TxIn) Bytes() []byte {
	buf := make([]byte, chainhash.HashSize+4)
	copy(buf, t.TxId[:])
	binary.BigEndian.PutUint32(buf[chainhash.HashSize:], t.Index)
	return buf
}

// String renders "txid#index".
func (t TxIn) String() string {
	return fmt.Sprintf("%s#%d", t.TxId.String(), t.Index)
}

// Less orders TxIns by byte representation: transaction id first, then
// index. Used to make fee coverage reproducible across nodes.
func (t TxIn) Less(other TxIn) bool {
	return bytes.Compare(t.Bytes(), other.Bytes()) < 0
}
