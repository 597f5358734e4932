package model

import (
	"bytes"
	"sort"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// canonicalBody is the CBOR-serializable projection of a Tx used for both
// transaction-id hashing and witness signing: exactly the fields that
// identify "what this transaction does", in a fixed field order, with maps
// flattened to sorted slices so encoding is deterministic regardless of Go
// map iteration order.
type canonicalBody struct {
	Inputs          []TxIn
	ReferenceInputs []TxIn
	Outputs         []TxOut
	Mint            *MintAction
	ValidityStart   *Slot
	ValidityEnd     *Slot
	Fee             uint64
	DatumHashes     [][32]byte
	DatumValues     [][]byte
}

func toCanonicalBody(tx Tx) canonicalBody {
	hashes := make([][32]byte, 0, len(tx.Datums))
	for h := range tx.Datums {
		hashes = append(hashes, h)
	}
	sort.Slice(hashes, func(i, j int) bool { return bytes.Compare(hashes[i][:], hashes[j][:]) < 0 })

	values := make([][]byte, len(hashes))
	for i, h := range hashes {
		values[i] = tx.Datums[h]
	}

	return canonicalBody{
		Inputs:          append([]TxIn(nil), tx.Inputs...),
		ReferenceInputs: append([]TxIn(nil), tx.ReferenceInputs...),
		Outputs:         append([]TxOut(nil), tx.Outputs...),
		Mint:            tx.Mint,
		ValidityStart:   tx.ValidityStart,
		ValidityEnd:     tx.ValidityEnd,
		Fee:             tx.Fee,
		DatumHashes:     hashes,
		DatumValues:     values,
	}
}

var canonicalEncMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic("build canonical cbor encoder: " + err.Error())
	}
	return mode
}()

// CanonicalBytes returns the deterministic CBOR encoding of tx's body
// (excluding witnesses), the wire representation used for both hashing and
// signing.
func CanonicalBytes(tx Tx) []byte {
	body := toCanonicalBody(tx)
	out, err := canonicalEncMode.Marshal(body)
	if err != nil {
		// The canonicalBody shape contains only fixed-size arrays, slices,
		// and byte slices: Marshal cannot fail for it short of an encoder
		// bug, which would be a programming error, not a runtime condition
		// callers should plan around.
		panic("marshal canonical tx body: " + err.Error())
	}
	return out
}

// ComputeTxId derives a transaction's id by hashing its canonical body
// bytes with blake2b-256, independent of witnesses so the id never
// changes as witnesses are attached.
func ComputeTxId(tx Tx) ([32]byte, error) {
	unsigned := tx
	unsigned.Witnesses = nil
	digest := blake2b.Sum256(CanonicalBytes(unsigned))
	return digest, nil
}
