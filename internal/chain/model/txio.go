package model

import (
	"crypto/ed25519"
	"sort"
)

// TxOut is a ledger output: an address, a value in the ledger's base unit,
// an optional inline datum, and an optional reference script.
type TxOut struct {
	Address         string
	Value           uint64
	Datum           []byte
	ReferenceScript []byte
}

// UTxO maps inputs to the outputs they carry. Keys are unique; iteration
// order is irrelevant except where callers explicitly ask for SortedKeys to
// get deterministic fee coverage.
type UTxO map[TxIn]TxOut

// NewUTxO builds an empty UTxO set.
func NewUTxO() UTxO {
	return make(UTxO)
}

// Clone returns a shallow copy safe to mutate independently of the receiver.
func (u UTxO) Clone() UTxO {
	out := make(UTxO, len(u))
	for in, o := range u {
		out[in] = o
	}
	return out
}

// Merge returns the union of u and other. On key collision, other wins.
func (u UTxO) Merge(other UTxO) UTxO {
	out := u.Clone()
	for in, o := range other {
		out[in] = o
	}
	return out
}

// Without returns u with the given inputs removed, leaving u untouched.
func (u UTxO) Without(ins ...TxIn) UTxO {
	out := u.Clone()
	for _, in := range ins {
		delete(out, in)
	}
	return out
}

// TotalValue sums the Value of every output in the set.
func (u UTxO) TotalValue() uint64 {
	var total uint64
	for _, o := range u {
		total += o.Value
	}
	return total
}

// SortedKeys returns the set's inputs ordered by TxIn byte representation,
// the tie-break the wallet's fee-coverage algorithm uses to stay
// reproducible across nodes.
func (u UTxO) SortedKeys() []TxIn {
	keys := make([]TxIn, 0, len(u))
	for in := range u {
		keys = append(keys, in)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Equal reports whether two UTxO sets hold the same inputs, each with an
// output of the same address and value; datums are not compared.
func (u UTxO) Equal(other UTxO) bool {
	if len(u) != len(other) {
		return false
	}
	for in, o := range u {
		oo, ok := other[in]
		if !ok {
			return false
		}
		if o.Address != oo.Address || o.Value != oo.Value {
			return false
		}
	}
	return true
}

// Witness attaches a verification key and signature to a transaction.
type Witness struct {
	VerificationKey ed25519.PublicKey
	Signature       []byte
}

// ExecutionUnits prices a transaction's on-chain script execution, as
// returned by the node's phase-2 evaluator and consulted by cover_fee to
// keep a built transaction within the protocol's per-tx execution budget.
type ExecutionUnits struct {
	Memory uint64
	Steps  uint64
}

// Add returns the component-wise sum of two ExecutionUnits.
func (e ExecutionUnits) Add(other ExecutionUnits) ExecutionUnits {
	return ExecutionUnits{Memory: e.Memory + other.Memory, Steps: e.Steps + other.Steps}
}

// Tx is an unbalanced or balanced ledger transaction body. Transaction
// constructors produce these unbalanced (no fee, no change, possibly
// missing wallet inputs); TinyWallet.CoverFee returns a balanced copy.
type Tx struct {
	Inputs          []TxIn
	ReferenceInputs []TxIn
	Outputs         []TxOut
	Mint            *MintAction
	Datums          map[[32]byte][]byte
	ValidityStart   *Slot
	ValidityEnd     *Slot
	ExecutionUnits  ExecutionUnits
	Fee             uint64
	Witnesses       []Witness
	Metadata        map[uint64][]byte
}

// MintAction represents the Head thread token mint (InitTx) or burn
// (AbortTx, FanoutTx) carried by a transaction.
type MintAction struct {
	PolicyId  [28]byte
	AssetName string
	Quantity  int64 // positive mints, negative burns
}

// Clone returns a deep-enough copy of tx that mutating the copy's slices
// never affects the original, which transaction constructors rely on when
// building successive drafts from the same base.
func (tx Tx) Clone() Tx {
	out := tx
	out.Inputs = append([]TxIn(nil), tx.Inputs...)
	out.ReferenceInputs = append([]TxIn(nil), tx.ReferenceInputs...)
	out.Outputs = append([]TxOut(nil), tx.Outputs...)
	out.Witnesses = append([]Witness(nil), tx.Witnesses...)
	if tx.Datums != nil {
		out.Datums = make(map[[32]byte][]byte, len(tx.Datums))
		for k, v := range tx.Datums {
			out.Datums[k] = v
		}
	}
	if tx.Metadata != nil {
		out.Metadata = make(map[uint64][]byte, len(tx.Metadata))
		for k, v := range tx.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// InputValue sums the Value of every input tx spends, given the UTxO set
// that resolves them. Inputs missing from known are skipped (the caller is
// expected to have validated completeness beforehand).
func (tx Tx) InputValue(known UTxO) uint64 {
	var total uint64
	for _, in := range tx.Inputs {
		if o, ok := known[in]; ok {
			total += o.Value
		}
	}
	return total
}

// OutputValue sums the Value of every output the transaction produces.
func (tx Tx) OutputValue() uint64 {
	var total uint64
	for _, o := range tx.Outputs {
		total += o.Value
	}
	return total
}
