package model

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// datumKind tags which concrete datum shape a TxOut.Datum blob decodes to,
// since observers must recognize a thread/initial/commit output by
// inspecting its datum without out-of-band knowledge of which constructor
// produced it.
type datumKind uint8

const (
	datumKindThread datumKind = iota + 1
	datumKindInitial
	datumKindCommit
)

type envelope struct {
	Kind    datumKind
	Payload []byte
}

func encode(kind datumKind, payload interface{}) ([]byte, error) {
	inner, err := canonicalEncMode.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode datum payload: %w", err)
	}
	out, err := canonicalEncMode.Marshal(envelope{Kind: kind, Payload: inner})
	if err != nil {
		return nil, fmt.Errorf("encode datum envelope: %w", err)
	}
	return out, nil
}

// threadDatumWire is the wire projection of ThreadDatum. The contestation
// deadline travels as POSIX milliseconds, matching the on-chain convention
// of millisecond deadlines and avoiding reliance on
// the CBOR codec's default time.Time handling.
type threadDatumWire struct {
	Stage                ThreadStage
	HeadId               HeadId
	Parties              []Party
	ContestationPeriod   ContestationPeriod
	SnapshotNumber       uint64
	ContestationDeadline int64
}

// EncodeThreadDatum serializes a ThreadDatum to its on-chain datum bytes.
func EncodeThreadDatum(d ThreadDatum) ([]byte, error) {
	wire := threadDatumWire{
		Stage:              d.Stage,
		HeadId:             d.HeadId,
		Parties:            d.Parties,
		ContestationPeriod: d.ContestationPeriod,
		SnapshotNumber:     d.SnapshotNumber,
	}
	if !d.ContestationDeadline.IsZero() {
		wire.ContestationDeadline = d.ContestationDeadline.UnixMilli()
	}
	return encode(datumKindThread, wire)
}

// EncodeInitialDatum serializes an InitialDatum to its on-chain datum bytes.
func EncodeInitialDatum(d InitialDatum) ([]byte, error) {
	return encode(datumKindInitial, d)
}

// utxoEntry is the wire projection of one UTxO map entry: CBOR map keys
// must be primitive-shaped, so a UTxO travels on the wire as a sorted
// slice of (TxIn, TxOut) pairs rather than as a Go map.
type utxoEntry struct {
	In  TxIn
	Out TxOut
}

func utxoToWire(u UTxO) []utxoEntry {
	keys := u.SortedKeys()
	entries := make([]utxoEntry, len(keys))
	for i, in := range keys {
		entries[i] = utxoEntry{In: in, Out: u[in]}
	}
	return entries
}

func utxoFromWire(entries []utxoEntry) UTxO {
	u := make(UTxO, len(entries))
	for _, e := range entries {
		u[e.In] = e.Out
	}
	return u
}

// commitDatumWire is the wire projection of CommitDatum.
type commitDatumWire struct {
	HeadId    HeadId
	Party     Party
	Committed []utxoEntry
}

// EncodeCommitDatum serializes a CommitDatum to its on-chain datum bytes.
func EncodeCommitDatum(d CommitDatum) ([]byte, error) {
	wire := commitDatumWire{
		HeadId:    d.HeadId,
		Party:     d.Party,
		Committed: utxoToWire(d.Committed),
	}
	return encode(datumKindCommit, wire)
}

// EncodeUTxO serializes a UTxO set to ledger-CBOR bytes, the format used
// for the persisted ChainStateHistory layout.
func EncodeUTxO(u UTxO) ([]byte, error) {
	out, err := canonicalEncMode.Marshal(utxoToWire(u))
	if err != nil {
		return nil, fmt.Errorf("encode utxo: %w", err)
	}
	return out, nil
}

// DecodeUTxO parses ledger-CBOR bytes produced by EncodeUTxO back into a
// UTxO set.
func DecodeUTxO(raw []byte) (UTxO, error) {
	var entries []utxoEntry
	if err := cbor.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode utxo: %w", err)
	}
	return utxoFromWire(entries), nil
}

func decodeEnvelope(raw []byte) (envelope, error) {
	var env envelope
	if err := cbor.Unmarshal(raw, &env); err != nil {
		return envelope{}, fmt.Errorf("decode datum envelope: %w", err)
	}
	return env, nil
}

// DecodeThreadDatum decodes raw as a ThreadDatum, or reports ok=false if raw
// does not carry a thread datum envelope.
func DecodeThreadDatum(raw []byte) (d ThreadDatum, ok bool) {
	env, err := decodeEnvelope(raw)
	if err != nil || env.Kind != datumKindThread {
		return ThreadDatum{}, false
	}
	var wire threadDatumWire
	if err := cbor.Unmarshal(env.Payload, &wire); err != nil {
		return ThreadDatum{}, false
	}
	d = ThreadDatum{
		Stage:              wire.Stage,
		HeadId:             wire.HeadId,
		Parties:            wire.Parties,
		ContestationPeriod: wire.ContestationPeriod,
		SnapshotNumber:     wire.SnapshotNumber,
	}
	if wire.ContestationDeadline != 0 {
		d.ContestationDeadline = time.UnixMilli(wire.ContestationDeadline).UTC()
	}
	return d, true
}

// DecodeInitialDatum decodes raw as an InitialDatum, or reports ok=false if
// raw does not carry an initial datum envelope.
func DecodeInitialDatum(raw []byte) (d InitialDatum, ok bool) {
	env, err := decodeEnvelope(raw)
	if err != nil || env.Kind != datumKindInitial {
		return InitialDatum{}, false
	}
	if err := cbor.Unmarshal(env.Payload, &d); err != nil {
		return InitialDatum{}, false
	}
	return d, true
}

// DecodeCommitDatum decodes raw as a CommitDatum, or reports ok=false if raw
// does not carry a commit datum envelope.
func DecodeCommitDatum(raw []byte) (d CommitDatum, ok bool) {
	env, err := decodeEnvelope(raw)
	if err != nil || env.Kind != datumKindCommit {
		return CommitDatum{}, false
	}
	var wire commitDatumWire
	if err := cbor.Unmarshal(env.Payload, &wire); err != nil {
		return CommitDatum{}, false
	}
	return CommitDatum{
		HeadId:    wire.HeadId,
		Party:     wire.Party,
		Committed: utxoFromWire(wire.Committed),
	}, true
}
