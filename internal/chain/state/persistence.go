package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/Nilismith/hydra/internal/chain/model"
	"github.com/Nilismith/hydra/pkg/safe"
)

// EncodeRecord writes one ChainStateAt as a persisted record: slot
// (u64 big-endian), block hash (32 bytes, zero when unset), then a
// length-prefixed ledger-CBOR encoding of the utxo.
func EncodeRecord(w io.Writer, s model.ChainStateAt) error {
	var header [40]byte
	if s.RecordedAt != nil {
		binary.BigEndian.PutUint64(header[0:8], uint64(s.RecordedAt.Slot))
		copy(header[8:40], s.RecordedAt.BlockHash[:])
	}
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write record header: %w", err)
	}

	utxoBytes, err := model.EncodeUTxO(s.UTxO)
	if err != nil {
		return fmt.Errorf("encode record utxo: %w", err)
	}
	utxoLen, err := safe.Uint32(len(utxoBytes))
	if err != nil {
		return fmt.Errorf("record utxo too large: %w", err)
	}
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], utxoLen)
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("write record utxo length: %w", err)
	}
	if _, err := w.Write(utxoBytes); err != nil {
		return fmt.Errorf("write record utxo: %w", err)
	}
	return nil
}

// DecodeRecord reads one ChainStateAt back from its persisted form.
// A zero slot and block hash decode to RecordedAt = nil (the genesis
// record convention EncodeRecord writes).
func DecodeRecord(r io.Reader) (model.ChainStateAt, error) {
	var header [40]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return model.ChainStateAt{}, fmt.Errorf("read record header: %w", err)
	}
	slot := binary.BigEndian.Uint64(header[0:8])
	var blockHash [32]byte
	copy(blockHash[:], header[8:40])

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return model.ChainStateAt{}, fmt.Errorf("read record utxo length: %w", err)
	}
	utxoBytes := make([]byte, binary.BigEndian.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(r, utxoBytes); err != nil {
		return model.ChainStateAt{}, fmt.Errorf("read record utxo: %w", err)
	}
	utxo, err := model.DecodeUTxO(utxoBytes)
	if err != nil {
		return model.ChainStateAt{}, fmt.Errorf("decode record utxo: %w", err)
	}

	s := model.ChainStateAt{UTxO: utxo}
	if slot != 0 || blockHash != ([32]byte{}) {
		s.RecordedAt = &model.ChainPoint{Slot: model.Slot(slot), BlockHash: blockHash}
	}
	return s, nil
}

// SaveHistory writes every entry of h, newest last, as a length-prefixed
// sequence of records: a u32 entry count, then each EncodeRecord in
// turn.
func SaveHistory(w io.Writer, h model.ChainStateHistory) error {
	entries := h.Entries()
	count, err := safe.Uint32(len(entries))
	if err != nil {
		return fmt.Errorf("history too long to persist: %w", err)
	}
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], count)
	if _, err := w.Write(countBuf[:]); err != nil {
		return fmt.Errorf("write history entry count: %w", err)
	}
	for _, entry := range entries {
		if err := EncodeRecord(w, entry); err != nil {
			return err
		}
	}
	return nil
}

// LoadAppendedRecords reads a bare sequence of records (no leading
// count), as written incrementally by Persister, until r is exhausted.
// Used to recover the tail of an append-only log rather than a
// SaveHistory snapshot.
func LoadAppendedRecords(r io.Reader) ([]model.ChainStateAt, error) {
	var entries []model.ChainStateAt
	for {
		entry, err := DecodeRecord(r)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadHistory reads a history previously written by SaveHistory. On
// startup, the recovery point is the newest record with slot at or below
// the configured safety anchor — callers wanting an older anchor
// should truncate the entries slice before calling
// model.ChainStateHistoryFromSlice themselves; LoadHistory returns the
// full persisted sequence unmodified.
func LoadHistory(r io.Reader) (model.ChainStateHistory, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return model.ChainStateHistory{}, fmt.Errorf("read history entry count: %w", err)
	}
	count := binary.BigEndian.Uint32(countBuf[:])

	entries := make([]model.ChainStateAt, count)
	for i := range entries {
		entry, err := DecodeRecord(r)
		if err != nil {
			return model.ChainStateHistory{}, fmt.Errorf("read history entry %d: %w", i, err)
		}
		entries[i] = entry
	}
	return model.ChainStateHistoryFromSlice(entries)
}
