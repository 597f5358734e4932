package model

import "fmt"

// Slot is a ledger slot number, the chain's discrete unit of time.
type Slot uint64

// ChainSlot is an alias kept for call sites that read more naturally when
// talking about "the slot to roll back to" versus "a slot value" in general;
// it is the same underlying type as Slot.
type ChainSlot = Slot

// ChainPoint identifies a position on chain: a slot and the hash of the
// block at that slot.
type ChainPoint struct {
	Slot      Slot
	BlockHash [32]byte
}

// ChainStateAt is the Head-relevant UTxO slice as of a given chain point.
// RecordedAt is nil only for the genesis/initial state, before any block
// has been observed.
type ChainStateAt struct {
	UTxO       UTxO
	RecordedAt *ChainPoint
}

// slot returns the state's recorded slot, or 0 for the genesis state. Used
// by LocalChainState to enforce the strictly-increasing-slot invariant.
func (s ChainStateAt) slot() Slot {
	if s.RecordedAt == nil {
		return 0
	}
	return s.RecordedAt.Slot
}

// ChainStateHistory is an ordered, non-empty sequence of ChainStateAt,
// newest last. The head of the sequence (index 0) is a pinned safety
// anchor that is never rolled past; the tail (last index) is the current
// state.
type ChainStateHistory struct {
	entries []ChainStateAt
}

// NewChainStateHistory seeds a history with a single genesis/anchor entry.
func NewChainStateHistory(genesis ChainStateAt) ChainStateHistory {
	return ChainStateHistory{entries: []ChainStateAt{genesis}}
}

// ErrEmptyHistory is returned by operations that require at least one entry
// when constructing a ChainStateHistory from a raw slice fails that check.
var ErrEmptyHistory = fmt.Errorf("chain state history must contain at least one entry")

// ChainStateHistoryFromSlice validates and wraps a pre-built, newest-last
// sequence of states, as produced by deserializing the persisted layout.
// It returns ErrEmptyHistory if empty and an error if slots are not
// strictly increasing.
func ChainStateHistoryFromSlice(entries []ChainStateAt) (ChainStateHistory, error) {
	if len(entries) == 0 {
		return ChainStateHistory{}, ErrEmptyHistory
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].slot() <= entries[i-1].slot() {
			return ChainStateHistory{}, fmt.Errorf(
				"chain state history slots not strictly increasing at index %d: %d <= %d",
				i, entries[i].slot(), entries[i-1].slot(),
			)
		}
	}
	return ChainStateHistory{entries: append([]ChainStateAt(nil), entries...)}, nil
}

// Current returns the tail (most recent) entry.
func (h ChainStateHistory) Current() ChainStateAt {
	return h.entries[len(h.entries)-1]
}

// Anchor returns the pinned head (oldest) entry.
func (h ChainStateHistory) Anchor() ChainStateAt {
	return h.entries[0]
}

// Entries returns the full newest-last sequence. The returned slice shares
// no backing array with the receiver's internal state.
func (h ChainStateHistory) Entries() []ChainStateAt {
	return append([]ChainStateAt(nil), h.entries...)
}

// Len reports the number of entries in the history.
func (h ChainStateHistory) Len() int {
	return len(h.entries)
}

// WithPushed returns a new history with s appended, provided s.slot() is
// strictly greater than the current tail's slot. It does not mutate h.
func (h ChainStateHistory) WithPushed(s ChainStateAt) (ChainStateHistory, error) {
	if s.slot() <= h.Current().slot() {
		return ChainStateHistory{}, fmt.Errorf(
			"push_new: new state slot %d is not strictly greater than current slot %d",
			s.slot(), h.Current().slot(),
		)
	}
	entries := append(append([]ChainStateAt(nil), h.entries...), s)
	return ChainStateHistory{entries: entries}, nil
}

// WithRolledBackTo returns the history truncated to drop every entry with
// slot > toSlot, and the resulting current (last remaining) entry. If
// toSlot predates the pinned anchor, the history is truncated to the anchor
// alone, the anchor is returned as current, and hitAnchorLimit is true: the
// caller treats this as a hard rollback limit.
func (h ChainStateHistory) WithRolledBackTo(toSlot Slot) (history ChainStateHistory, current ChainStateAt, hitAnchorLimit bool) {
	if toSlot < h.Anchor().slot() {
		return ChainStateHistory{entries: []ChainStateAt{h.Anchor()}}, h.Anchor(), true
	}

	cut := len(h.entries)
	for cut > 1 && h.entries[cut-1].slot() > toSlot {
		cut--
	}
	entries := append([]ChainStateAt(nil), h.entries[:cut]...)
	newHistory := ChainStateHistory{entries: entries}
	return newHistory, newHistory.Current(), false
}
