// Package chaintime converts between wall-clock time and ledger slots via a
// cached era-history summary.
package chaintime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// ErrPastHorizon is returned when a requested time or slot falls outside
// the interpretable window of the cached era history.
var ErrPastHorizon = errors.New("past horizon")

// EraSummary describes one era's slot/time correspondence: a fixed slot
// length starting at a known (slot, time) pair, valid until SafeHorizon.
type EraSummary struct {
	StartSlot  model.Slot
	StartTime  time.Time
	SlotLength time.Duration
	// SafeHorizon is the time beyond which this era's correspondence is no
	// longer guaranteed stable; requests past it fail with ErrPastHorizon.
	SafeHorizon time.Time
}

// slotToUTC converts a slot to UTC time within this era, or ErrPastHorizon
// if the result would fall beyond SafeHorizon.
func (e EraSummary) slotToUTC(slot model.Slot) (time.Time, error) {
	if slot < e.StartSlot {
		return time.Time{}, fmt.Errorf("%w: slot %d precedes era start %d", ErrPastHorizon, slot, e.StartSlot)
	}
	elapsed := time.Duration(slot-e.StartSlot) * e.SlotLength
	t := e.StartTime.Add(elapsed)
	if t.After(e.SafeHorizon) {
		return time.Time{}, fmt.Errorf("%w: slot %d resolves past safe horizon %s", ErrPastHorizon, slot, e.SafeHorizon)
	}
	return t, nil
}

// utcToSlot converts UTC time to a slot within this era, or ErrPastHorizon
// if t falls beyond SafeHorizon or before the era's start.
func (e EraSummary) utcToSlot(t time.Time) (model.Slot, error) {
	if t.Before(e.StartTime) {
		return 0, fmt.Errorf("%w: time %s precedes era start %s", ErrPastHorizon, t, e.StartTime)
	}
	if t.After(e.SafeHorizon) {
		return 0, fmt.Errorf("%w: time %s is past safe horizon %s", ErrPastHorizon, t, e.SafeHorizon)
	}
	elapsed := t.Sub(e.StartTime)
	return e.StartSlot + model.Slot(elapsed/e.SlotLength), nil
}

// EraHistory is the cached era-history summary backing a TimeHandle. A
// concrete implementation is supplied by the node; this module only
// consumes the interface.
type EraHistory interface {
	// SummaryForTime returns the era summary that covers t, or ErrPastHorizon.
	SummaryForTime(t time.Time) (EraSummary, error)
	// SummaryForSlot returns the era summary that covers slot, or ErrPastHorizon.
	SummaryForSlot(slot model.Slot) (EraSummary, error)
	// Now returns the current wall-clock time as the node sees it.
	Now() time.Time
}

// TimeHandle performs slot<->UTC conversion using a cached era history. A
// fresh handle must be acquired (via Provider) before each user-visible
// time computation so a stale cache can never silently produce a wrong
// deadline.
type TimeHandle struct {
	history EraHistory
}

// New wraps an EraHistory snapshot as a TimeHandle.
func New(history EraHistory) *TimeHandle {
	return &TimeHandle{history: history}
}

// CurrentPointInTime returns the current slot and UTC time together, both
// derived from the same era summary so they agree with each other.
func (h *TimeHandle) CurrentPointInTime() (model.Slot, time.Time, error) {
	now := h.history.Now()
	slot, err := h.SlotFromUTC(now)
	if err != nil {
		return 0, time.Time{}, err
	}
	return slot, now, nil
}

// SlotFromUTC converts a UTC time to a ledger slot.
func (h *TimeHandle) SlotFromUTC(t time.Time) (model.Slot, error) {
	summary, err := h.history.SummaryForTime(t)
	if err != nil {
		return 0, err
	}
	return summary.utcToSlot(t)
}

// SlotToUTC converts a ledger slot to UTC time.
func (h *TimeHandle) SlotToUTC(s model.Slot) (time.Time, error) {
	summary, err := h.history.SummaryForSlot(s)
	if err != nil {
		return time.Time{}, err
	}
	return summary.slotToUTC(s)
}

// Provider acquires a fresh TimeHandle. ChainPoster and
// ChainSyncHandler must call this before each user-visible time
// computation rather than reuse a handle across calls.
type Provider func(ctx context.Context) (*TimeHandle, error)
