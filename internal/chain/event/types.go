// Package event defines the Event API boundary: the PostChainTx
// request types accepted downward from the node core, the OnChainTx and
// ChainEvent types emitted upward, PostTxError, and an id-ordered event
// queue.
package event

import (
	"time"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// RequestTag names which protocol action a PostChainTx carries.
type RequestTag int

const (
	RequestInit RequestTag = iota
	RequestAbort
	RequestCollectCom
	RequestClose
	RequestContest
	RequestFanout
)

// String renders a RequestTag's name for logs and metric labels.
func (t RequestTag) String() string {
	switch t {
	case RequestInit:
		return "Init"
	case RequestAbort:
		return "Abort"
	case RequestCollectCom:
		return "CollectCom"
	case RequestClose:
		return "Close"
	case RequestContest:
		return "Contest"
	case RequestFanout:
		return "Fanout"
	default:
		return "UnknownRequest"
	}
}

// PostChainTx is a request from the node core to post one Head lifecycle
// transaction. Only the fields relevant to Tag are populated.
type PostChainTx struct {
	Tag RequestTag

	Params             model.HeadParameters
	UTxO               model.UTxO
	HeadSeed           model.HeadSeed
	HeadId             model.HeadId
	ConfirmedSnapshot  model.Snapshot
	ContestationPeriod model.ContestationPeriod
}

// ObservationTag names which Head lifecycle transition an OnChainTx
// reports, mirroring observer.Tag but stable as an upward-facing contract
// independent of the observer's internal representation.
type ObservationTag int

const (
	OnInitTx ObservationTag = iota
	OnCommitTx
	OnAbortTx
	OnCollectComTx
	OnCloseTx
	OnContestTx
	OnFanoutTx
)

// OnChainTx is the upward-facing, protocol-level classification of an
// observed transaction. convertObservation (in package observer)
// produces these losslessly from a HeadObservation.
type OnChainTx struct {
	Tag ObservationTag

	HeadId               model.HeadId
	HeadSeed             model.HeadSeed
	ContestationPeriod   model.ContestationPeriod
	Parties              []model.Party
	Party                model.Party
	Committed            model.UTxO
	UTxO                 model.UTxO
	SnapshotNumber       uint64
	ContestationDeadline time.Time
}

// ChainEventTag names which of the three upward event shapes a ChainEvent
// carries.
type ChainEventTag int

const (
	EventObservation ChainEventTag = iota
	EventRollback
	EventTick
)

// ChainEvent is one entry in the strictly-monotonic-id event queue ChainSyncHandler
// emits upward.
type ChainEvent struct {
	Id  uint64
	Tag ChainEventTag

	ObservedTx   OnChainTx
	NewState     model.ChainStateAt
	RolledBackTo model.ChainStateAt
	ChainTime    time.Time
	ChainSlot    model.Slot
}

// PostTxErrorKind enumerates the PostTxError variants.
type PostTxErrorKind int

const (
	ErrNoSeedInput PostTxErrorKind = iota
	ErrInvalidSeed
	ErrNoFuelUTXOFound
	ErrNotEnoughFuel
	ErrScriptFailedInWallet
	ErrInternalWalletError
	ErrFailedToConstructCloseTx
	ErrFailedToConstructAbortTx
	ErrSpendingNodeUtxoForbidden
)

// PostTxError is returned by ChainPoster.PostTx/DraftCommitTx.
type PostTxError struct {
	Kind PostTxErrorKind

	HeadSeed      model.HeadSeed
	RedeemerPtr   string
	FailureReason string
	HeadUTxO      model.UTxO
	Tx            model.Tx
	RequestId     string
}

func (e PostTxError) Error() string {
	if e.FailureReason != "" {
		return e.FailureReason
	}
	return e.Kind.String()
}

// String renders a PostTxErrorKind's name for logs and error messages.
func (k PostTxErrorKind) String() string {
	switch k {
	case ErrNoSeedInput:
		return "NoSeedInput"
	case ErrInvalidSeed:
		return "InvalidSeed"
	case ErrNoFuelUTXOFound:
		return "NoFuelUTXOFound"
	case ErrNotEnoughFuel:
		return "NotEnoughFuel"
	case ErrScriptFailedInWallet:
		return "ScriptFailedInWallet"
	case ErrInternalWalletError:
		return "InternalWalletError"
	case ErrFailedToConstructCloseTx:
		return "FailedToConstructCloseTx"
	case ErrFailedToConstructAbortTx:
		return "FailedToConstructAbortTx"
	case ErrSpendingNodeUtxoForbidden:
		return "SpendingNodeUtxoForbidden"
	default:
		return "UnknownPostTxError"
	}
}
