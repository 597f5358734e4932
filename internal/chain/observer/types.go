// Package observer implements the Transaction Observers: pure
// functions that classify an observed transaction as one of the Head
// lifecycle transitions, or as unrelated to any Head.
package observer

import (
	"time"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// Tag names which Head lifecycle transition, if any, a transaction was
// classified as.
type Tag int

const (
	TagNoHeadTx Tag = iota
	TagInit
	TagCommit
	TagAbort
	TagCollectCom
	TagClose
	TagContest
	TagFanout
)

// String renders a Tag's name for logs.
func (t Tag) String() string {
	switch t {
	case TagInit:
		return "Init"
	case TagCommit:
		return "Commit"
	case TagAbort:
		return "Abort"
	case TagCollectCom:
		return "CollectCom"
	case TagClose:
		return "Close"
	case TagContest:
		return "Contest"
	case TagFanout:
		return "Fanout"
	default:
		return "NoHeadTx"
	}
}

// HeadObservation is the result of classifying a transaction against a
// known Head UTxO set. Only the fields relevant to Tag are
// populated; zero values elsewhere.
type HeadObservation struct {
	Tag Tag

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
