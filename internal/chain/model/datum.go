package model

import "time"

// ThreadStage discriminates the shape of the thread output's datum across
// the Head's lifecycle: the same output address carries different datum
// content at each stage.
type ThreadStage int

const (
	ThreadStageInitial ThreadStage = iota
	ThreadStageOpen
	ThreadStageClosed
)

// ThreadDatum is the datum attached to the Head's thread output. Which
// fields are meaningful depends on Stage: Initial carries Parties/CP/HeadId;
// Closed additionally carries the contested snapshot number and deadline.
type ThreadDatum struct {
	Stage                ThreadStage
	HeadId               HeadId
	Parties              []Party
	ContestationPeriod   ContestationPeriod
	SnapshotNumber       uint64
	ContestationDeadline time.Time
}

// InitialDatum is attached to a party's initial output created by InitTx,
// before that party commits. It records only which party owns the output,
// so committed value is always read back from on-chain commit datums.
type InitialDatum struct {
	HeadId HeadId
	Party  Party
}

// CommitDatum is attached to the commit output a party's CommitTx produces.
// It records the committing party and the UTxO value they locked, so
// CollectComTx can derive U0 directly from on-chain datums rather
// than from any in-memory bookkeeping.
type CommitDatum struct {
	HeadId    HeadId
	Party     Party
	Committed UTxO
}
