package observer

import (
	"github.com/Nilismith/hydra/internal/chain/event"
)

var tagToEventTag = map[Tag]event.ObservationTag{
	TagInit:       event.OnInitTx,
	TagCommit:     event.OnCommitTx,
	TagAbort:      event.OnAbortTx,
	TagCollectCom: event.OnCollectComTx,
	TagClose:      event.OnCloseTx,
	TagContest:    event.OnContestTx,
	TagFanout:     event.OnFanoutTx,
}

// ConvertObservation losslessly maps a HeadObservation to the upward-facing
// OnChainTx contract: Init carries {headId, headSeed, cp, parties};
// Close carries {headId, snapshotNumber, contestationDeadline}; Contest
// carries {snapshotNumber}; others carry only their tag plus whatever UTxO
// downstream needs.
func ConvertObservation(obs HeadObservation) (event.OnChainTx, bool) {
	tag, ok := tagToEventTag[obs.Tag]
	if !ok {
		return event.OnChainTx{}, false
	}
	return event.OnChainTx{
		Tag:                  tag,
		HeadId:               obs.HeadId,
		HeadSeed:             obs.HeadSeed,
		ContestationPeriod:   obs.ContestationPeriod,
		Parties:              obs.Parties,
		Party:                obs.Party,
		Committed:            obs.Committed,
		UTxO:                 obs.UTxO,
		SnapshotNumber:       obs.SnapshotNumber,
		ContestationDeadline: obs.ContestationDeadline,
	}, true
}
