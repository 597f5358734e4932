package txbuild

import "github.com/Nilismith/hydra/internal/chain/model"

// ThreadDatumAt returns the datum carried by chainState's current thread
// output, if one is present. ChainPoster uses it to read
// on-chain-recorded state (lifecycle stage, contestation deadline)
// without duplicating findThreadOutput's address/datum matching logic.
func ThreadDatumAt(ctx model.ChainContext, chainState model.ChainStateAt) (model.ThreadDatum, bool) {
	_, _, datum, ok := findThreadOutput(ctx, chainState.UTxO)
	return datum, ok
}

// DeriveHeadState reports the HeadState implied by chainState's thread
// output, for callers that must check a lifecycle precondition before
// invoking a constructor that takes an explicit HeadState (Abort). No
// thread output present is reported as StateIdle: that is both the true
// pre-Init state and the state after the thread token has been burned
// (Abort/Fanout), and every constructor's own "no thread output found"
// check already rejects those terminal cases with a more specific error
// than a HeadState mismatch would.
func DeriveHeadState(ctx model.ChainContext, chainState model.ChainStateAt) model.HeadState {
	datum, ok := ThreadDatumAt(ctx, chainState)
	if !ok {
		return model.StateIdle
	}
	switch datum.Stage {
	case model.ThreadStageInitial:
		return model.StateInitial
	case model.ThreadStageOpen:
		return model.StateOpen
	case model.ThreadStageClosed:
		return model.StateClosed
	default:
		return model.StateIdle
	}
}
