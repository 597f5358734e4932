package poster

import (
	"errors"

	"github.com/Nilismith/hydra/internal/chain/event"
	"github.com/Nilismith/hydra/internal/chain/model"
	"github.com/Nilismith/hydra/internal/chain/txbuild"
	"github.com/Nilismith/hydra/internal/chain/wallet"
)

// mapCoverFeeErr maps a wallet CoverFeeErr
// to the PostTxError surfaced to the caller: NoFuelUTxOFound -> NoFuelUTXOFound, NotEnoughFunds ->
// NotEnoughFuel, ScriptExecutionFailed -> ScriptFailedInWallet{ptr,
// reason}, everything else -> InternalWalletError{headUTxO, reason, tx}.
func mapCoverFeeErr(err error, headUTxO model.UTxO, tx model.Tx, requestId string) event.PostTxError {
	var noFuel wallet.ErrNoFuelUTxOFound
	if errors.As(err, &noFuel) {
		return event.PostTxError{Kind: event.ErrNoFuelUTXOFound, RequestId: requestId}
	}

	var notEnough wallet.ErrNotEnoughFunds
	if errors.As(err, &notEnough) {
		return event.PostTxError{Kind: event.ErrNotEnoughFuel, RequestId: requestId}
	}

	var scriptFailed wallet.ErrScriptExecutionFailed
	if errors.As(err, &scriptFailed) {
		return event.PostTxError{
			Kind:          event.ErrScriptFailedInWallet,
			RedeemerPtr:   scriptFailed.Ptr,
			FailureReason: scriptFailed.Reason,
			RequestId:     requestId,
		}
	}

	return event.PostTxError{
		Kind:          event.ErrInternalWalletError,
		HeadUTxO:      headUTxO,
		Tx:            tx,
		FailureReason: err.Error(),
		RequestId:     requestId,
	}
}

// mapConstructionErr maps a transaction constructor's typed error to the
// PostTxError surfaced to the caller. SpendingNodeUtxoForbidden, NoSeedInput
// and InvalidSeed failures get their own kinds whatever the request; any
// other failure of a Close or Abort gets that request's dedicated kind, and
// every remaining constructor failure surfaces as an InternalWalletError,
// the same catch-all used for unclassified wallet failures.
func mapConstructionErr(req event.PostChainTx, err error, requestId string) event.PostTxError {
	var forbidden txbuild.ErrSpendingNodeUtxoForbidden
	if errors.As(err, &forbidden) {
		return event.PostTxError{Kind: event.ErrSpendingNodeUtxoForbidden, RequestId: requestId}
	}

	var noSeed errNoSeedInput
	if errors.As(err, &noSeed) {
		return event.PostTxError{Kind: event.ErrNoSeedInput, RequestId: requestId}
	}

	var invalidSeed txbuild.ErrInvalidSeed
	if errors.As(err, &invalidSeed) {
		return event.PostTxError{
			Kind:      event.ErrInvalidSeed,
			HeadSeed:  req.HeadSeed,
			RequestId: requestId,
		}
	}

	switch req.Tag {
	case event.RequestClose:
		return event.PostTxError{Kind: event.ErrFailedToConstructCloseTx, FailureReason: err.Error(), RequestId: requestId}
	case event.RequestAbort:
		return event.PostTxError{Kind: event.ErrFailedToConstructAbortTx, FailureReason: err.Error(), RequestId: requestId}
	default:
		return event.PostTxError{Kind: event.ErrInternalWalletError, FailureReason: err.Error(), RequestId: requestId}
	}
}
