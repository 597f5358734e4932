package poster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Nilismith/hydra/internal/chain/chaintime"
	"github.com/Nilismith/hydra/internal/chain/config"
	"github.com/Nilismith/hydra/internal/chain/event"
	"github.com/Nilismith/hydra/internal/chain/model"
	"github.com/Nilismith/hydra/internal/chain/state"
	"github.com/Nilismith/hydra/internal/chain/txbuild"
)

// Poster implements ChainPoster: it reads the latest chain state,
// acquires a fresh TimeHandle, constructs the requested transaction, then
// balances, signs, and submits it. Poster holds no lock of its own: the
// state read and the construction do not run inside a critical section,
// and submission may block on network I/O.
type Poster struct {
	chainCtx   model.ChainContext
	state      *state.LocalChainState
	wallet     Wallet
	timeHandle chaintime.Provider
	submitter  Submitter

	logger  *zap.Logger
	metrics Metrics
}

// New builds a Poster scoped to one Head.
func New(
	chainCtx model.ChainContext,
	st *state.LocalChainState,
	wallet Wallet,
	timeHandle chaintime.Provider,
	submitter Submitter,
	metrics Metrics,
	logger *zap.Logger,
) *Poster {
	return &Poster{
		chainCtx:   chainCtx,
		state:      st,
		wallet:     wallet,
		timeHandle: timeHandle,
		submitter:  submitter,
		logger:     logger.Named("poster"),
		metrics:    metrics,
	}
}

// PostTx implements post_tx: construct, balance, sign, submit.
func (p *Poster) PostTx(ctx context.Context, req event.PostChainTx) (err error) {
	requestId := uuid.NewString()
	started := time.Now()
	defer func() { p.metrics.ObservePostTx(req.Tag.String(), err, started) }()

	logger := p.logger.With(zap.String("request_id", requestId), zap.String("tag", req.Tag.String()))
	logger.Info("post tx")

	chainState := p.state.GetLatest()
	handle, handleErr := p.timeHandle(ctx)
	if handleErr != nil {
		logger.Error("acquire time handle for post tx", zap.Error(handleErr))
		err = event.PostTxError{Kind: event.ErrInternalWalletError, FailureReason: handleErr.Error(), RequestId: requestId}
		return err
	}

	partial, knownUtxo, constructErr := p.construct(chainState, handle, req)
	if constructErr != nil {
		logger.Error("construct tx", zap.Error(constructErr))
		mapped := mapConstructionErr(req, constructErr, requestId)
		err = mapped
		return err
	}

	balanced, coverErr := p.wallet.CoverFee(ctx, knownUtxo, partial)
	if coverErr != nil {
		logger.Error("cover fee", zap.Error(coverErr))
		mapped := mapCoverFeeErr(coverErr, knownUtxo, partial, requestId)
		err = mapped
		return err
	}

	signed := p.wallet.Sign(ctx, balanced)

	if submitErr := p.submitter.SubmitTx(ctx, signed); submitErr != nil {
		logger.Error("submit tx", zap.Error(submitErr))
		err = event.PostTxError{
			Kind:          event.ErrInternalWalletError,
			FailureReason: submitErr.Error(),
			Tx:            signed,
			RequestId:     requestId,
		}
		return err
	}

	return nil
}

// construct dispatches req.Tag to the matching transaction constructor,
// returning the unbalanced draft plus the UTxO set the wallet should
// know about for fee/script pricing.
func (p *Poster) construct(chainState model.ChainStateAt, handle *chaintime.TimeHandle, req event.PostChainTx) (model.Tx, model.UTxO, error) {
	switch req.Tag {
	case event.RequestInit:
		return p.constructInit(req)
	case event.RequestAbort:
		return p.constructAbort(chainState, req)
	case event.RequestCollectCom:
		tx, err := txbuild.Collect(p.chainCtx, chainState)
		return tx, chainState.UTxO, err
	case event.RequestClose:
		return p.constructClose(chainState, handle, req)
	case event.RequestContest:
		return p.constructContest(chainState, handle, req)
	case event.RequestFanout:
		return p.constructFanout(chainState, handle, req)
	default:
		return model.Tx{}, nil, fmt.Errorf("post tx: unknown request tag %d", req.Tag)
	}
}

func (p *Poster) constructInit(req event.PostChainTx) (model.Tx, model.UTxO, error) {
	seedInput, ok := p.wallet.GetSeedInput()
	if !ok {
		return model.Tx{}, nil, errNoSeedInput{}
	}
	partyKeys := make([]model.PartyKeys, len(req.Params.Parties))
	for i, party := range req.Params.Parties {
		partyKeys[i] = model.PartyKeys{Party: party, VerificationKey: party.VerificationKey}
	}
	tx, err := txbuild.Initialize(p.chainCtx, req.Params, seedInput, partyKeys)
	return tx, p.wallet.GetUTxO(), err
}

func (p *Poster) constructAbort(chainState model.ChainStateAt, req event.PostChainTx) (model.Tx, model.UTxO, error) {
	headState := txbuild.DeriveHeadState(p.chainCtx, chainState)
	seedTxIn := model.HeadSeedToTxIn(req.HeadSeed)
	tx, err := txbuild.Abort(p.chainCtx, headState, chainState, seedTxIn)
	return tx, chainState.UTxO, err
}

func (p *Poster) constructClose(chainState model.ChainStateAt, handle *chaintime.TimeHandle, req event.PostChainTx) (model.Tx, model.UTxO, error) {
	currentSlot, _, err := handle.CurrentPointInTime()
	if err != nil {
		return model.Tx{}, nil, err
	}
	upperSlot, upperTime, err := upperBound(handle, req.Params.ContestationPeriod)
	if err != nil {
		return model.Tx{}, nil, err
	}
	tx, err := txbuild.Close(p.chainCtx, chainState, req.Params, req.ConfirmedSnapshot, currentSlot, upperSlot, upperTime)
	return tx, chainState.UTxO, err
}

func (p *Poster) constructContest(chainState model.ChainStateAt, handle *chaintime.TimeHandle, req event.PostChainTx) (model.Tx, model.UTxO, error) {
	upperSlot, upperTime, err := upperBound(handle, p.chainCtx.ContestationPeriod)
	if err != nil {
		return model.Tx{}, nil, err
	}
	tx, err := txbuild.Contest(p.chainCtx, chainState, req.ConfirmedSnapshot, upperSlot, upperTime)
	return tx, chainState.UTxO, err
}

func (p *Poster) constructFanout(chainState model.ChainStateAt, handle *chaintime.TimeHandle, req event.PostChainTx) (model.Tx, model.UTxO, error) {
	datum, ok := txbuild.ThreadDatumAt(p.chainCtx, chainState)
	if !ok {
		return model.Tx{}, nil, fmt.Errorf("fanout: no thread output found to read contestation deadline from")
	}
	deadlineSlot, err := handle.SlotFromUTC(datum.ContestationDeadline)
	if err != nil {
		return model.Tx{}, nil, fmt.Errorf("fanout: convert contestation deadline to slot: %w", err)
	}
	tx, err := txbuild.Fanout(p.chainCtx, chainState, req.UTxO, deadlineSlot)
	return tx, chainState.UTxO, err
}

// upperBound computes the validity-interval upper bound for a time-
// sensitive action: effectiveDelay = min(cp, maxGraceTime),
// upperTime = now + effectiveDelay, upperSlot = slot_from_utc(upperTime).
func upperBound(handle *chaintime.TimeHandle, cp model.ContestationPeriod) (model.Slot, time.Time, error) {
	_, now, err := handle.CurrentPointInTime()
	if err != nil {
		return 0, time.Time{}, err
	}
	upperTime := now.Add(cp.EffectiveDelay(config.MaxGraceTime))
	upperSlot, err := handle.SlotFromUTC(upperTime)
	if err != nil {
		return 0, time.Time{}, err
	}
	return upperSlot, upperTime, nil
}

// DraftCommitTx implements draft_commit_tx: builds CommitTx for
// userUtxo without balancing, signing, or submitting it — the caller is
// responsible for gathering the other parties' witnesses before posting.
func (p *Poster) DraftCommitTx(ctx context.Context, headId model.HeadId, userUtxo model.UTxO) (tx model.Tx, err error) {
	started := time.Now()
	defer func() { p.metrics.ObserveDraftCommit(err) }()

	chainState := p.state.GetLatest()
	walletUtxo := p.wallet.GetUTxO()

	tx, err = txbuild.Commit(p.chainCtx, headId, chainState, userUtxo, walletUtxo)
	if err != nil {
		p.logger.Error("draft commit tx", zap.Error(err), zap.Duration("elapsed", time.Since(started)))
		requestId := uuid.NewString()
		var forbidden txbuild.ErrSpendingNodeUtxoForbidden
		if errors.As(err, &forbidden) {
			err = event.PostTxError{Kind: event.ErrSpendingNodeUtxoForbidden, RequestId: requestId}
		} else {
			err = event.PostTxError{Kind: event.ErrInternalWalletError, FailureReason: err.Error(), RequestId: requestId}
		}
		return model.Tx{}, err
	}
	return tx, nil
}

// errNoSeedInput is returned when the wallet holds no UTxO suitable as an
// Init seed.
type errNoSeedInput struct{}

func (errNoSeedInput) Error() string { return "wallet holds no utxo suitable as an init seed" }
