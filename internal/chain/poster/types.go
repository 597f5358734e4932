// Package poster implements ChainPoster:
// accepting PostChainTx requests from the node core, constructing the
// matching transaction, balancing and signing it via the wallet, and
// submitting it through an injected Submitter.
package poster

import (
	"context"
	"time"

	"github.com/Nilismith/hydra/internal/chain/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Submitter pushes a fully balanced and signed transaction to the chain.
// Submission is best-effort: the poster does not retry; inclusion
// is confirmed only when ChainSyncHandler later observes the transaction
// on roll-forward.
type Submitter interface {
	SubmitTx(ctx context.Context, tx model.Tx) error
}

// Wallet is the subset of TinyWallet the poster needs: reading the
// controlled UTxO and a seed candidate, balancing a partial transaction,
// and signing the result.
type Wallet interface {
	GetUTxO() model.UTxO
	GetSeedInput() (model.TxIn, bool)
	CoverFee(ctx context.Context, knownUtxo model.UTxO, partial model.Tx) (model.Tx, error)
	Sign(ctx context.Context, tx model.Tx) model.Tx
}

// Metrics records ChainPoster operation outcomes.
type Metrics interface {
	ObservePostTx(tag string, err error, started time.Time)
	ObserveDraftCommit(err error)
}
