// Package wallet implements TinyWallet: tracking the UTxOs
// controlled by our payment key, covering transaction fees, balancing
// change, and signing.
package wallet

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/Nilismith/hydra/internal/chain/model"
)

// Metrics records wallet operation outcomes, one Observe-style method
// per operation.
type Metrics interface {
	ObserveCoverFee(err error, started time.Time)
	ObserveSign(started time.Time)
}

// TinyWallet owns a mutable snapshot of UTxOs addressable by our payment
// key plus the signing key, updated on every roll-forward.
type TinyWallet struct {
	mu sync.RWMutex

	network model.NetworkId
	address string

	signingKey      ed25519.PrivateKey
	verificationKey ed25519.PublicKey

	utxo model.UTxO

	logger  *zap.Logger
	metrics Metrics
}

// New constructs a TinyWallet for the given signing key and its starting
// UTxO snapshot.
func New(
	network model.NetworkId,
	signingKey ed25519.PrivateKey,
	initialUTxO model.UTxO,
	metrics Metrics,
	logger *zap.Logger,
) (*TinyWallet, error) {
	if len(signingKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid signing key size %d", len(signingKey))
	}
	if metrics == nil {
		return nil, fmt.Errorf("wallet metrics is required")
	}
	verificationKey := signingKey.Public().(ed25519.PublicKey)

	w := &TinyWallet{
		network:         network,
		signingKey:      signingKey,
		verificationKey: verificationKey,
		address:         model.PartyAddress(network, model.Party{VerificationKey: verificationKey}),
		utxo:            initialUTxO.Clone(),
		logger:          logger.Named("wallet"),
		metrics:         metrics,
	}
	return w, nil
}

// VerificationKey returns our wallet's verification key.
func (w *TinyWallet) VerificationKey() ed25519.PublicKey {
	return w.verificationKey
}

// Address returns the address our wallet controls.
func (w *TinyWallet) Address() string {
	return w.address
}

// GetUTxO returns a snapshot of the UTxOs controlled by our payment key.
func (w *TinyWallet) GetUTxO() model.UTxO {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.utxo.Clone()
}

// GetSeedInput returns any one controlled input suitable as the Head seed,
// or ok=false iff the wallet is empty.
func (w *TinyWallet) GetSeedInput() (in model.TxIn, ok bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	keys := w.utxo.SortedKeys()
	if len(keys) == 0 {
		return model.TxIn{}, false
	}
	return keys[0], true
}

// Sign attaches our witness to tx. Pure with respect to wallet state: it
// reads only the verification/signing key pair, never the mutable UTxO.
func (w *TinyWallet) Sign(ctx context.Context, tx model.Tx) model.Tx {
	started := time.Now()
	defer w.metrics.ObserveSign(started)

	signed := tx.Clone()
	message := txSigningPayload(signed)
	sig := ed25519.Sign(w.signingKey, message)
	signed.Witnesses = append(signed.Witnesses, model.Witness{
		VerificationKey: w.verificationKey,
		Signature:       sig,
	})
	return signed
}

// ApplyBlock updates the wallet's UTxO snapshot for one observed block: our
// spent inputs are removed, outputs newly paid to our address are added.
// Called by ChainSyncHandler on every roll-forward: wallet
// updates are applied only on roll-forward, between tx submissions, so
// CoverFee never races with an in-flight update.
func (w *TinyWallet) ApplyBlock(txs []model.Tx) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, tx := range txs {
		txId, err := model.ComputeTxId(tx)
		if err != nil {
			w.logger.Error("compute tx id while applying block to wallet", zap.Error(err))
			continue
		}
		for _, in := range tx.Inputs {
			delete(w.utxo, in)
		}
		for i, out := range tx.Outputs {
			if out.Address != w.address {
				continue
			}
			w.utxo[model.TxIn{TxId: chainhash.Hash(txId), Index: uint32(i)}] = out
		}
	}
}

// txSigningPayload returns the canonical bytes a witness signs: every
// field of tx except the witness list itself, so adding a witness never
// changes what earlier witnesses signed.
func txSigningPayload(tx model.Tx) []byte {
	unsigned := tx
	unsigned.Witnesses = nil
	return model.CanonicalBytes(unsigned)
}
