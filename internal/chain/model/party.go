package model

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"time"
)

// ContestationPeriod is the time window after Close during which a higher
// snapshot may be posted via Contest. Invariant: 0 <= cp.
type ContestationPeriod time.Duration

// Validate checks that cp is non-negative. The maxGraceTime ceiling
// (200s default) applies only when the period is used as
// validity-interval slack, not as a bound on the period itself.
func (cp ContestationPeriod) Validate() error {
	if cp < 0 {
		return fmt.Errorf("contestation period %s must be non-negative", time.Duration(cp))
	}
	return nil
}

// Duration returns cp as a time.Duration.
func (cp ContestationPeriod) Duration() time.Duration {
	return time.Duration(cp)
}

// EffectiveDelay returns the smaller of cp and maxGraceTime, the upper-bound
// delay used to compute a time-sensitive transaction's validity interval
//.
func (cp ContestationPeriod) EffectiveDelay(maxGraceTime time.Duration) time.Duration {
	if cp.Duration() < maxGraceTime {
		return cp.Duration()
	}
	return maxGraceTime
}

// Party is an off-chain participant identity derived from an on-chain
// verification key. A Head has an ordered list of Parties fixed at Init.
type Party struct {
	VerificationKey ed25519.PublicKey
}

// Equal reports whether two Parties carry the same verification key.
func (p Party) Equal(other Party) bool {
	return bytes.Equal(p.VerificationKey, other.VerificationKey)
}

// Less orders Parties by verification key bytes, giving callers a
// deterministic ordering independent of slice construction order.
func (p Party) Less(other Party) bool {
	return bytes.Compare(p.VerificationKey, other.VerificationKey) < 0
}

// PartyKeys pairs a Party with the verification key material InitTx needs
// to build that party's initial output. It exists so initialize can be
// parameterized explicitly by per-request keys, rather than reading
// participant keys from ChainContext.
type PartyKeys struct {
	Party           Party
	VerificationKey ed25519.PublicKey
}

// HeadParameters are the parameters fixed at Init: the ordered party list
// and the contestation period.
type HeadParameters struct {
	Parties            []Party
	ContestationPeriod ContestationPeriod
}

// Validate checks HeadParameters invariants: at least one party, and a
// non-negative contestation period.
func (p HeadParameters) Validate() error {
	if len(p.Parties) == 0 {
		return fmt.Errorf("head parameters require at least one party")
	}
	return p.ContestationPeriod.Validate()
}

// Signature is a raw ed25519 signature over a Snapshot.
type Signature []byte

// Snapshot is an off-chain agreement on the Head's current UTxO set,
// numbered monotonically and signed by all parties.
type Snapshot struct {
	Number     uint64
	UTxO       UTxO
	Signatures map[string]Signature // keyed by the signing Party's verification key, hex-encoded
}

// Supersedes reports whether s has a strictly higher number than other,
// the rule used during contestation to accept a newer snapshot.
func (s Snapshot) Supersedes(other Snapshot) bool {
	return s.Number > other.Number
}
