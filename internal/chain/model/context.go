package model

import "crypto/ed25519"

// NetworkId distinguishes chains/networks a Head might run on (mainnet,
// testnet, a devnet...). Transaction observers use it to avoid matching
// outputs that merely look like Head outputs on a different network.
type NetworkId uint32

// ScriptHashes names the opaque on-chain validators this Head's
// transactions reference: the thread ("head"), "initial" and "commit"
// script hashes. Scripts themselves are out of scope; only their
// hashes and known datum/redeemer shapes matter here.
type ScriptHashes struct {
	Head    [28]byte
	Initial [28]byte
	Commit  [28]byte
}

// ChainContext is immutable per-Head configuration, created once at node
// start and never mutated. It carries only
// our own key material: all parties' verification keys travel explicitly
// with the InitTx request instead of living here.
type ChainContext struct {
	NetworkId          NetworkId
	OwnParty           Party
	OwnParticipantId   [28]byte
	OwnVerificationKey ed25519.PublicKey
	OwnSigningKey      ed25519.PrivateKey
	ContestationPeriod ContestationPeriod
	Scripts            ScriptHashes
}
