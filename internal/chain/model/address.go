package model

import (
	"encoding/hex"
	"fmt"
)

// ScriptAddress derives a deterministic address string for a script hash on
// a given network. Real bech32 address encoding is a ledger-level concern
// this module does not re-implement; this stand-in is stable
// and collision-free, which is all the observers and constructors need to
// recognize "the thread output" / "an initial output" / "a commit output"
// by address.
func ScriptAddress(network NetworkId, scriptHash [28]byte) string {
	return fmt.Sprintf("script1%d%s", network, hex.EncodeToString(scriptHash[:]))
}

// PartyAddress derives a deterministic address string for a party's
// verification key on a given network, used for refund/fanout outputs that
// return value to an original owner.
func PartyAddress(network NetworkId, party Party) string {
	return fmt.Sprintf("addr1%d%s", network, hex.EncodeToString(party.VerificationKey))
}
