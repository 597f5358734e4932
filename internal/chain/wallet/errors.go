package wallet

import "fmt"

// ErrNoFuelUTxOFound is returned when the wallet holds no UTxO besides
// those the partial transaction already spends, so there is nothing to
// cover fees with.
type ErrNoFuelUTxOFound struct{}

func (ErrNoFuelUTxOFound) Error() string {
	return "no fuel utxo found in wallet"
}

// ErrNotEnoughFunds is returned when the wallet's UTxO, even taken in
// full, falls short of outputs + worst-case fee.
type ErrNotEnoughFunds struct {
	Available uint64
	Required  uint64
}

func (e ErrNotEnoughFunds) Error() string {
	return fmt.Sprintf("not enough funds: available %d, required %d", e.Available, e.Required)
}

// ErrScriptExecutionFailed is returned when pricing a script-locked input's
// execution failed during fee estimation.
type ErrScriptExecutionFailed struct {
	Ptr    string
	Reason string
}

func (e ErrScriptExecutionFailed) Error() string {
	return fmt.Sprintf("script execution failed at %s: %s", e.Ptr, e.Reason)
}

// ErrOther wraps any other balancing failure that doesn't fit a more
// specific category.
type ErrOther struct {
	Reason string
}

func (e ErrOther) Error() string {
	return e.Reason
}
