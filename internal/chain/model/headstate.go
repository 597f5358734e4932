package model

import "fmt"

// HeadState names the abstract lifecycle state of a Head. It is
// carried alongside ChainStateAt by callers that need to know which
// transitions are currently legal (the transaction constructors).
type HeadState int

const (
	// StateIdle is the state before InitTx: no Head exists on chain yet.
	StateIdle HeadState = iota
	StateInitial
	StateOpen
	StateClosed
	// StateFanout is the terminal state reached after FanoutTx.
	StateFanout
	// StateAborted is the terminal state reached after AbortTx.
	StateAborted
)

// String renders a HeadState's name for logs and error messages.
func (s HeadState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateInitial:
		return "Initial"
	case StateOpen:
		return "Open"
	case StateClosed:
		return "Closed"
	case StateFanout:
		return "Fanout"
	case StateAborted:
		return "Aborted"
	default:
		return fmt.Sprintf("HeadState(%d)", int(s))
	}
}

// Terminal reports whether no further transition is legal from this state.
func (s HeadState) Terminal() bool {
	return s == StateFanout || s == StateAborted
}

// legalTransitions encodes the Head lifecycle state machine: which
// states a given source state may transition to via some Head transaction.
var legalTransitions = map[HeadState]map[HeadState]bool{
	StateIdle:    {StateInitial: true},
	StateInitial: {StateInitial: true, StateAborted: true, StateOpen: true},
	StateOpen:    {StateClosed: true},
	StateClosed:  {StateClosed: true, StateFanout: true},
}

// CanTransition reports whether moving from 'from' to 'to' is a legal Head
// lifecycle transition.
func CanTransition(from, to HeadState) bool {
	return legalTransitions[from][to]
}
