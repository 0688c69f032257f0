// internal/solver/errors.go
//
// Sentinel errors shared across the solver core.
// Callers are expected to match with errors.Is; wrapped variants carry
// the offending letter/position/value for logging.

package solver

import "errors"

var (
	// ErrContradiction means the accumulated (or hypothetical) feedback is
	// unsatisfiable: a misplaced letter has no open position left, or a
	// position would need to hold two different letters. Never auto-corrected.
	ErrContradiction = errors.New("solver: contradictory feedback")

	// ErrMaxTurns means an update was attempted past the six-turn bound.
	ErrMaxTurns = errors.New("solver: maximum number of turns exceeded")

	// ErrInvalidFeedback means a feedback sequence was not exactly five
	// symbols over {absent, misplaced, correct}.
	ErrInvalidFeedback = errors.New("solver: invalid feedback")

	// ErrInvalidParameter means a ranking parameter was out of range
	// (lambda outside [0,1]) or the criterion is unknown.
	ErrInvalidParameter = errors.New("solver: invalid parameter")

	// ErrNoCandidates means generation matched zero dictionary words. The
	// constraints may be individually satisfiable; the dictionary just has
	// no word left that fits all of them.
	ErrNoCandidates = errors.New("solver: no candidates remain")
)
