// internal/session/types.go
//
// Core type definitions for an assisted solving session.
// Defines:
//   - Session: state for a single in-progress or finished assisted game.
//   - Status constants reported to callers after each feedback update.

package session

import "github.com/robquist/wordlehint/internal/solver"

// Status strings reported by ApplyFeedback.
const (
	StatusSolving   = "solving"   // turns remain, puzzle not solved
	StatusSolved    = "solved"    // last feedback was all-correct
	StatusExhausted = "exhausted" // six turns spent without solving
)

// Session holds the state of one assisted game.
type Session struct {
	ID        string           // unique session identifier (random hex string)
	Criterion solver.Criterion // ranking strategy for suggestions
	Lambda    float64          // blend weight (combined criterion only)
	Rows      int              // maximum number of turns (typically 6)
	Cols      int              // letters per word (typically 5)
	State     *solver.State    // accumulated feedback constraints
	Guesses   []string         // guesses reported so far (lowercased)
	Finished  bool             // true once the session is over
	Solved    bool             // true if the session finished with a win
}
