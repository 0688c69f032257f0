// internal/solver/state.go
//
// Constraint state accumulated across turns.
// Tracks three kinds of knowledge extracted from feedback:
//   - eliminated: letters reported absent (one global flag per letter; a
//     duplicate letter that is grey in one slot and yellow in another is a
//     known modeling limitation, inherited from the feedback encoding).
//   - fixed:      letters confirmed at a position (green).
//   - triedYellow: misplaced letters mapped to the set of positions at
//     which they have already been tried and rejected.
//
// The state is mutated once per turn by Update and deep-copied by Clone
// whenever a ranking strategy needs to simulate a hypothetical future turn.

package solver

import "fmt"

// State holds everything learned from feedback so far.
type State struct {
	turn        int                      // current turn, 1-based
	eliminated  [26]bool                 // letters confirmed absent
	fixed       [WordLen]byte            // green letters; 0 means unknown
	triedYellow map[byte]map[int]struct{} // yellow letter -> rejected positions
}

// NewState returns the empty state for turn one.
func NewState() *State {
	return &State{
		turn:        1,
		triedYellow: make(map[byte]map[int]struct{}),
	}
}

// Turn reports the current 1-based turn number.
func (s *State) Turn() int { return s.turn }

// Fixed returns the green letters per position (0 where unknown).
func (s *State) Fixed() [WordLen]byte { return s.fixed }

// Eliminated reports whether a letter has been confirmed absent.
func (s *State) Eliminated(letter byte) bool {
	if letter < 'a' || letter > 'z' {
		return false
	}
	return s.eliminated[letter-'a']
}

// YellowLetters returns the tracked misplaced letters in ascending order.
func (s *State) YellowLetters() []byte {
	out := make([]byte, 0, len(s.triedYellow))
	for l := byte('a'); l <= 'z'; l++ {
		if _, ok := s.triedYellow[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Update applies one turn's feedback, label by label.
//
// Grey letters join the eliminated set, yellow letters record the rejected
// position, and green letters pin the position. A green conflicting with an
// already-fixed different letter fails with ErrContradiction. When a letter
// becomes fixed it no longer needs position-exclusion tracking and is
// dropped from the yellow map.
//
// When advanceTurn is set the turn counter is incremented first; updating
// past turn six fails with ErrMaxTurns before any constraint is recorded.
func (s *State) Update(guess string, labels []Label, advanceTurn bool) error {
	if len(guess) != WordLen || len(labels) != WordLen {
		return fmt.Errorf("%w: guess and labels must have %d positions", ErrInvalidFeedback, WordLen)
	}
	if advanceTurn {
		if s.turn == MaxTurns {
			return ErrMaxTurns
		}
		s.turn++
	}
	// Greys first, then yellows, then greens; the order matters for words
	// carrying the same letter under different labels.
	for pos := 0; pos < WordLen; pos++ {
		if labels[pos] == LabelAbsent {
			s.eliminated[guess[pos]-'a'] = true
		}
	}
	for pos := 0; pos < WordLen; pos++ {
		if labels[pos] == LabelMisplaced {
			letter := guess[pos]
			if s.triedYellow[letter] == nil {
				s.triedYellow[letter] = make(map[int]struct{})
			}
			s.triedYellow[letter][pos] = struct{}{}
		}
	}
	for pos := 0; pos < WordLen; pos++ {
		if labels[pos] != LabelCorrect {
			continue
		}
		letter := guess[pos]
		if s.fixed[pos] != 0 {
			if s.fixed[pos] != letter {
				return fmt.Errorf("%w: position %d fixed to %q, feedback says %q",
					ErrContradiction, pos, s.fixed[pos], letter)
			}
			continue // re-confirmation is a no-op
		}
		s.fixed[pos] = letter
		delete(s.triedYellow, letter) // resolved; no more exclusion tracking
	}
	return nil
}

// Clone returns an independent deep copy sharing no mutable state with the
// original. Used exclusively for speculative simulation.
func (s *State) Clone() *State {
	c := &State{
		turn:        s.turn,
		eliminated:  s.eliminated,
		fixed:       s.fixed,
		triedYellow: make(map[byte]map[int]struct{}, len(s.triedYellow)),
	}
	for letter, tried := range s.triedYellow {
		cp := make(map[int]struct{}, len(tried))
		for pos := range tried {
			cp[pos] = struct{}{}
		}
		c.triedYellow[letter] = cp
	}
	return c
}

// OpenPositions returns the positions where a yellow letter could still
// live: not fixed to any letter and not in this letter's rejected set.
// Positions come back in ascending order.
func (s *State) OpenPositions(letter byte) []int {
	tried := s.triedYellow[letter]
	open := make([]int, 0, WordLen)
	for pos := 0; pos < WordLen; pos++ {
		if s.fixed[pos] != 0 {
			continue
		}
		if _, rejected := tried[pos]; rejected {
			continue
		}
		open = append(open, pos)
	}
	return open
}

// triedYellowsAt reports, per letter, whether it was tried-and-rejected at
// the given position. Used when building per-position allowed sets.
func (s *State) triedYellowsAt(pos int) [26]bool {
	var out [26]bool
	for letter, tried := range s.triedYellow {
		if _, ok := tried[pos]; ok {
			out[letter-'a'] = true
		}
	}
	return out
}
