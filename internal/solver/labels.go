// internal/solver/labels.go
//
// Feedback label encoding.
// A turn's feedback is five symbols, one per guessed letter position:
//   - '0' absent    (grey):   letter not in the answer
//   - '1' misplaced (yellow): letter in the answer, wrong position
//   - '2' correct   (green):  letter in the right position
//
// The digit form is the wire/CLI encoding; Label is the in-memory enum.

package solver

import "fmt"

// WordLen is the fixed word length; every guess, answer, and feedback
// sequence has exactly this many positions.
const WordLen = 5

// MaxTurns is the number of completed turns a game allows.
const MaxTurns = 6

// Label is the evaluation result for a single letter of a guess.
type Label uint8

const (
	LabelAbsent    Label = iota // letter not in the answer
	LabelMisplaced              // letter present, wrong position
	LabelCorrect                // letter in the correct position
)

// String reports the human-readable label name.
func (l Label) String() string {
	switch l {
	case LabelAbsent:
		return "absent"
	case LabelMisplaced:
		return "misplaced"
	case LabelCorrect:
		return "correct"
	}
	return "unknown"
}

// ParseLabels converts a five-digit feedback string ("01210") into labels.
// Returns ErrInvalidFeedback for a wrong length or a symbol outside 0-2.
func ParseLabels(s string) ([]Label, error) {
	if len(s) != WordLen {
		return nil, fmt.Errorf("%w: expected %d symbols, got %d", ErrInvalidFeedback, WordLen, len(s))
	}
	out := make([]Label, WordLen)
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case '0':
			out[i] = LabelAbsent
		case '1':
			out[i] = LabelMisplaced
		case '2':
			out[i] = LabelCorrect
		default:
			return nil, fmt.Errorf("%w: symbol %q at position %d", ErrInvalidFeedback, s[i], i)
		}
	}
	return out, nil
}

// AllCorrect reports whether every label is LabelCorrect (a solved puzzle).
func AllCorrect(labels []Label) bool {
	if len(labels) != WordLen {
		return false
	}
	for _, l := range labels {
		if l != LabelCorrect {
			return false
		}
	}
	return true
}
