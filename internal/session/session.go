// internal/session/session.go
//
// Session engine for one assisted Wordle game.
// Responsibilities:
//   - Create new sessions with deterministic dimensions (6x5) and a
//     validated ranking configuration.
//   - Validate and apply reported feedback (guess + labels).
//   - Track state transitions: solving → solved/exhausted.
//   - Produce ranked next-guess suggestions from the solver core.
//
// The session never knows the answer; everything it learns arrives as
// player-reported feedback.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/robquist/wordlehint/internal/solver"
	"github.com/robquist/wordlehint/internal/words"
)

const (
	defaultRows = solver.MaxTurns
	defaultCols = solver.WordLen
)

// New constructs a session for the given ranking configuration.
// Fails with solver.ErrInvalidParameter on an unknown criterion or a
// lambda outside [0,1].
func New(criterion solver.Criterion, lambda float64) (*Session, error) {
	cfg := solver.Config{Criterion: criterion, Lambda: lambda}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Session{
		ID:        randomID(),
		Criterion: criterion,
		Lambda:    lambda,
		Rows:      defaultRows,
		Cols:      defaultCols,
		State:     solver.NewState(),
		Guesses:   []string{},
	}, nil
}

// ApplyFeedback records one turn: the guess the player entered and the
// 0/1/2 labels the puzzle returned. Returns the new status string.
//
// Validation rules:
//   - Session must not be finished; updating past an exhausted session
//     surfaces solver.ErrMaxTurns.
//   - Guess must be exactly Cols letters, alphabetic a-z.
//   - Labels must parse (solver.ErrInvalidFeedback otherwise).
//
// State transitions:
//   - All labels correct → Finished, Solved.
//   - Sixth unsolved turn → Finished (exhausted).
func (s *Session) ApplyFeedback(guess, labels string) (string, error) {
	if s.Finished {
		if !s.Solved {
			return s.status(), solver.ErrMaxTurns
		}
		return s.status(), errors.New("session finished")
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != s.Cols || !isAlpha(guess) {
		return s.status(), errors.New("invalid guess")
	}
	parsed, err := solver.ParseLabels(labels)
	if err != nil {
		return s.status(), err
	}

	if solver.AllCorrect(parsed) {
		s.Guesses = append(s.Guesses, guess)
		s.Finished, s.Solved = true, true
		return s.status(), nil
	}

	err = s.State.Update(guess, parsed, true)
	if errors.Is(err, solver.ErrMaxTurns) {
		// Turn six came back wrong: the game is over and the sixth turn's
		// constraints have no further use.
		s.Guesses = append(s.Guesses, guess)
		s.Finished = true
		return s.status(), nil
	}
	if err != nil {
		return s.status(), err
	}
	s.Guesses = append(s.Guesses, guess)
	return s.status(), nil
}

// Suggest generates the remaining candidates and ranks them under the
// session's criterion. Returns at most limit suggestions (everything when
// limit <= 0) plus the total candidate count before truncation.
func (s *Session) Suggest(corpus *words.Corpus, limit int, progress func(scored, total int)) ([]solver.ScoredGuess, int, error) {
	res, err := solver.Generate(s.State, corpus.Words)
	if err != nil {
		return nil, 0, err
	}
	cfg := solver.Config{Criterion: s.Criterion, Lambda: s.Lambda, Progress: progress}
	ranked, err := solver.Rank(res, s.State, corpus.Words, corpus.Freq, cfg)
	if err != nil {
		return nil, 0, err
	}
	total := len(ranked)
	if limit > 0 && limit < total {
		ranked = ranked[:limit]
	}
	return ranked, total, nil
}

// Turn reports the current 1-based turn number.
func (s *Session) Turn() int { return s.State.Turn() }

// status reports a coarse string representation of the session state.
func (s *Session) status() string {
	if s.Finished {
		if s.Solved {
			return StatusSolved
		}
		return StatusExhausted
	}
	return StatusSolving
}

// Status is the exported view of status.
func (s *Session) Status() string { return s.status() }

// isAlpha checks that a string consists only of lowercase a-z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
