// internal/solver/rank.go
//
// Ranking engine.
// Scores the current candidate set under a selectable criterion and returns
// an ordered (word, score) list. Two of the strategies simulate a
// hypothetical next turn per candidate: assume the guess is wrong wherever
// the answer is not already pinned, regenerate, and measure what remains.
// Those passes are O(n²) in the candidate count, so they report progress
// through an optional callback every progressEvery scored guesses.

package solver

import (
	"errors"
	"fmt"
	"sort"
)

// Criterion selects a ranking strategy.
type Criterion string

const (
	// WordFrequency ranks by corpus frequency, most common first.
	WordFrequency Criterion = "word_frequency"
	// CharacterFrequency ranks by summed per-position letter frequency over
	// the unresolved positions of the current candidate set.
	CharacterFrequency Criterion = "char_frequency"
	// SearchSpaceReduction ranks by the fraction of the candidate set a
	// guess would eliminate if it turned out entirely wrong.
	SearchSpaceReduction Criterion = "space_reduction"
	// CombinedLambda blends space reduction and word frequency:
	// lambda*reduction + (1-lambda)*frequency.
	CombinedLambda Criterion = "combined"
	// NextGuessFrequency ranks ascending by how often a guess survives in
	// the simulated next-turn pools of all guesses: a guess that, if wrong,
	// rarely remains a candidate ranks first.
	NextGuessFrequency Criterion = "next_guess"
)

// progressEvery is the simulation count between progress notifications.
const progressEvery = 100

// Config selects and parameterizes a ranking strategy.
type Config struct {
	Criterion Criterion
	// Lambda weights space reduction against word frequency; only read by
	// CombinedLambda and must lie in [0,1].
	Lambda float64
	// Progress, when non-nil, is invoked during O(n²) scoring passes with
	// (scored, total). A side channel only; never affects results.
	Progress func(scored, total int)
}

// Validate checks criterion and parameters, returning ErrInvalidParameter
// on anything out of range.
func (c Config) Validate() error {
	switch c.Criterion {
	case WordFrequency, CharacterFrequency, SearchSpaceReduction, NextGuessFrequency:
		return nil
	case CombinedLambda:
		if c.Lambda < 0 || c.Lambda > 1 {
			return fmt.Errorf("%w: lambda %v outside [0,1]", ErrInvalidParameter, c.Lambda)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown criterion %q", ErrInvalidParameter, c.Criterion)
}

// ParseCriterion maps a config string to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch Criterion(s) {
	case WordFrequency, CharacterFrequency, SearchSpaceReduction, CombinedLambda, NextGuessFrequency:
		return Criterion(s), nil
	}
	return "", fmt.Errorf("%w: unknown criterion %q", ErrInvalidParameter, s)
}

// ScoredGuess is one ranked suggestion. Reduction and Frequency carry the
// component scores when the chosen strategy computed them, for display.
type ScoredGuess struct {
	Word      string  `json:"word"`
	Score     float64 `json:"score"`
	Reduction float64 `json:"reduction,omitempty"`
	Frequency float64 `json:"frequency,omitempty"`
}

// Rank orders the generated candidates under cfg. The state is never
// mutated; simulating strategies work on clones. Frequencies absent from
// freq default to zero.
func Rank(res Result, st *State, dictionary []string, freq map[string]float64, cfg Config) ([]ScoredGuess, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cands := res.Candidates

	switch cfg.Criterion {
	case WordFrequency:
		out := make([]ScoredGuess, len(cands))
		for i, w := range cands {
			out[i] = ScoredGuess{Word: w, Score: freq[w], Frequency: freq[w]}
		}
		sortDescending(out)
		return out, nil

	case CharacterFrequency:
		out := charFrequencyScores(res, st)
		sortDescending(out)
		return out, nil

	case SearchSpaceReduction:
		redux, err := spaceReduction(res, st, dictionary, cfg.Progress)
		if err != nil {
			return nil, err
		}
		out := make([]ScoredGuess, len(cands))
		for i, w := range cands {
			out[i] = ScoredGuess{Word: w, Score: redux[w], Reduction: redux[w]}
		}
		sortDescending(out)
		return out, nil

	case CombinedLambda:
		redux, err := spaceReduction(res, st, dictionary, cfg.Progress)
		if err != nil {
			return nil, err
		}
		out := make([]ScoredGuess, len(cands))
		for i, w := range cands {
			out[i] = ScoredGuess{
				Word:      w,
				Score:     cfg.Lambda*redux[w] + (1-cfg.Lambda)*freq[w],
				Reduction: redux[w],
				Frequency: freq[w],
			}
		}
		sortDescending(out)
		return out, nil

	case NextGuessFrequency:
		pool, err := nextGuessPool(res, st, dictionary, cfg.Progress)
		if err != nil {
			return nil, err
		}
		out := make([]ScoredGuess, len(cands))
		for i, w := range cands {
			out[i] = ScoredGuess{Word: w, Score: float64(pool[w])}
		}
		// Lower residual presence ranks first; the one ascending strategy.
		sortAscending(out)
		return out, nil
	}
	return nil, fmt.Errorf("%w: unknown criterion %q", ErrInvalidParameter, cfg.Criterion)
}

// charFrequencyScores sums, over the unresolved positions, the empirical
// frequency of each candidate's letter at that position across the current
// candidate set.
func charFrequencyScores(res Result, st *State) []ScoredGuess {
	cands := res.Candidates
	n := float64(len(cands))
	var positional [WordLen][26]float64
	for _, w := range cands {
		for pos := 0; pos < WordLen; pos++ {
			positional[pos][w[pos]-'a']++
		}
	}
	out := make([]ScoredGuess, len(cands))
	for i, w := range cands {
		var score float64
		for pos := 0; pos < WordLen; pos++ {
			if res.resolved(st, pos) {
				continue
			}
			score += positional[pos][w[pos]-'a'] / n
		}
		out[i] = ScoredGuess{Word: w, Score: score}
	}
	return out
}

// hypotheticalLabels builds the all-wrong-but-compatible feedback for a
// simulated turn: correct at every resolved position, absent elsewhere.
func hypotheticalLabels(res Result, st *State) []Label {
	labels := make([]Label, WordLen)
	for pos := 0; pos < WordLen; pos++ {
		if res.resolved(st, pos) {
			labels[pos] = LabelCorrect
		}
	}
	return labels
}

// simulate applies the all-wrong outcome of one guess to a cloned state and
// returns the words that would remain. An empty remainder is a valid
// outcome here, not an error: it means the guess fully resolves the space.
func simulate(guess string, labels []Label, st *State, dictionary []string) ([]string, error) {
	next := st.Clone()
	if err := next.Update(guess, labels, false); err != nil {
		return nil, err
	}
	nextRes, err := Generate(next, dictionary)
	if err != nil && !errors.Is(err, ErrNoCandidates) {
		return nil, err
	}
	return nextRes.Candidates, nil
}

// spaceReduction scores every candidate by the fraction of the current
// search space its all-wrong outcome would eliminate.
func spaceReduction(res Result, st *State, dictionary []string, progress func(int, int)) (map[string]float64, error) {
	labels := hypotheticalLabels(res, st)
	n := len(res.Candidates)
	redux := make(map[string]float64, n)
	for i, g := range res.Candidates {
		remaining, err := simulate(g, labels, st, dictionary)
		if err != nil {
			return nil, fmt.Errorf("simulating guess %q: %w", g, err)
		}
		redux[g] = float64(n-len(remaining)) / float64(n)
		notifyProgress(progress, i+1, n)
	}
	return redux, nil
}

// nextGuessPool aggregates, across the all-wrong simulations of every
// candidate, how often each candidate is still standing afterwards.
func nextGuessPool(res Result, st *State, dictionary []string, progress func(int, int)) (map[string]int, error) {
	labels := hypotheticalLabels(res, st)
	n := len(res.Candidates)
	pool := make(map[string]int, n)
	for i, g := range res.Candidates {
		remaining, err := simulate(g, labels, st, dictionary)
		if err != nil {
			return nil, fmt.Errorf("simulating guess %q: %w", g, err)
		}
		for _, w := range remaining {
			pool[w]++
		}
		notifyProgress(progress, i+1, n)
	}
	return pool, nil
}

// notifyProgress fires the callback every progressEvery guesses and once at
// the end of the pass.
func notifyProgress(progress func(int, int), scored, total int) {
	if progress == nil {
		return
	}
	if scored%progressEvery == 0 || scored == total {
		progress(scored, total)
	}
}

// sortDescending orders by score high-to-low, ties broken by ascending
// word. The shared tie-break is what lets CombinedLambda collapse exactly
// to its endpoints at lambda 0 and 1.
func sortDescending(s []ScoredGuess) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Score != s[j].Score {
			return s[i].Score > s[j].Score
		}
		return s[i].Word < s[j].Word
	})
}

// sortAscending orders by score low-to-high, ties broken by ascending word.
func sortAscending(s []ScoredGuess) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Score != s[j].Score {
			return s[i].Score < s[j].Score
		}
		return s[i].Word < s[j].Word
	})
}
