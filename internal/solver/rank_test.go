package solver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rankWords extracts just the word order from a ranking.
func rankWords(ranked []ScoredGuess) []string {
	out := make([]string, len(ranked))
	for i, g := range ranked {
		out[i] = g.Word
	}
	return out
}

// lightState is the classic scenario: guessed "light", only the first
// letter unknown.
func lightState(t *testing.T) (*State, []string) {
	t.Helper()
	dict := []string{"light", "night", "sight", "might", "tight"}
	st := NewState()
	require.NoError(t, st.Update("light", mustLabels(t, "02222"), true))
	return st, dict
}

func TestRankWordFrequency(t *testing.T) {
	st, dict := lightState(t)
	res, err := Generate(st, dict)
	require.NoError(t, err)

	freq := map[string]float64{"night": 0.9, "tight": 0.5, "sight": 0.5}
	ranked, err := Rank(res, st, dict, freq, Config{Criterion: WordFrequency})
	require.NoError(t, err)

	// Descending score; the 0.5 tie and the 0-score tail break alphabetically.
	assert.Equal(t, []string{"night", "sight", "tight", "might"}, rankWords(ranked))
	assert.Equal(t, 0.9, ranked[0].Score)
	assert.Equal(t, 0.0, ranked[3].Score)
}

func TestRankCharacterFrequency(t *testing.T) {
	st, dict := lightState(t)
	res, err := Generate(st, dict)
	require.NoError(t, err)

	ranked, err := Rank(res, st, dict, nil, Config{Criterion: CharacterFrequency})
	require.NoError(t, err)

	// Only position 0 is unresolved and every first letter is unique, so
	// all scores are 1/4 and order is alphabetical.
	assert.Equal(t, []string{"might", "night", "sight", "tight"}, rankWords(ranked))
	for _, g := range ranked {
		assert.InDelta(t, 0.25, g.Score, 1e-12)
	}
}

func TestRankCharacterFrequencySkipsResolvedPositions(t *testing.T) {
	st, dict := lightState(t)
	res, err := Generate(st, dict)
	require.NoError(t, err)

	ranked, err := Rank(res, st, dict, nil, Config{Criterion: CharacterFrequency})
	require.NoError(t, err)
	// Were the four resolved positions counted, every score would gain
	// 4.0 (those letters are shared by all candidates).
	for _, g := range ranked {
		assert.Less(t, g.Score, 1.0)
	}
}

func TestRankSearchSpaceReduction(t *testing.T) {
	// Asymmetric dictionary: words that, assumed wrong, eliminate
	// different numbers of others.
	dict := []string{"aaaaa", "aaaab", "bbbbb", "bbbbc"}
	st := NewState()
	res, err := Generate(st, dict)
	require.NoError(t, err)

	ranked, err := Rank(res, st, dict, nil, Config{Criterion: SearchSpaceReduction})
	require.NoError(t, err)

	// aaaab wrong eliminates a and b: nothing survives (score 1.0).
	// bbbbb / bbbbc wrong leave only aaaaa (score 0.75).
	// aaaaa wrong leaves bbbbb and bbbbc (score 0.5).
	assert.Equal(t, []string{"aaaab", "bbbbb", "bbbbc", "aaaaa"}, rankWords(ranked))
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-12)
	assert.InDelta(t, 0.75, ranked[1].Score, 1e-12)
	assert.InDelta(t, 0.75, ranked[2].Score, 1e-12)
	assert.InDelta(t, 0.5, ranked[3].Score, 1e-12)
}

func TestRankSearchSpaceReductionKeepsResolvedGreens(t *testing.T) {
	st, dict := lightState(t)
	res, err := Generate(st, dict)
	require.NoError(t, err)

	ranked, err := Rank(res, st, dict, nil, Config{Criterion: SearchSpaceReduction})
	require.NoError(t, err)

	// Each wrong guess eliminates exactly its own first letter: one word
	// gone out of four.
	for _, g := range ranked {
		assert.InDelta(t, 0.25, g.Score, 1e-12)
	}
}

func TestRankCombinedLambdaEndpoints(t *testing.T) {
	dict := []string{"aaaaa", "aaaab", "bbbbb", "bbbbc"}
	st := NewState()
	res, err := Generate(st, dict)
	require.NoError(t, err)

	// Frequencies deliberately disagree with space-reduction order.
	freq := map[string]float64{"aaaaa": 1.0, "bbbbc": 0.8, "bbbbb": 0.2}

	ssr, err := Rank(res, st, dict, freq, Config{Criterion: SearchSpaceReduction})
	require.NoError(t, err)
	wf, err := Rank(res, st, dict, freq, Config{Criterion: WordFrequency})
	require.NoError(t, err)

	atOne, err := Rank(res, st, dict, freq, Config{Criterion: CombinedLambda, Lambda: 1})
	require.NoError(t, err)
	atZero, err := Rank(res, st, dict, freq, Config{Criterion: CombinedLambda, Lambda: 0})
	require.NoError(t, err)

	assert.Equal(t, rankWords(ssr), rankWords(atOne))
	assert.Equal(t, rankWords(wf), rankWords(atZero))
	assert.NotEqual(t, rankWords(ssr), rankWords(wf))
}

func TestRankCombinedLambdaBlends(t *testing.T) {
	dict := []string{"aaaaa", "bbbbb"}
	st := NewState()
	res, err := Generate(st, dict)
	require.NoError(t, err)

	freq := map[string]float64{"aaaaa": 1.0, "bbbbb": 0.0}
	ranked, err := Rank(res, st, dict, freq, Config{Criterion: CombinedLambda, Lambda: 0.25})
	require.NoError(t, err)

	// Both guesses eliminate the other word: reduction 0.5 each.
	for _, g := range ranked {
		assert.InDelta(t, 0.25*0.5+0.75*freq[g.Word], g.Score, 1e-12)
	}
}

func TestRankInvalidParameters(t *testing.T) {
	st, dict := lightState(t)
	res, err := Generate(st, dict)
	require.NoError(t, err)

	_, err = Rank(res, st, dict, nil, Config{Criterion: CombinedLambda, Lambda: 1.5})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Rank(res, st, dict, nil, Config{Criterion: CombinedLambda, Lambda: -0.1})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = Rank(res, st, dict, nil, Config{Criterion: Criterion("bogus")})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = ParseCriterion("bogus")
	assert.ErrorIs(t, err, ErrInvalidParameter)
	c, err := ParseCriterion("combined")
	require.NoError(t, err)
	assert.Equal(t, CombinedLambda, c)
}

func TestRankNextGuessFrequencyAscending(t *testing.T) {
	dict := []string{"aaaaa", "aaaab", "bbbbb", "bbbbc"}
	st := NewState()
	res, err := Generate(st, dict)
	require.NoError(t, err)

	ranked, err := Rank(res, st, dict, nil, Config{Criterion: NextGuessFrequency})
	require.NoError(t, err)

	// Residual pool counts: aaaab never survives (0), bbbbb and bbbbc
	// survive once, aaaaa twice. Ascending, ties alphabetical.
	assert.Equal(t, []string{"aaaab", "bbbbb", "bbbbc", "aaaaa"}, rankWords(ranked))
	assert.Equal(t, 0.0, ranked[0].Score)
	assert.Equal(t, 2.0, ranked[3].Score)
}

func TestRankProgressCallback(t *testing.T) {
	// 26*10 words: enough candidates to cross the notification interval.
	dict := make([]string, 0, 260)
	for c1 := byte('a'); c1 <= 'z'; c1++ {
		for c2 := byte('a'); c2 < 'a'+10; c2++ {
			dict = append(dict, fmt.Sprintf("%c%c%c%c%c", c1, c2, c1, c2, c1))
		}
	}
	st := NewState()
	res, err := Generate(st, dict)
	require.NoError(t, err)

	var calls [][2]int
	cfg := Config{
		Criterion: SearchSpaceReduction,
		Progress:  func(scored, total int) { calls = append(calls, [2]int{scored, total}) },
	}
	_, err = Rank(res, st, dict, nil, cfg)
	require.NoError(t, err)

	assert.Equal(t, [][2]int{{100, 260}, {200, 260}, {260, 260}}, calls)
}

func TestRankDoesNotMutateState(t *testing.T) {
	st, dict := lightState(t)
	res, err := Generate(st, dict)
	require.NoError(t, err)

	before := st.Clone()
	_, err = Rank(res, st, dict, nil, Config{Criterion: NextGuessFrequency})
	require.NoError(t, err)

	assert.Equal(t, before.Turn(), st.Turn())
	assert.Equal(t, before.Fixed(), st.Fixed())
	again, err := Generate(st, dict)
	require.NoError(t, err)
	assert.Equal(t, res, again)
}
