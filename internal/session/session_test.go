package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robquist/wordlehint/internal/solver"
	"github.com/robquist/wordlehint/internal/words"
)

func testCorpus() *words.Corpus {
	return &words.Corpus{
		Words: []string{"light", "night", "sight", "might", "tight"},
		Freq:  map[string]float64{"night": 1.0, "light": 0.8, "sight": 0.4},
	}
}

func TestNewValidatesConfig(t *testing.T) {
	s, err := New(solver.CombinedLambda, 0.5)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 6, s.Rows)
	assert.Equal(t, 5, s.Cols)
	assert.Equal(t, StatusSolving, s.Status())

	_, err = New(solver.CombinedLambda, 1.5)
	assert.ErrorIs(t, err, solver.ErrInvalidParameter)
	_, err = New(solver.Criterion("bogus"), 0)
	assert.ErrorIs(t, err, solver.ErrInvalidParameter)
}

func TestApplyFeedbackSolved(t *testing.T) {
	s, err := New(solver.WordFrequency, 0)
	require.NoError(t, err)

	status, err := s.ApplyFeedback("night", "22222")
	require.NoError(t, err)
	assert.Equal(t, StatusSolved, status)
	assert.True(t, s.Finished)
	assert.True(t, s.Solved)

	// Updating a solved session is an error, not a turn overrun.
	_, err = s.ApplyFeedback("night", "22222")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, solver.ErrMaxTurns)
}

func TestApplyFeedbackValidation(t *testing.T) {
	s, err := New(solver.WordFrequency, 0)
	require.NoError(t, err)

	_, err = s.ApplyFeedback("nigh", "22222")
	assert.EqualError(t, err, "invalid guess")
	_, err = s.ApplyFeedback("Night!", "22222")
	assert.EqualError(t, err, "invalid guess")
	_, err = s.ApplyFeedback("night", "2222")
	assert.ErrorIs(t, err, solver.ErrInvalidFeedback)
	assert.Empty(t, s.Guesses)
}

func TestApplyFeedbackExhaustion(t *testing.T) {
	s, err := New(solver.WordFrequency, 0)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		status, err := s.ApplyFeedback("crane", "00000")
		require.NoError(t, err)
		assert.Equal(t, StatusSolving, status)
	}
	status, err := s.ApplyFeedback("crane", "00000")
	require.NoError(t, err)
	assert.Equal(t, StatusExhausted, status)
	assert.True(t, s.Finished)
	assert.False(t, s.Solved)
	assert.Len(t, s.Guesses, 6)

	// Further updates surface the turn bound.
	_, err = s.ApplyFeedback("crane", "00000")
	assert.ErrorIs(t, err, solver.ErrMaxTurns)
}

func TestSuggestRanksCandidates(t *testing.T) {
	s, err := New(solver.WordFrequency, 0)
	require.NoError(t, err)
	_, err = s.ApplyFeedback("light", "02222")
	require.NoError(t, err)

	ranked, total, err := s.Suggest(testCorpus(), 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, ranked, 2)
	assert.Equal(t, "night", ranked[0].Word)
	assert.Equal(t, "sight", ranked[1].Word)
}

func TestSuggestSurfacesNoCandidates(t *testing.T) {
	s, err := New(solver.WordFrequency, 0)
	require.NoError(t, err)
	_, err = s.ApplyFeedback("light", "00000")
	require.NoError(t, err)
	_, err = s.ApplyFeedback("manse", "00000")
	require.NoError(t, err)

	_, _, err = s.Suggest(testCorpus(), 0, nil)
	assert.ErrorIs(t, err, solver.ErrNoCandidates)
}
