package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGreenResolution(t *testing.T) {
	dict := []string{"light", "night", "sight", "might", "tight"}
	st := NewState()
	require.NoError(t, st.Update("light", mustLabels(t, "02222"), true))

	res, err := Generate(st, dict)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"night", "sight", "might", "tight"}, res.Candidates)
	assert.NotContains(t, res.Candidates, "light")
	assert.Equal(t, [WordLen]byte{}, res.InferredFixed)
}

func TestGenerateYellowPlacement(t *testing.T) {
	dict := []string{"magic", "basic", "optic"}
	st := NewState()
	// 'c' misplaced at 0, 'a' misplaced at 2; r/n/e eliminated.
	require.NoError(t, st.Update("crane", mustLabels(t, "10100"), true))

	res, err := Generate(st, dict)
	require.NoError(t, err)
	// "optic" has no 'a', so no template matches it.
	assert.Equal(t, []string{"magic", "basic"}, res.Candidates)
}

func TestGenerateInfersFixedPosition(t *testing.T) {
	dict := []string{"crain", "crane"}
	st := NewState()
	// c/r/a green, n misplaced at 3, e eliminated: 'n' has only
	// position 4 left, so it is inferred fixed there.
	require.NoError(t, st.Update("crane", mustLabels(t, "22210"), true))

	res, err := Generate(st, dict)
	require.NoError(t, err)
	assert.Equal(t, []string{"crain"}, res.Candidates)
	assert.Equal(t, byte('n'), res.InferredFixed[4])
}

func TestGenerateContradictionAllPositionsTried(t *testing.T) {
	dict := []string{"about", "other"}
	st := NewState()
	// Report 'q' misplaced at every position across five turns.
	guesses := []string{"qzzzz", "zqzzz", "zzqzz", "zzzqz", "zzzzq"}
	labelSeqs := []string{"10000", "01000", "00100", "00010", "00001"}
	for i, g := range guesses {
		require.NoError(t, st.Update(g, mustLabels(t, labelSeqs[i]), true))
	}

	_, err := Generate(st, dict)
	assert.ErrorIs(t, err, ErrContradiction)
}

func TestGenerateEmptyCandidateSet(t *testing.T) {
	dict := []string{"zesty"}
	st := NewState()
	require.NoError(t, st.Update("zzzzz", mustLabels(t, "00000"), true))

	res, err := Generate(st, dict)
	assert.ErrorIs(t, err, ErrNoCandidates)
	assert.Empty(t, res.Candidates)
}

func TestGenerateExcludesTriedPositions(t *testing.T) {
	// 'a' was yellow at position 0, so words with 'a' there are out even
	// though 'a' is not eliminated.
	dict := []string{"alarm", "tidal"}
	st := NewState()
	require.NoError(t, st.Update("azzzz", mustLabels(t, "10000"), true))

	res, err := Generate(st, dict)
	require.NoError(t, err)
	assert.Equal(t, []string{"tidal"}, res.Candidates)
}

func TestGenerateIdempotent(t *testing.T) {
	dict := []string{"magic", "basic", "optic", "manic"}
	st := NewState()
	require.NoError(t, st.Update("crane", mustLabels(t, "10100"), true))

	first, err := Generate(st, dict)
	require.NoError(t, err)
	second, err := Generate(st, dict)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateMonotonicShrink(t *testing.T) {
	dict := []string{"light", "night", "sight", "might", "tight", "fight"}
	st := NewState()
	require.NoError(t, st.Update("light", mustLabels(t, "02222"), true))
	before, err := Generate(st, dict)
	require.NoError(t, err)

	require.NoError(t, st.Update("night", mustLabels(t, "02222"), true))
	after, err := Generate(st, dict)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(after.Candidates), len(before.Candidates))
	assert.NotContains(t, after.Candidates, "night")
}

func TestGenerateCandidatesSatisfyConstraints(t *testing.T) {
	dict := []string{"magic", "basic", "optic", "manic", "cabin", "acids"}
	st := NewState()
	require.NoError(t, st.Update("crane", mustLabels(t, "10100"), true))

	res, err := Generate(st, dict)
	require.NoError(t, err)
	require.NotEmpty(t, res.Candidates)
	for _, w := range res.Candidates {
		for pos := 0; pos < WordLen; pos++ {
			c := w[pos]
			if f := st.Fixed()[pos]; f != 0 {
				assert.Equal(t, f, c, "word %q breaks fixed letter at %d", w, pos)
			}
		}
		// Yellow letters must appear somewhere, and never at a tried spot.
		assert.Contains(t, w, "c")
		assert.Contains(t, w, "a")
		assert.NotEqual(t, byte('c'), w[0])
		assert.NotEqual(t, byte('a'), w[2])
		for _, l := range []byte{'r', 'n', 'e'} {
			for pos := 0; pos < WordLen; pos++ {
				if st.Fixed()[pos] == 0 {
					assert.NotEqual(t, l, w[pos], "word %q uses eliminated letter %q", w, l)
				}
			}
		}
	}
}

func TestGenerateNoAmbiguityNoTemplateExplosion(t *testing.T) {
	// With nothing known, everything in the dictionary is a candidate in
	// dictionary order.
	dict := []string{"about", "other", "world"}
	res, err := Generate(NewState(), dict)
	require.NoError(t, err)
	assert.Equal(t, dict, res.Candidates)
}
