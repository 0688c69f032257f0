package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordsFiltersAndNormalizes(t *testing.T) {
	in := strings.NewReader("CRANE\n  light \nnope\nsixletters\nab1de\n\nmagic\n")
	got, err := readWords(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "light", "magic"}, got)
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("about\nWORLD\nxx\n"), 0o644))

	got, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "world"}, got)

	_, err = readWordFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("WORDS_FILE", "")
	t.Setenv("FREQ_FILE", "")
	t.Setenv("WORDS_FETCH", "")

	c, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, c.Words)
	for _, w := range c.Words {
		assert.Len(t, w, 5)
		assert.True(t, isAlpha(w), "word %q", w)
	}
	// Every dictionary word has an entry; values normalized into [0,1]
	// with at least one word at the maximum.
	var max float64
	for _, w := range c.Words {
		f, ok := c.Freq[w]
		require.True(t, ok, "missing frequency entry for %q", w)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 1.0)
		if f > max {
			max = f
		}
	}
	assert.Equal(t, 1.0, max)
	assert.True(t, c.Contains("crane"))
	assert.False(t, c.Contains("zzzzz"))
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	freqPath := filepath.Join(dir, "freqs.txt")
	require.NoError(t, os.WriteFile(wordsPath, []byte("crane\nlight\nmagic\n"), 0o644))
	freqBody := "header one\nheader two\nheader three\nheader four\n" +
		"1 200.0 light\n2 50.0 crane\n3 10.0 other\nbad row\n"
	require.NoError(t, os.WriteFile(freqPath, []byte(freqBody), 0o644))

	t.Setenv("WORDS_FILE", wordsPath)
	t.Setenv("FREQ_FILE", freqPath)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "light", "magic"}, c.Words)
	assert.Equal(t, 1.0, c.Freq["light"])
	assert.InDelta(t, 0.25, c.Freq["crane"], 1e-12)
	assert.Equal(t, 0.0, c.Freq["magic"]) // absent from the corpus
	_, hasOther := c.Freq["other"]
	assert.False(t, hasOther, "rows outside the dictionary are ignored")
}
