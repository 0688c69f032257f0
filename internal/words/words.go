// internal/words/words.go
//
// Dictionary and frequency-corpus loading.
//
// Responsibilities:
//   - Load the 5-letter dictionary from an environment-provided file, a
//     remote word list, or the embedded default.
//   - Load the word-frequency corpus the same way and normalize it to [0,1].
//   - Hand both to callers as an injected Corpus value; this package keeps
//     no globals, so the solver core never sees hidden process-wide state.
//
// Initialization behavior (Load):
//   1. If WORDS_FILE is set, read the dictionary from it.
//   2. Else if WORDS_FETCH=1, fetch WORDS_URL (default: the tabatkins
//      wordle-list).
//   3. Else fall back to the embedded default list.
//   Frequency loading mirrors this with FREQ_FILE / FREQ_URL.
//
// Constraints:
//   - Words must be 5 alphabetic letters (a-z); everything else is dropped.
//   - Lists are normalized to lowercase.
//   - Frequencies are kept only for dictionary words, then divided by the
//     maximum so values land in [0,1]; absent words score 0.

package words

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Embedded small defaults so the helper runs with no files or network.

//go:embed default_words.txt
var embeddedWords string

//go:embed default_freqs.txt
var embeddedFreqs string

// Default remote sources, the same corpora the helper was built around.
const (
	defaultWordsURL = "https://raw.githubusercontent.com/tabatkins/wordle-list/main/words"
	defaultFreqURL  = "http://corpus.leeds.ac.uk/frqc/internet-en.num"
)

// fetchTimeout bounds each remote corpus download.
const fetchTimeout = 30 * time.Second

// Corpus bundles the dictionary with its normalized word frequencies.
// Treated as read-only and shared for the lifetime of a session.
type Corpus struct {
	Words []string           // 5-letter lowercase words, load order preserved
	Freq  map[string]float64 // word -> relative frequency in [0,1]
}

// Contains reports whether w is in the dictionary.
func (c *Corpus) Contains(w string) bool {
	w = strings.ToLower(w)
	for _, x := range c.Words {
		if x == w {
			return true
		}
	}
	return false
}

// Load assembles the corpus per the environment (see package comment).
// Returns an error if the dictionary ends up empty.
func Load() (*Corpus, error) {
	words, err := loadWords()
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("words: dictionary is empty")
	}
	freq, err := loadFrequencies(words)
	if err != nil {
		return nil, err
	}
	return &Corpus{Words: words, Freq: freq}, nil
}

// loadWords resolves the dictionary source and reads it.
// The frequency-side counterpart lives in freq.go.
func loadWords() ([]string, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return readWordFile(path)
	}
	if os.Getenv("WORDS_FETCH") == "1" {
		url := getEnv("WORDS_URL", defaultWordsURL)
		log.Info().Str("url", url).Msg("fetching word list")
		body, err := fetch(url)
		if err != nil {
			return nil, fmt.Errorf("fetch word list: %w", err)
		}
		defer body.Close()
		return readWords(body)
	}
	return readWords(strings.NewReader(embeddedWords))
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readWords(f)
}

// readWords scans words line by line, lowercases, trims, and keeps only
// valid 5-letter alphabetic words.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if len(w) == 5 && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// fetch downloads a corpus over HTTP with a bounded timeout.
func fetch(url string) (io.ReadCloser, error) {
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
