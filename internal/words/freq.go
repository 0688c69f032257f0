// internal/words/freq.go
//
// Frequency-corpus parsing (Leeds internet-en.num format).
// The corpus is a plain-text table: a short preamble, then one row per word
// as "rank frequency word". Rows for words outside the dictionary are
// ignored; malformed rows are logged and skipped.

package words

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// freqHeaderLines is the preamble length of the Leeds corpus dump.
const freqHeaderLines = 4

// loadFrequencies resolves the frequency source, parses it, and normalizes
// the values into [0,1].
func loadFrequencies(words []string) (map[string]float64, error) {
	var raw map[string]float64
	var err error
	switch {
	case os.Getenv("FREQ_FILE") != "":
		raw, err = readFreqFile(os.Getenv("FREQ_FILE"), words)
	case os.Getenv("WORDS_FETCH") == "1":
		url := getEnv("FREQ_URL", defaultFreqURL)
		log.Info().Str("url", url).Msg("fetching frequency corpus")
		var body io.ReadCloser
		body, err = fetch(url)
		if err != nil {
			return nil, err
		}
		defer body.Close()
		raw, err = parseFreqList(body, words)
	default:
		raw, err = parseFreqList(strings.NewReader(embeddedFreqs), words)
	}
	if err != nil {
		return nil, err
	}
	normalizeFreqs(raw)
	return raw, nil
}

// readFreqFile parses a frequency corpus from a local file.
func readFreqFile(path string, words []string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseFreqList(f, words)
}

// parseFreqList reads "rank freq word" rows, keeping frequencies only for
// dictionary words. Every dictionary word gets an entry, zero when the
// corpus never mentions it.
func parseFreqList(r io.Reader, words []string) (map[string]float64, error) {
	inDict := make(map[string]struct{}, len(words))
	out := make(map[string]float64, len(words))
	for _, w := range words {
		inDict[w] = struct{}{}
		out[w] = 0
	}

	sc := bufio.NewScanner(r)
	line := 0
	found := 0
	for sc.Scan() {
		line++
		if line <= freqHeaderLines {
			continue
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			log.Warn().Int("line", line).Str("row", text).Msg("skipping malformed frequency row")
			continue
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			log.Warn().Int("line", line).Str("row", text).Msg("skipping non-numeric frequency row")
			continue
		}
		word := strings.ToLower(fields[2])
		if _, ok := inDict[word]; ok {
			out[word] = freq
			found++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	log.Info().Int("found", found).Int("dictionary", len(words)).Msg("frequency corpus loaded")
	return out, nil
}

// normalizeFreqs divides every frequency by the maximum so the table maps
// into [0,1]. A table with no positive entries is left untouched.
func normalizeFreqs(freq map[string]float64) {
	var max float64
	for _, f := range freq {
		if f > max {
			max = f
		}
	}
	if max == 0 {
		return
	}
	for w, f := range freq {
		freq[w] = f / max
	}
}
