// internal/solver/generate.go
//
// Candidate generation.
// Turns the accumulated constraint state into a set of position templates
// (literal letters plus per-position allowed sets) and matches the
// dictionary against them:
//
//   1. Collect fixed (green) positions.
//   2. For every tracked yellow letter, compute its open positions; an
//      empty open set is a contradiction.
//   3. A yellow letter with exactly one open position is inferred fixed
//      there and removed from combinatorial placement.
//   4. Ambiguous yellow letters (open set > 1) are assigned injectively to
//      open positions; every valid assignment yields one template.
//   5. Wildcard slots admit any letter that is neither eliminated nor
//      tried-and-rejected at that slot.
//
// A word is a candidate iff it matches at least one template; dictionary
// iteration order is preserved and each word appears at most once.

package solver

import "fmt"

// Result is the output of Generate: the ordered candidate words plus any
// newly inferable fixed positions (0 where none was inferred).
type Result struct {
	Candidates    []string
	InferredFixed [WordLen]byte
}

// resolved reports whether a position is pinned, either by direct green
// feedback or by inference.
func (r Result) resolved(st *State, pos int) bool {
	return st.fixed[pos] != 0 || r.InferredFixed[pos] != 0
}

// template is a position-by-position pattern: a literal letter where known,
// 0 where any allowed letter may appear.
type template [WordLen]byte

// Generate computes every dictionary word consistent with the state.
// Fails with ErrContradiction when the feedback is unsatisfiable and with
// ErrNoCandidates when the (satisfiable) constraints match no word.
func Generate(st *State, dictionary []string) (Result, error) {
	var res Result

	// Open positions per yellow letter; letters confined to a single
	// position become inferred greens.
	ambiguousLetters := make([]byte, 0, len(st.triedYellow))
	ambiguousOpen := make([][]int, 0, len(st.triedYellow))
	for _, letter := range st.YellowLetters() {
		open := st.OpenPositions(letter)
		switch len(open) {
		case 0:
			return Result{}, fmt.Errorf("%w: no open positions left for letter %q",
				ErrContradiction, letter)
		case 1:
			pos := open[0]
			if prev := res.InferredFixed[pos]; prev != 0 && prev != letter {
				return Result{}, fmt.Errorf("%w: letters %q and %q both confined to position %d",
					ErrContradiction, prev, letter, pos)
			}
			res.InferredFixed[pos] = letter
		default:
			ambiguousLetters = append(ambiguousLetters, letter)
			ambiguousOpen = append(ambiguousOpen, open)
		}
	}

	// Green template: direct greens plus inferred ones.
	var green template
	for pos := 0; pos < WordLen; pos++ {
		if st.fixed[pos] != 0 {
			green[pos] = st.fixed[pos]
		} else if res.InferredFixed[pos] != 0 {
			green[pos] = res.InferredFixed[pos]
		}
	}

	templates := placeAmbiguous(green, ambiguousLetters, ambiguousOpen)

	// Allowed set per wildcard slot: everything not eliminated and not
	// tried-and-rejected at that slot. Shared across templates.
	var allowed [WordLen][26]bool
	for pos := 0; pos < WordLen; pos++ {
		triedHere := st.triedYellowsAt(pos)
		for i := 0; i < 26; i++ {
			allowed[pos][i] = !st.eliminated[i] && !triedHere[i]
		}
	}

	for _, word := range dictionary {
		for _, t := range templates {
			if matches(word, t, &allowed) {
				res.Candidates = append(res.Candidates, word)
				break
			}
		}
	}
	if len(res.Candidates) == 0 {
		return res, ErrNoCandidates
	}
	return res, nil
}

// placeAmbiguous enumerates every injective assignment of the ambiguous
// yellow letters to their open positions, one template per assignment.
// Letters are placed by backtracking rather than filtering a full cartesian
// product; the result set is identical. With no ambiguous letters the green
// template stands alone.
func placeAmbiguous(green template, letters []byte, open [][]int) []template {
	if len(letters) == 0 {
		return []template{green}
	}
	var out []template
	var used [WordLen]bool
	var place func(i int, t template)
	place = func(i int, t template) {
		if i == len(letters) {
			out = append(out, t)
			return
		}
		for _, pos := range open[i] {
			if used[pos] {
				continue
			}
			used[pos] = true
			next := t
			next[pos] = letters[i]
			place(i+1, next)
			used[pos] = false
		}
	}
	place(0, green)
	return out
}

// matches tests one word against one template: literal slots must match
// exactly, wildcard slots must hold an allowed letter.
func matches(word string, t template, allowed *[WordLen][26]bool) bool {
	if len(word) != WordLen {
		return false
	}
	for pos := 0; pos < WordLen; pos++ {
		c := word[pos]
		if t[pos] != 0 {
			if c != t[pos] {
				return false
			}
			continue
		}
		if c < 'a' || c > 'z' || !allowed[pos][c-'a'] {
			return false
		}
	}
	return true
}
