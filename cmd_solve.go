// cmd_solve.go
//
// `wordlehint solve`: the interactive helper loop.
// Each turn: rank the remaining candidates, print the top of the list,
// ask which word was played and which colours came back (five digits,
// 0=grey 1=yellow 2=green), and fold the feedback into the constraint
// state. Stops on an all-green answer or after six turns.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robquist/wordlehint/internal/session"
	"github.com/robquist/wordlehint/internal/solver"
	"github.com/robquist/wordlehint/internal/words"
)

var (
	solveLambda    float64
	solveCriterion string
	solveShow      int
	solveFetch     bool
)

var numToOrdinal = map[int]string{
	1: "first", 2: "second", 3: "third", 4: "fourth", 5: "fifth", 6: "sixth",
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Interactively rank guesses for a puzzle in progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := solver.ParseCriterion(solveCriterion)
		if err != nil {
			return err
		}
		sess, err := session.New(criterion, solveLambda)
		if err != nil {
			return err
		}

		if solveFetch {
			os.Setenv("WORDS_FETCH", "1")
		}
		corpus, err := words.Load()
		if err != nil {
			return err
		}
		fmt.Printf("Loaded %d words\n", len(corpus.Words))

		in := bufio.NewScanner(os.Stdin)
		for !sess.Finished {
			if err := runTurn(sess, corpus, in); err != nil {
				return err
			}
		}
		if sess.Solved {
			fmt.Println("\nYou guessed correctly. Congrats!")
		} else {
			fmt.Println("\nOut of turns. Better luck next time!")
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().Float64Var(&solveLambda, "lambda", 0.5,
		"scoring blend: >0.5 weights space reduction more heavily (combined criterion)")
	solveCmd.Flags().StringVar(&solveCriterion, "criterion", string(solver.CombinedLambda),
		"ranking criterion: word_frequency | char_frequency | space_reduction | combined | next_guess")
	solveCmd.Flags().IntVar(&solveShow, "show", 100, "maximum number of ranked guesses shown")
	solveCmd.Flags().BoolVar(&solveFetch, "fetch", false, "fetch word list and frequency corpus from their remote sources")
	rootCmd.AddCommand(solveCmd)
}

// runTurn ranks, presents, and applies one turn of feedback.
func runTurn(sess *session.Session, corpus *words.Corpus, in *bufio.Scanner) error {
	progress := func(scored, total int) {
		log.Info().Int("scored", scored).Int("total", total).Msg("guesses scored")
	}
	ranked, total, err := sess.Suggest(corpus, solveShow, progress)
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			return errors.New("no guesses found: the dictionary has no word matching the feedback so far")
		}
		return err
	}
	presentGuesses(ranked, total, sess.Criterion)

	ord := numToOrdinal[sess.Turn()]
	guess, err := promptLine(in, fmt.Sprintf("\nEnter letters of your %s guess: ", ord))
	if err != nil {
		return err
	}
	labels, err := promptLine(in, fmt.Sprintf("Enter colours returned for your %s guess (%q): ", ord, guess))
	if err != nil {
		return err
	}

	status, err := sess.ApplyFeedback(guess, labels)
	if err != nil {
		return err
	}
	if status == session.StatusSolving {
		fmt.Println()
	}
	return nil
}

// presentGuesses prints the ranked list, one guess per line, with the
// component scores when the strategy computed them.
func presentGuesses(ranked []solver.ScoredGuess, total int, criterion solver.Criterion) {
	for i, g := range ranked {
		switch criterion {
		case solver.CombinedLambda:
			fmt.Printf("%d\t%s\t%.4f (space-redux=%.4f, freq=%.4f)\n", i+1, g.Word, g.Score, g.Reduction, g.Frequency)
		default:
			fmt.Printf("%d\t%s\t%.4f\n", i+1, g.Word, g.Score)
		}
	}
	if total > len(ranked) {
		fmt.Printf("... plus %d lower-ranked guesses\n", total-len(ranked))
	}
}

// promptLine prints a prompt and reads one trimmed, lowercased line.
func promptLine(in *bufio.Scanner, prompt string) (string, error) {
	fmt.Print(prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed")
	}
	return strings.ToLower(strings.TrimSpace(in.Text())), nil
}
