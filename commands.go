// commands.go
//
// Root cobra command. Subcommands register themselves in their own files
// (cmd_serve.go, cmd_solve.go).

package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "wordlehint",
	Short: "Wordle solving assistant: candidate generation and guess ranking",
	Long: `wordlehint helps solve a Wordle puzzle. Feed it the feedback the
puzzle gives you each turn and it computes every dictionary word still
consistent with that feedback, ranked by a selectable scoring heuristic.

Run it interactively with "solve", or as an HTTP API with "serve".`,
	SilenceUsage: true,
}
