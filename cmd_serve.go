// cmd_serve.go
//
// `wordlehint serve`: run the suggestion API.
// Opens SQLite, applies ./sql migrations, loads the corpus per the
// environment, and serves HTTP on PORT (default 5175).

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robquist/wordlehint/internal/httpserver"
	"github.com/robquist/wordlehint/internal/store"
	"github.com/robquist/wordlehint/internal/words"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the wordlehint HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(getEnv("DB_PATH", "./data/wordlehint.db"))
		if err != nil {
			return err
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			return err
		}

		corpus, err := words.Load()
		if err != nil {
			return err
		}
		log.Info().Int("words", len(corpus.Words)).Msg("corpus loaded")

		mem := store.NewMemoryStore()
		srv := httpserver.New(mem, db, corpus)
		port := getEnv("PORT", "5175")
		log.Info().Str("port", port).Msg("starting wordlehint server")
		return srv.Start(":" + port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
