package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "playdata",
	Short: "A CLI to track tournaments, teams and in-match plays",
	Long: `A command-line interface for the playdata tracker: manage tournaments,
teams and rosters, start matches, record plays on the twelve-zone pitch
grid and review aggregated tables, all against a local database.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
}

var jsonLogs bool

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	cobra.OnInitialize(func() {
		if jsonLogs {
			log.SetFormatter(log.JSONFormatter)
		}
	})
	Execute()
}
