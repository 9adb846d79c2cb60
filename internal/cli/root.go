// Package cli defines the Cobra command tree for the tutorloop CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tutorloop",
	Short: "Knowledge-base-first tutoring sessions with a metered AI fallback",
	Long: `Tutorloop runs interactive tutoring sessions over a static knowledge corpus.

Questions are answered from the corpus for free whenever a confident match
exists; only unmatched questions spend one unit of a fixed per-topic AI
quota. Each session tracks a teach/practice/assess cycle per topic.

Run 'tutorloop chat' to start a session, or 'tutorloop ask "..."' for a
one-shot question.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newAskCmd(),
		newChatCmd(),
		newSuggestCmd(),
		newStatusCmd(),
		newTopicsCmd(),
		newValidateCmd(),
		newServeCmd(),
		newVersionCmd(),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tutorloop %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
