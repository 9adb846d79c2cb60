package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/corpus"
)

func newSuggestCmd() *cobra.Command {
	var (
		corpusDir  string
		difficulty string
	)

	cmd := &cobra.Command{
		Use:   "suggest <topic>",
		Short: "Suggest study questions for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")

			d := corpus.Difficulty(difficulty)
			if d != "" && !corpus.ValidDifficulty(d) {
				return fmt.Errorf("invalid difficulty %q (valid: beginner, intermediate, advanced)", difficulty)
			}

			engine, _, err := buildEngine("", corpusDir)
			if err != nil {
				return err
			}

			qs := engine.Suggest(topic, d, "")
			if len(qs) == 0 {
				fmt.Println("No suggestions available.")
				return nil
			}
			for _, q := range qs {
				fmt.Printf("  • %s\n", q)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusDir, "corpus", "", "corpus directory (default: built-in dataset)")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "filter by difficulty: beginner, intermediate, advanced")

	return cmd
}

func newTopicsCmd() *cobra.Command {
	var corpusDir string

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List the curriculum topics in corpus order",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, err := buildEngine("", corpusDir)
			if err != nil {
				return err
			}

			c := engine.Corpus()
			for i, topic := range c.Topics() {
				n := len(c.EntriesForTopic(topic))
				fmt.Printf("%2d. %s (%d entries)\n", i+1, topic, n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusDir, "corpus", "", "corpus directory (default: built-in dataset)")

	return cmd
}
