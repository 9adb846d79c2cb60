package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/adapter"
	"github.com/tutorloop/tutorloop/internal/config"
	"github.com/tutorloop/tutorloop/internal/corpus"
)

func newStatusCmd() *cobra.Command {
	var corpusDir string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the resolved configuration and session limits",
		Long: `Print the provider, corpus, and per-topic limits a new session would
start with.

Sessions live inside a running process, so a fresh invocation always starts
with a clean slate. Live session state is available via /status inside
'tutorloop chat' or the tutor_status MCP tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadGlobal()
			if err != nil {
				cfg = config.DefaultGlobal()
			}
			dir := corpusDir
			if dir == "" {
				dir = cfg.CorpusDir
			}

			c, err := corpus.Load(dir)
			if err != nil {
				return err
			}

			source := "built-in dataset"
			if dir != "" {
				source = dir
			}
			keyState := "API key not set (AI fallback disabled)"
			switch {
			case cfg.DefaultModel == adapter.ProviderOllama:
				keyState = cfg.Ollama.Host
			case cfg.APIKey(cfg.DefaultModel) != "":
				keyState = "API key set"
			}

			fmt.Printf("Provider:    %s (%s)\n", cfg.DefaultModel, keyState)
			fmt.Printf("Corpus:      %s (%d topics, %d entries)\n", source, len(c.Topics()), c.Len())
			fmt.Printf("Per topic:   %d questions, %d AI calls\n", cfg.Tutor.MaxQuestions, cfg.Tutor.MaxAICalls)
			fmt.Printf("Session TTL: %d minutes (0 = never evicted)\n", cfg.Tutor.SessionTTLMinutes)
			fmt.Printf("Completion:  max %d tokens, temperature %.1f, streaming %v\n",
				cfg.Completion.MaxTokens, cfg.Completion.Temperature, cfg.Output.Stream)
			fmt.Println()
			fmt.Println("Sessions are per process; use /status inside 'tutorloop chat' for live state.")
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusDir, "corpus", "", "corpus directory (default: built-in dataset)")

	return cmd
}
