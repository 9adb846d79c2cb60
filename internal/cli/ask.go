package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var (
		model     string
		corpusDir string
		moduleID  string
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a one-shot question (knowledge base first, AI fallback second)",
		Long: `Answer a single question. The knowledge base is searched first and a
confident match is returned free of charge; otherwise one unit of the AI
quota is spent on a provider call.

Examples:
  tutorloop ask "What is business analysis?"
  tutorloop ask "How do I run a stakeholder workshop?" --model openai`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			engine, cfg, err := buildEngine(model, corpusDir)
			if err != nil {
				return err
			}

			printer := &streamPrinter{}
			if cfg.Output.Stream {
				engine.SetOnDelta(printer.delta)
			}

			ans := engine.Ask(context.Background(), moduleID, question)
			printer.finish(ans, cfg.Tutor.MaxAICalls)
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "LLM provider override: claude, openai, gemini, ollama")
	cmd.Flags().StringVar(&corpusDir, "corpus", "", "corpus directory (default: built-in dataset)")
	cmd.Flags().StringVar(&moduleID, "module", "default", "module/session identifier")

	return cmd
}
