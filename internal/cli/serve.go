package cli

import (
	"github.com/spf13/cobra"

	"github.com/tutorloop/tutorloop/internal/mcp"
)

func newServeCmd() *cobra.Command {
	var (
		model     string
		corpusDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP server over stdio",
		Long: `Expose the tutoring engine as a Model Context Protocol server on
stdin/stdout. Agents and MCP-capable editors can then call tutor_ask,
tutor_status, and tutor_suggest as tools.

All diagnostics go to stderr; stdout carries only the MCP protocol.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := buildEngine(model, corpusDir)
			if err != nil {
				return err
			}
			return mcp.NewServer(engine, cfg.Tutor.MaxAICalls).Serve(version)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model provider (claude, openai, gemini, ollama)")
	cmd.Flags().StringVar(&corpusDir, "corpus", "", "corpus directory (default: built-in corpus)")

	return cmd
}
