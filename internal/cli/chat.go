package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tutorloop/tutorloop/internal/tutor"
)

func newChatCmd() *cobra.Command {
	var (
		model     string
		corpusDir string
		moduleID  string
		teach     bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive tutoring session",
		Long: `Run a tutoring session in the terminal. Plain input is answered as a
direct question; in --teach mode the session instead cycles through the
teach/practice/assess phases of the current topic.

Session commands:
  /next     advance to the next topic (resets the AI quota)
  /status   show phase, topic, and budget state
  /quit     end the session`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cfg, err := buildEngine(model, corpusDir)
			if err != nil {
				return err
			}

			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("chat requires an interactive terminal; use `tutorloop ask` for piped input")
			}

			printer := &streamPrinter{}
			if cfg.Output.Stream {
				engine.SetOnDelta(printer.delta)
			}

			topics := engine.Corpus().Topics()
			banner := fmt.Sprintf("tutorloop %s (%d topics loaded). Type /quit to leave.", version, len(topics))
			fmt.Printf("%s\n\n", paint(cfg, cCyan, banner))

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}

				switch input {
				case "/quit", "/exit":
					fmt.Println("Session ended.")
					return nil
				case "/status":
					printStatus(engine, moduleID)
					continue
				case "/next":
					topic, advanced := engine.NextTopic(moduleID)
					if advanced {
						fmt.Printf("Moving on to %q. AI quota refreshed.\n\n", topic)
					} else {
						fmt.Printf("Already on the last topic (%q).\n\n", topic)
					}
					continue
				}

				if teach {
					turn := engine.Converse(moduleID, input)
					tag := fmt.Sprintf("[%s | %s | %d questions left]",
						turn.Topic, turn.Phase, turn.QuestionsRemaining)
					fmt.Printf("%s\n%s\n\n", paint(cfg, cDim, tag), turn.Content)
					continue
				}

				ans := engine.Ask(context.Background(), moduleID, input)
				printer.finish(ans, cfg.Tutor.MaxAICalls)
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "LLM provider override: claude, openai, gemini, ollama")
	cmd.Flags().StringVar(&corpusDir, "corpus", "", "corpus directory (default: built-in dataset)")
	cmd.Flags().StringVar(&moduleID, "module", "default", "module/session identifier")
	cmd.Flags().BoolVar(&teach, "teach", false, "run guided teach/practice/assess turns instead of direct Q&A")

	return cmd
}

// printStatus dumps the session context for a module, if one exists yet.
func printStatus(engine *tutor.Engine, moduleID string) {
	sctx, ok := engine.Sessions().Get(moduleID)
	if !ok {
		fmt.Println("No session yet. Ask something first.")
		return
	}
	topics := engine.Corpus().Topics()
	topic := ""
	if sctx.TopicIndex >= 0 && sctx.TopicIndex < len(topics) {
		topic = topics[sctx.TopicIndex]
	}
	fmt.Printf("Topic:     %s (%d of %d)\n", topic, sctx.TopicIndex+1, len(topics))
	fmt.Printf("Phase:     %s\n", sctx.CurrentPhase)
	fmt.Printf("Questions: %d/%d asked\n", sctx.QuestionsAsked, sctx.MaxQuestions)
	fmt.Printf("AI calls:  %d/%d used\n", sctx.AICallsUsed, sctx.MaxAICalls)
	if sctx.TopicCompleted {
		fmt.Println("Topic complete; use /next to advance.")
	}
	fmt.Println()
}
