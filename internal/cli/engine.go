package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/tutorloop/tutorloop/internal/adapter"
	"github.com/tutorloop/tutorloop/internal/config"
	"github.com/tutorloop/tutorloop/internal/corpus"
	"github.com/tutorloop/tutorloop/internal/retrieval"
	"github.com/tutorloop/tutorloop/internal/session"
	"github.com/tutorloop/tutorloop/internal/tutor"
)

// buildEngine assembles the engine from config, with optional CLI overrides
// for the provider and corpus directory. A provider that fails to construct
// is reported but not fatal; the knowledge base still works without one.
func buildEngine(providerOverride, corpusDir string) (*tutor.Engine, config.GlobalConfig, error) {
	cfg, err := config.LoadGlobal()
	if err != nil {
		cfg = config.DefaultGlobal()
	}

	providerName := cfg.DefaultModel
	if providerOverride != "" {
		providerName = providerOverride
	}
	if corpusDir == "" {
		corpusDir = cfg.CorpusDir
	}

	// Malformed corpus is fatal: better to refuse to start than to tutor
	// from a corrupt dataset.
	c, err := corpus.Load(corpusDir)
	if err != nil {
		return nil, cfg, err
	}

	var llm adapter.LLMAdapter
	if a, err := adapter.New(providerName, cfg.APIKey(providerName), cfg.Ollama.Host); err == nil {
		llm = a
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %v (AI fallback disabled)\n", err)
	}

	model := ""
	if providerName == adapter.ProviderOllama {
		model = cfg.Ollama.CompletionModel
	}

	opts := tutor.Options{
		Weights: retrieval.DefaultWeights(),
		Limits: session.Limits{
			MaxQuestions: cfg.Tutor.MaxQuestions,
			MaxAICalls:   cfg.Tutor.MaxAICalls,
			TTL:          time.Duration(cfg.Tutor.SessionTTLMinutes) * time.Minute,
		},
		TopK:          cfg.Tutor.TopK,
		Model:         model,
		MaxTokens:     cfg.Completion.MaxTokens,
		Temperature:   cfg.Completion.Temperature,
		HistoryTokens: cfg.Tutor.HistoryTokens,
		Stream:        cfg.Output.Stream,
	}

	sessions := session.NewManager(opts.Limits)
	engine, err := tutor.NewEngine(c, sessions, llm, opts)
	if err != nil {
		return nil, cfg, err
	}
	return engine, cfg, nil
}
