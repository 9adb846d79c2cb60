// Package config manages the global (~/.config/tutorloop/config.toml)
// configuration for tutorloop.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// GlobalConfig holds user-wide settings.
type GlobalConfig struct {
	DefaultModel string           `toml:"default_model"`
	CorpusDir    string           `toml:"corpus_dir"` // empty = built-in corpus
	Keys         KeysConfig       `toml:"keys"`
	Ollama       OllamaConfig     `toml:"ollama"`
	Tutor        TutorConfig      `toml:"tutor"`
	Completion   CompletionConfig `toml:"completion"`
	Output       OutputConfig     `toml:"output"`
}

type KeysConfig struct {
	Anthropic string `toml:"anthropic"`
	OpenAI    string `toml:"openai"`
	Gemini    string `toml:"gemini"`
}

type OllamaConfig struct {
	Host            string `toml:"host"`
	CompletionModel string `toml:"completion_model"`
}

// TutorConfig controls the session engine: per-topic quotas, retrieval
// breadth, and optional idle-session eviction.
type TutorConfig struct {
	MaxAICalls        int `toml:"max_ai_calls"`
	MaxQuestions      int `toml:"max_questions"`
	TopK              int `toml:"top_k"`
	SessionTTLMinutes int `toml:"session_ttl_minutes"` // 0 = never evict
	HistoryTokens     int `toml:"history_tokens"`
}

// CompletionConfig controls the fallback LLM call.
type CompletionConfig struct {
	MaxTokens   int     `toml:"max_tokens"`
	Temperature float64 `toml:"temperature"`
}

type OutputConfig struct {
	Stream bool `toml:"stream"`
	Color  bool `toml:"color"`
}

// DefaultGlobal returns sensible defaults.
func DefaultGlobal() GlobalConfig {
	return GlobalConfig{
		DefaultModel: "claude",
		Ollama: OllamaConfig{
			Host:            "http://localhost:11434",
			CompletionModel: "llama3.2",
		},
		Tutor: TutorConfig{
			MaxAICalls:    3,
			MaxQuestions:  5,
			TopK:          5,
			HistoryTokens: 2000,
		},
		Completion: CompletionConfig{
			MaxTokens:   1024,
			Temperature: 0.7,
		},
		Output: OutputConfig{
			Stream: true,
			Color:  true,
		},
	}
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tutorloop", "config.toml"), nil
}

// LoadGlobal loads the global config, applying defaults for any missing values.
func LoadGlobal() (GlobalConfig, error) {
	cfg := DefaultGlobal()

	path, err := GlobalConfigPath()
	if err != nil {
		applyEnv(&cfg)
		return cfg, nil // Return defaults if we can't determine home dir.
	}

	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load global: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets env vars override config file API keys and the corpus dir.
func applyEnv(cfg *GlobalConfig) {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Keys.Anthropic = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Keys.OpenAI = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Keys.Gemini = v
	}
	if v := os.Getenv("TUTORLOOP_CORPUS"); v != "" {
		cfg.CorpusDir = v
	}
}

// SaveGlobal writes the global config to disk.
func SaveGlobal(cfg GlobalConfig) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: create global config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// APIKey returns the configured key for the given provider name, or "".
func (c GlobalConfig) APIKey(provider string) string {
	switch provider {
	case "claude":
		return c.Keys.Anthropic
	case "openai":
		return c.Keys.OpenAI
	case "gemini":
		return c.Keys.Gemini
	default:
		return ""
	}
}
