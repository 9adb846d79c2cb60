package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGlobal(t *testing.T) {
	cfg := DefaultGlobal()

	if cfg.DefaultModel != "claude" {
		t.Errorf("default model: got %q, want %q", cfg.DefaultModel, "claude")
	}
	if cfg.CorpusDir != "" {
		t.Errorf("corpus dir should default to built-in, got %q", cfg.CorpusDir)
	}
	if cfg.Tutor.MaxAICalls != 3 {
		t.Errorf("max AI calls: got %d, want 3", cfg.Tutor.MaxAICalls)
	}
	if cfg.Tutor.MaxQuestions != 5 {
		t.Errorf("max questions: got %d, want 5", cfg.Tutor.MaxQuestions)
	}
	if cfg.Tutor.TopK != 5 {
		t.Errorf("top k: got %d, want 5", cfg.Tutor.TopK)
	}
	if cfg.Tutor.SessionTTLMinutes != 0 {
		t.Errorf("session TTL should default to 0 (never evict), got %d", cfg.Tutor.SessionTTLMinutes)
	}
	if cfg.Tutor.HistoryTokens != 2000 {
		t.Errorf("history tokens: got %d, want 2000", cfg.Tutor.HistoryTokens)
	}
	if cfg.Completion.MaxTokens != 1024 {
		t.Errorf("completion max tokens: got %d, want 1024", cfg.Completion.MaxTokens)
	}
	if cfg.Completion.Temperature != 0.7 {
		t.Errorf("temperature: got %f, want 0.7", cfg.Completion.Temperature)
	}
	if cfg.Ollama.Host != "http://localhost:11434" {
		t.Errorf("ollama host: got %q", cfg.Ollama.Host)
	}
	if cfg.Ollama.CompletionModel != "llama3.2" {
		t.Errorf("ollama completion model: got %q", cfg.Ollama.CompletionModel)
	}
	if !cfg.Output.Stream {
		t.Error("stream should default to true")
	}
	if !cfg.Output.Color {
		t.Error("color should default to true")
	}
}

func TestGlobalConfigPath(t *testing.T) {
	path, err := GlobalConfigPath()
	if err != nil {
		t.Fatalf("GlobalConfigPath: %v", err)
	}
	want := filepath.Join(".config", "tutorloop", "config.toml")
	if !strings.HasSuffix(path, want) {
		t.Errorf("path %q does not end in %q", path, want)
	}
}

func TestAPIKey(t *testing.T) {
	cfg := GlobalConfig{
		Keys: KeysConfig{Anthropic: "a-key", OpenAI: "o-key", Gemini: "g-key"},
	}

	tests := []struct {
		provider string
		want     string
	}{
		{"claude", "a-key"},
		{"openai", "o-key"},
		{"gemini", "g-key"},
		{"ollama", ""},
		{"unknown", ""},
	}

	for _, tt := range tests {
		if got := cfg.APIKey(tt.provider); got != tt.want {
			t.Errorf("APIKey(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-anthropic")
	t.Setenv("TUTORLOOP_CORPUS", "/tmp/corpus")

	cfg := DefaultGlobal()
	cfg.Keys.Anthropic = "file-key"
	applyEnv(&cfg)

	if cfg.Keys.Anthropic != "env-anthropic" {
		t.Errorf("env did not override file key: %q", cfg.Keys.Anthropic)
	}
	if cfg.CorpusDir != "/tmp/corpus" {
		t.Errorf("corpus dir not applied from env: %q", cfg.CorpusDir)
	}
}
