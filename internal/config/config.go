// Package config loads the coursedeck configuration file and applies
// environment overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"coursedeck/internal/tutor"
)

//go:embed sample_config.toml
var sampleConfig []byte

// Config is the on-disk configuration. Every field has a working default;
// a missing file is not an error.
type Config struct {
	// Provider selects the tutor backend: gemini, anthropic, openai or
	// empty to auto-discover from API key env vars.
	Provider string `toml:"provider"`

	// DatabasePath overrides the progress database location.
	DatabasePath string `toml:"database_path"`

	// LogFile enables file logging when non-empty.
	LogFile string `toml:"log_file"`

	Gemini    GeminiSection    `toml:"gemini"`
	Anthropic AnthropicSection `toml:"anthropic"`
	OpenAI    OpenAISection    `toml:"openai"`
}

type GeminiSection struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type AnthropicSection struct {
	APIKey string `toml:"api_key"`
	Model  string `toml:"model"`
}

type OpenAISection struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Gemini:    GeminiSection{Model: "gemini-flash"},
		Anthropic: AnthropicSection{Model: "claude-haiku"},
		OpenAI:    OpenAISection{Model: "gpt-4o-mini"},
	}
}

// DefaultConfigPath resolves the config file location:
// $COURSEDECK_CONFIG, then $XDG_CONFIG_HOME/coursedeck/config.toml,
// then ~/.config/coursedeck/config.toml.
func DefaultConfigPath() (string, error) {
	if p := os.Getenv("COURSEDECK_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "coursedeck", "config.toml"), nil
}

// Load parses the config at path, writing the embedded sample there
// first when no file exists yet. Env overrides are applied last.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := writeSample(path); werr != nil {
			// First-run convenience only; keep going with defaults.
			fmt.Fprintln(os.Stderr, "could not write sample config:", werr)
		}
	} else if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func writeSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, sampleConfig, 0o644)
}

// applyEnv lets environment variables override file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("COURSEDECK_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("COURSEDECK_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("COURSEDECK_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Anthropic.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
}

// TutorConfig maps the file config onto the tutor provider config.
// When Provider is empty it picks the first section with a key set,
// in grounding-quality order (gemini first). ok=false means no
// credential anywhere — a recoverable condition, not a startup failure.
func (c Config) TutorConfig() (tutor.Config, bool) {
	tc := tutor.DefaultConfig()
	tc.Gemini.APIKey = c.Gemini.APIKey
	tc.Anthropic.APIKey = c.Anthropic.APIKey
	tc.OpenAI.APIKey = c.OpenAI.APIKey
	tc.OpenAI.BaseURL = c.OpenAI.BaseURL
	if c.Gemini.Model != "" {
		tc.Gemini.Model = c.Gemini.Model
	}
	if c.Anthropic.Model != "" {
		tc.Anthropic.Model = c.Anthropic.Model
	}
	if c.OpenAI.Model != "" {
		tc.OpenAI.Model = c.OpenAI.Model
	}

	if c.Provider != "" {
		tc.Provider = c.Provider
		return tc, tc.Validate() == nil
	}

	switch {
	case tc.Gemini.APIKey != "":
		tc.Provider = "gemini"
	case tc.Anthropic.APIKey != "":
		tc.Provider = "anthropic"
	case tc.OpenAI.APIKey != "":
		tc.Provider = "openai"
	default:
		return tc, false
	}
	return tc, true
}
