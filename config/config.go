// Package config loads the CLI's YAML configuration. The library itself
// takes an explicit rag.Config; this package only exists so the command
// line tool has a file-based surface for the same knobs plus provider
// settings.
package config // import "github.com/smallnest/docqa/config"

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/smallnest/docqa/rag"
)

// EngineConfig mirrors rag.Config.
type EngineConfig struct {
	CapShort          int    `yaml:"cap_short"`
	CapLong           int    `yaml:"cap_long"`
	TopK              int    `yaml:"top_k"`
	SystemInstruction string `yaml:"system_instruction,omitempty"`
	FallbackPhrase    string `yaml:"fallback_phrase"`
}

// ProviderConfig configures the OpenAI-compatible capability provider.
type ProviderConfig struct {
	BaseURL    string `yaml:"base_url,omitempty"`
	APIKeyEnv  string `yaml:"api_key_env"`
	ChatModel  string `yaml:"chat_model"`
	EmbedModel string `yaml:"embed_model"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config is the root configuration structure.
type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Provider ProviderConfig `yaml:"provider"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads the config at path. A missing file yields defaults; a present
// file is merged over them.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	engine := rag.DefaultConfig()
	return &Config{
		Engine: EngineConfig{
			CapShort:       engine.CapShort,
			CapLong:        engine.CapLong,
			TopK:           engine.TopK,
			FallbackPhrase: engine.FallbackPhrase,
		},
		Provider: ProviderConfig{
			APIKeyEnv:  "OPENAI_API_KEY",
			ChatModel:  "gpt-4o-mini",
			EmbedModel: "text-embedding-3-small",
		},
		Log: LogConfig{Level: "info"},
	}
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Engine.CapShort <= 0 {
		cfg.Engine.CapShort = def.Engine.CapShort
	}
	if cfg.Engine.CapLong <= 0 {
		cfg.Engine.CapLong = def.Engine.CapLong
	}
	if cfg.Engine.TopK <= 0 {
		cfg.Engine.TopK = def.Engine.TopK
	}
	if cfg.Engine.FallbackPhrase == "" {
		cfg.Engine.FallbackPhrase = def.Engine.FallbackPhrase
	}
	if cfg.Provider.APIKeyEnv == "" {
		cfg.Provider.APIKeyEnv = def.Provider.APIKeyEnv
	}
	if cfg.Provider.ChatModel == "" {
		cfg.Provider.ChatModel = def.Provider.ChatModel
	}
	if cfg.Provider.EmbedModel == "" {
		cfg.Provider.EmbedModel = def.Provider.EmbedModel
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

// RAGConfig converts the file representation into a rag.Config. A
// custom fallback phrase without a custom instruction regenerates the
// default instruction around the phrase, so the two always agree.
func (c *Config) RAGConfig() rag.Config {
	cfg := rag.Config{
		CapShort:          c.Engine.CapShort,
		CapLong:           c.Engine.CapLong,
		TopK:              c.Engine.TopK,
		SystemInstruction: c.Engine.SystemInstruction,
		FallbackPhrase:    c.Engine.FallbackPhrase,
	}
	if cfg.SystemInstruction == "" {
		cfg.SystemInstruction = rag.SystemInstruction(cfg.FallbackPhrase)
	}
	return cfg
}
