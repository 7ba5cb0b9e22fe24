package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallnest/docqa/rag"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, rag.DefaultCapShort, cfg.Engine.CapShort)
	assert.Equal(t, rag.DefaultCapLong, cfg.Engine.CapLong)
	assert.Equal(t, rag.DefaultTopK, cfg.Engine.TopK)
	assert.Equal(t, rag.DefaultFallbackPhrase, cfg.Engine.FallbackPhrase)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Provider.APIKeyEnv)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
engine:
  cap_short: 2
  top_k: 8
provider:
  chat_model: gpt-4o
log:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Engine.CapShort)
	assert.Equal(t, 8, cfg.Engine.TopK)
	assert.Equal(t, rag.DefaultCapLong, cfg.Engine.CapLong, "unset fields keep defaults")
	assert.Equal(t, "gpt-4o", cfg.Provider.ChatModel)
	assert.Equal(t, "text-embedding-3-small", cfg.Provider.EmbedModel)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRAGConfig(t *testing.T) {
	t.Run("custom fallback regenerates the instruction", func(t *testing.T) {
		cfg := Default()
		cfg.Engine.FallbackPhrase = "No clue, sorry."

		ragCfg := cfg.RAGConfig()
		assert.Equal(t, "No clue, sorry.", ragCfg.FallbackPhrase)
		assert.Contains(t, ragCfg.SystemInstruction, "No clue, sorry.")
	})

	t.Run("explicit instruction wins", func(t *testing.T) {
		cfg := Default()
		cfg.Engine.SystemInstruction = "answer from context only"

		assert.Equal(t, "answer from context only", cfg.RAGConfig().SystemInstruction)
	})
}
