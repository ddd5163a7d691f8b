package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeloom-ai/codeloom/src/provider"
)

// clearProviderEnv blanks every consulted variable so host exports cannot
// leak into assertions.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, names := range envVars {
		for _, name := range names {
			t.Setenv(name, "")
		}
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "nope"))
	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.APIKeys)
	assert.Empty(t, cfg.DefaultProvider)
}

func TestSetKeyRoundTrip(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(t.TempDir())

	require.NoError(t, s.SetKey(provider.OpenAI, "sk-test"))
	require.NoError(t, s.SetKey(provider.Anthropic, "sk-ant-test"))

	key, ok := s.Key(provider.OpenAI)
	require.True(t, ok)
	assert.Equal(t, "sk-test", key)

	cfg, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.DefaultProvider, "first saved provider becomes the default")

	st, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), st.Mode().Perm())
}

func TestEnvOverridesFile(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(t.TempDir())
	require.NoError(t, s.SetKey(provider.Google, "from-file"))

	t.Setenv("GEMINI_API_KEY", "from-env")
	key, ok := s.Key(provider.Google)
	require.True(t, ok)
	assert.Equal(t, "from-env", key)
}

func TestKeyMissing(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(t.TempDir())
	_, ok := s.Key(provider.Cohere)
	assert.False(t, ok)
}

func TestConfigured(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(t.TempDir())
	require.NoError(t, s.SetKey(provider.Grok, "xai-k"))
	t.Setenv("OPENAI_API_KEY", "sk-env")

	assert.Equal(t, []provider.Provider{provider.Grok, provider.OpenAI}, s.Configured())
}

func TestDefaultFallsBackWhenKeyGone(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(&Config{
		APIKeys:         map[string]string{"anthropic": "sk-ant-k"},
		DefaultProvider: "openai",
	}))

	p, model, ok := s.Default()
	require.True(t, ok)
	assert.Equal(t, provider.Anthropic, p)
	assert.Equal(t, provider.DefaultModel(provider.Anthropic), model)
}

func TestDefaultHonorsSavedModel(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(&Config{
		APIKeys:         map[string]string{"openai": "sk-k"},
		DefaultProvider: "openai",
		DefaultModel:    "gpt-4o-mini",
	}))

	p, model, ok := s.Default()
	require.True(t, ok)
	assert.Equal(t, provider.OpenAI, p)
	assert.Equal(t, "gpt-4o-mini", model)
}

func TestDefaultWithNothingConfigured(t *testing.T) {
	clearProviderEnv(t)
	s := NewStore(t.TempDir())
	_, _, ok := s.Default()
	assert.False(t, ok)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o600))
	_, err := NewStore(dir).Load()
	assert.Error(t, err)
}
