// Package config persists API keys and defaults under the user's home
// directory and overlays them with environment variables.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"github.com/codeloom-ai/codeloom/src/provider"
)

// FileName is the on-disk config file inside the config directory.
const FileName = "config.json"

// Config is the persisted shape of ~/.codeloom/config.json.
type Config struct {
	APIKeys         map[string]string `json:"api_keys"`
	DefaultProvider string            `json:"default_provider,omitempty"`
	DefaultModel    string            `json:"default_model,omitempty"`
}

// Store reads and writes a Config in a fixed directory. The directory is
// explicit so tests never touch the real home.
type Store struct {
	dir string
}

// DefaultDir returns ~/.codeloom.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".codeloom"), nil
}

func NewStore(dir string) *Store { return &Store{dir: dir} }

// NewDefaultStore builds a store rooted at ~/.codeloom and loads a .env file
// from the working directory when one exists.
func NewDefaultStore() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	_ = godotenv.Load()
	return NewStore(dir), nil
}

func (s *Store) Dir() string  { return s.dir }
func (s *Store) Path() string { return filepath.Join(s.dir, FileName) }

// Load reads the config file. A missing file yields an empty config.
func (s *Store) Load() (*Config, error) {
	cfg := &Config{APIKeys: map[string]string{}}
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path(), err)
	}
	if cfg.APIKeys == nil {
		cfg.APIKeys = map[string]string{}
	}
	return cfg, nil
}

// Save writes the config file with owner-only permissions, since it holds
// API keys.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.Path(), append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SetKey stores a key for a provider and persists immediately.
func (s *Store) SetKey(p provider.Provider, key string) error {
	cfg, err := s.Load()
	if err != nil {
		return err
	}
	cfg.APIKeys[string(p)] = key
	if cfg.DefaultProvider == "" {
		cfg.DefaultProvider = string(p)
	}
	return s.Save(cfg)
}

// envVars lists the environment variables consulted per provider, in
// precedence order.
var envVars = map[provider.Provider][]string{
	provider.OpenAI:     {"OPENAI_API_KEY"},
	provider.Anthropic:  {"ANTHROPIC_API_KEY"},
	provider.Google:     {"GOOGLE_API_KEY", "GEMINI_API_KEY"},
	provider.Perplexity: {"PERPLEXITY_API_KEY"},
	provider.Grok:       {"XAI_API_KEY", "GROK_API_KEY"},
	provider.Cohere:     {"COHERE_API_KEY", "CO_API_KEY"},
}

// Key resolves the API key for a provider. Environment variables win over the
// config file so a shell export or .env entry can override a saved key.
func (s *Store) Key(p provider.Provider) (string, bool) {
	for _, name := range envVars[p] {
		if v := os.Getenv(name); v != "" {
			return v, true
		}
	}
	cfg, err := s.Load()
	if err != nil {
		return "", false
	}
	v, ok := cfg.APIKeys[string(p)]
	return v, ok && v != ""
}

// Configured returns the providers with a usable key, sorted by name.
func (s *Store) Configured() []provider.Provider {
	var out []provider.Provider
	for _, p := range provider.All() {
		if _, ok := s.Key(p); ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Default resolves the starting provider and model for a session: the saved
// default when its key is still usable, otherwise the first configured
// provider.
func (s *Store) Default() (provider.Provider, string, bool) {
	cfg, err := s.Load()
	if err == nil && cfg.DefaultProvider != "" {
		p := provider.Provider(cfg.DefaultProvider)
		if _, ok := s.Key(p); ok {
			model := cfg.DefaultModel
			if model == "" {
				model = provider.DefaultModel(p)
			}
			return p, model, true
		}
	}
	if ps := s.Configured(); len(ps) > 0 {
		return ps[0], provider.DefaultModel(ps[0]), true
	}
	return provider.Unknown, "", false
}
