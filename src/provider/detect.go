// Package provider holds the chat-completion clients and the key-pattern
// detection that picks one from a pasted API key.
package provider

import (
	"regexp"
	"strings"
)

// Provider identifies a supported chat-completion backend.
type Provider string

const (
	OpenAI     Provider = "openai"
	Anthropic  Provider = "anthropic"
	Google     Provider = "google"
	Perplexity Provider = "perplexity"
	Grok       Provider = "grok"
	Cohere     Provider = "cohere"
	Unknown    Provider = ""
)

// All lists the supported providers in display order.
func All() []Provider {
	return []Provider{OpenAI, Anthropic, Google, Perplexity, Grok, Cohere}
}

func (p Provider) Title() string {
	switch p {
	case OpenAI:
		return "OpenAI"
	case Anthropic:
		return "Anthropic"
	case Google:
		return "Google Gemini"
	case Perplexity:
		return "Perplexity"
	case Grok:
		return "Grok (xAI)"
	case Cohere:
		return "Cohere"
	default:
		return "Unknown"
	}
}

// Exact key shapes, checked before the looser prefix fallbacks. Cohere keys
// have no distinctive prefix, so its bare-alphanumeric pattern must run last.
var keyPatterns = []struct {
	provider Provider
	re       *regexp.Regexp
}{
	{Anthropic, regexp.MustCompile(`^sk-ant-[A-Za-z0-9\-_]+$`)},
	{OpenAI, regexp.MustCompile(`^sk-[A-Za-z0-9]{48}$`)},
	{Google, regexp.MustCompile(`^AIza[A-Za-z0-9\-_]{35}$`)},
	{Perplexity, regexp.MustCompile(`^pplx-[A-Za-z0-9]+$`)},
	{Grok, regexp.MustCompile(`^xai-[A-Za-z0-9\-_]+$`)},
	{Cohere, regexp.MustCompile(`^[A-Za-z0-9]{40,}$`)},
}

var keyPrefixes = []struct {
	provider Provider
	prefix   string
}{
	{Anthropic, "sk-ant-"},
	{Perplexity, "pplx-"},
	{Grok, "xai-"},
	{Google, "AIza"},
	{OpenAI, "sk-"},
}

// Detect infers the provider from the shape of an API key. Exact patterns win
// over prefix fallbacks so newer key formats still route correctly.
func Detect(key string) Provider {
	key = strings.TrimSpace(key)
	if key == "" {
		return Unknown
	}
	for _, kp := range keyPatterns {
		if kp.re.MatchString(key) {
			return kp.provider
		}
	}
	for _, kp := range keyPrefixes {
		if strings.HasPrefix(key, kp.prefix) {
			return kp.provider
		}
	}
	return Unknown
}

// Models returns the selectable model IDs for a provider, default first.
func Models(p Provider) []string {
	switch p {
	case OpenAI:
		return []string{"gpt-4o", "gpt-4o-mini", "gpt-4-turbo", "gpt-3.5-turbo"}
	case Anthropic:
		return []string{"claude-sonnet-4-20250514", "claude-3-5-sonnet-20241022", "claude-3-5-haiku-20241022"}
	case Google:
		return []string{"gemini-2.0-flash", "gemini-1.5-pro", "gemini-1.5-flash"}
	case Perplexity:
		return []string{"sonar-pro", "sonar", "sonar-reasoning"}
	case Grok:
		return []string{"grok-3", "grok-3-mini", "grok-2-latest"}
	case Cohere:
		return []string{"command-r-plus", "command-r", "command"}
	default:
		return nil
	}
}

// DefaultModel is the first entry of Models, or "" for an unknown provider.
func DefaultModel(p Provider) string {
	if ms := Models(p); len(ms) > 0 {
		return ms[0]
	}
	return ""
}

// BaseURL returns the production API endpoint for a provider.
func BaseURL(p Provider) string {
	switch p {
	case OpenAI:
		return "https://api.openai.com/v1"
	case Anthropic:
		return "https://api.anthropic.com/v1"
	case Google:
		return "https://generativelanguage.googleapis.com/v1beta"
	case Perplexity:
		return "https://api.perplexity.ai"
	case Grok:
		return "https://api.x.ai/v1"
	case Cohere:
		return "https://api.cohere.com/v2"
	default:
		return ""
	}
}
