package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	LlmProviderOpenAI = "openai"
	LlmProviderGemini = "gemini"
	LlmProviderClaude = "claude"
)

type Secrets struct {
	LlmProvider string        `json:"llmProvider"`
	OpenAI      LlmSecrets    `json:"openai"`
	Gemini      LlmSecrets    `json:"gemini"`
	Claude      LlmSecrets    `json:"claude"`
	Alpaca      AlpacaSecrets `json:"alpaca"`

	Port                   int  `json:"port"`
	EnableCors             bool `json:"enableCors"`
	EnableNewsSentiment    bool `json:"enableNewsSentiment"`
	EnableTrendForecasting bool `json:"enableTrendForecasting"`
	MaxConcurrency         int  `json:"maxConcurrency"`
}

type LlmSecrets struct {
	ApiKey string `json:"apiKey"`
	Model  string `json:"model"`
}

// optional - news falls back to yahoo when unset
type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
}

func (a AlpacaSecrets) Enabled() bool {
	return a.ApiKey != "" && a.ApiSecret != ""
}

func defaultSecrets() Secrets {
	return Secrets{
		LlmProvider: LlmProviderOpenAI,
		OpenAI: LlmSecrets{
			Model: "gpt-4",
		},
		Gemini: LlmSecrets{
			Model: "gemini-2.0-flash",
		},
		Claude: LlmSecrets{
			Model: "claude-3-5-haiku-latest",
		},
		Port:                   5000,
		EnableCors:             true,
		EnableNewsSentiment:    true,
		EnableTrendForecasting: true,
		MaxConcurrency:         4,
	}
}

func secretsFile() string {
	if f := os.Getenv("ANALYZER_SECRETS_FILE"); f != "" {
		return f
	}
	if os.Getenv("ANALYZER_ENV") == "dev" {
		return "secrets-dev.json"
	}
	return "secrets.json"
}

// LoadSecrets reads the optional secrets file and then applies environment
// overrides. A missing file is not an error.
func LoadSecrets() (*Secrets, error) {
	secrets := defaultSecrets()

	f, err := os.ReadFile(secretsFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not open secrets file: %w", err)
	}
	if err == nil {
		err = json.Unmarshal(f, &secrets)
		if err != nil {
			return nil, fmt.Errorf("failed to parse secrets file: %w", err)
		}
	}

	err = applyEnv(&secrets, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return &secrets, secrets.Validate()
}

func applyEnv(s *Secrets, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = strings.ToLower(v) == "true"
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
		return nil
	}

	str("LLM_PROVIDER", &s.LlmProvider)
	str("OPENAI_API_KEY", &s.OpenAI.ApiKey)
	str("OPENAI_MODEL", &s.OpenAI.Model)
	str("GEMINI_API_KEY", &s.Gemini.ApiKey)
	str("GEMINI_MODEL", &s.Gemini.Model)
	str("ANTHROPIC_API_KEY", &s.Claude.ApiKey)
	str("ANTHROPIC_MODEL", &s.Claude.Model)
	str("ALPACA_API_KEY", &s.Alpaca.ApiKey)
	str("ALPACA_API_SECRET", &s.Alpaca.ApiSecret)
	boolean("ENABLE_CORS", &s.EnableCors)
	boolean("ENABLE_NEWS_SENTIMENT", &s.EnableNewsSentiment)
	boolean("ENABLE_TREND_FORECASTING", &s.EnableTrendForecasting)

	if err := integer("BACKEND_PORT", &s.Port); err != nil {
		return err
	}
	if err := integer("ANALYZER_MAX_CONCURRENCY", &s.MaxConcurrency); err != nil {
		return err
	}

	s.LlmProvider = strings.ToLower(s.LlmProvider)
	return nil
}

// Validate only checks shape. A missing api key is allowed so the
// service can still serve market data; narrative calls will report it.
func (s Secrets) Validate() error {
	switch s.LlmProvider {
	case LlmProviderOpenAI, LlmProviderGemini, LlmProviderClaude:
	default:
		return fmt.Errorf("unknown llm provider %q", s.LlmProvider)
	}
	if s.Port <= 0 {
		return fmt.Errorf("invalid port %d", s.Port)
	}
	if s.MaxConcurrency <= 0 {
		return fmt.Errorf("max concurrency must be positive, got %d", s.MaxConcurrency)
	}
	return nil
}

// ActiveLlm returns credentials for the configured provider
func (s Secrets) ActiveLlm() LlmSecrets {
	switch s.LlmProvider {
	case LlmProviderGemini:
		return s.Gemini
	case LlmProviderClaude:
		return s.Claude
	default:
		return s.OpenAI
	}
}
