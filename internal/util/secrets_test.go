package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func Test_applyEnv(t *testing.T) {
	t.Run("defaults survive empty env", func(t *testing.T) {
		s := defaultSecrets()
		err := applyEnv(&s, lookupFrom(map[string]string{}))
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(defaultSecrets(), s))
		require.NoError(t, s.Validate())
	})

	t.Run("overrides", func(t *testing.T) {
		s := defaultSecrets()
		err := applyEnv(&s, lookupFrom(map[string]string{
			"LLM_PROVIDER":             "Gemini",
			"GEMINI_API_KEY":           "g-key",
			"OPENAI_MODEL":             "gpt-4o",
			"ALPACA_API_KEY":           "a",
			"ALPACA_API_SECRET":        "b",
			"BACKEND_PORT":             "8080",
			"ENABLE_CORS":              "False",
			"ENABLE_NEWS_SENTIMENT":    "TRUE",
			"ENABLE_TREND_FORECASTING": "no",
			"ANALYZER_MAX_CONCURRENCY": "2",
		}))
		require.NoError(t, err)

		require.Equal(t, LlmProviderGemini, s.LlmProvider)
		require.Equal(t, LlmSecrets{ApiKey: "g-key", Model: "gemini-2.0-flash"}, s.ActiveLlm())
		require.Equal(t, "gpt-4o", s.OpenAI.Model)
		require.True(t, s.Alpaca.Enabled())
		require.Equal(t, 8080, s.Port)
		require.False(t, s.EnableCors)
		require.True(t, s.EnableNewsSentiment)
		require.False(t, s.EnableTrendForecasting)
		require.Equal(t, 2, s.MaxConcurrency)
	})

	t.Run("bad port", func(t *testing.T) {
		s := defaultSecrets()
		err := applyEnv(&s, lookupFrom(map[string]string{
			"BACKEND_PORT": "abc",
		}))
		require.Error(t, err)
	})
}

func TestSecrets_Validate(t *testing.T) {
	s := defaultSecrets()
	s.LlmProvider = "mystery"
	require.ErrorContains(t, s.Validate(), "unknown llm provider")

	s = defaultSecrets()
	s.MaxConcurrency = 0
	require.Error(t, s.Validate())
}

func TestLoadSecrets(t *testing.T) {
	t.Run("file then env", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "secrets.json")
		err := os.WriteFile(path, []byte(`{"openai": {"apiKey": "from-file"}, "port": 7000}`), 0o600)
		require.NoError(t, err)

		t.Setenv("ANALYZER_SECRETS_FILE", path)
		t.Setenv("BACKEND_PORT", "7001")
		t.Setenv("OPENAI_API_KEY", "")
		t.Setenv("OPENAI_MODEL", "")
		t.Setenv("LLM_PROVIDER", "")

		s, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, "from-file", s.OpenAI.ApiKey)
		// model default is kept when the file omits it
		require.Equal(t, "gpt-4", s.OpenAI.Model)
		require.Equal(t, 7001, s.Port)
	})

	t.Run("missing file is fine", func(t *testing.T) {
		t.Setenv("ANALYZER_SECRETS_FILE", filepath.Join(t.TempDir(), "nope.json"))
		_, err := LoadSecrets()
		require.NoError(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secrets.json")
		require.NoError(t, os.WriteFile(path, []byte(`{`), 0o600))
		t.Setenv("ANALYZER_SECRETS_FILE", path)
		_, err := LoadSecrets()
		require.Error(t, err)
	})
}
