package config

import (
	"testing"
	"time"
)

func envFunc(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := fromEnv(envFunc(map[string]string{
		"JWT_SECRET":     "secret",
		"GOOGLE_API_KEY": "key",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ServerAddress != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.ServerAddress)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("expected CORS origins [*], got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %v", cfg.ShutdownTimeout)
	}
	if cfg.DatabaseDriver != DriverSQLite || cfg.DatabaseURL != "practice.db" {
		t.Errorf("unexpected database config: %q %q", cfg.DatabaseDriver, cfg.DatabaseURL)
	}
	if cfg.JWTAudience != "authenticated" {
		t.Errorf("expected audience 'authenticated', got %q", cfg.JWTAudience)
	}
	if cfg.TextgenProvider != ProviderGemini || cfg.GoogleModel != "gemini-2.0-flash" {
		t.Errorf("unexpected textgen config: %q %q", cfg.TextgenProvider, cfg.GoogleModel)
	}
}

func TestFromEnv_GoogleKeyFallback(t *testing.T) {
	cfg, err := fromEnv(envFunc(map[string]string{
		"JWT_SECRET":    "secret",
		"GOOGLE_AI_KEY": "legacy",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GoogleAPIKey != "legacy" {
		t.Errorf("expected fallback key, got %q", cfg.GoogleAPIKey)
	}

	cfg, err = fromEnv(envFunc(map[string]string{
		"JWT_SECRET":     "secret",
		"GOOGLE_API_KEY": "primary",
		"GOOGLE_AI_KEY":  "legacy",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GoogleAPIKey != "primary" {
		t.Errorf("expected primary key to win, got %q", cfg.GoogleAPIKey)
	}
}

func TestFromEnv_OpenAIProviderNeedsNoGoogleKey(t *testing.T) {
	cfg, err := fromEnv(envFunc(map[string]string{
		"JWT_SECRET":       "secret",
		"TEXTGEN_PROVIDER": "openai",
		"LLM_URL":          "http://llm:8000",
		"DATABASE_DRIVER":  "postgres",
		"DATABASE_URL":     "postgres://u:p@db/practice",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLMURL != "http://llm:8000" || cfg.LLMModel != "qwen3-8b" {
		t.Errorf("unexpected llm config: %q %q", cfg.LLMURL, cfg.LLMModel)
	}
	if cfg.DatabaseDriver != DriverPostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseDriver)
	}
}

func TestFromEnv_CORSOrigins(t *testing.T) {
	cfg, err := fromEnv(envFunc(map[string]string{
		"JWT_SECRET":           "secret",
		"GOOGLE_API_KEY":       "key",
		"CORS_ALLOWED_ORIGINS": "https://app.example.com, ,http://localhost:5173",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"https://app.example.com", "http://localhost:5173"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.CORSAllowedOrigins)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %q, got %q", i, want[i], cfg.CORSAllowedOrigins[i])
		}
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"missing jwt secret", map[string]string{"GOOGLE_API_KEY": "k"}},
		{"bad duration", map[string]string{"JWT_SECRET": "s", "GOOGLE_API_KEY": "k", "SHUTDOWN_TIMEOUT": "soon"}},
		{"unknown driver", map[string]string{"JWT_SECRET": "s", "GOOGLE_API_KEY": "k", "DATABASE_DRIVER": "mysql"}},
		{"unknown provider", map[string]string{"JWT_SECRET": "s", "TEXTGEN_PROVIDER": "claude"}},
		{"gemini without key", map[string]string{"JWT_SECRET": "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fromEnv(envFunc(tt.vars)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
