package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Origins allowed by CORS; "*" allows any origin without credentials.
	CORSAllowedOrigins []string

	// Database
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseURL    string // file path for sqlite, connection string for postgres

	// Auth
	JWTSecret   string
	JWTAudience string

	// Text generation
	TextgenProvider string // "gemini" or "openai"
	GoogleAPIKey    string
	GoogleModel     string
	LLMURL          string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel        string // model name, e.g. "qwen3-8b"
}

// Load reads .env (if present) and the process environment. It exits the
// process when a required value is missing or malformed.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := fromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func fromEnv(getenv func(string) string) (*Config, error) {
	get := func(k, fallback string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return fallback
	}

	timeout, err := time.ParseDuration(get("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT=%q is not a valid duration: %w", getenv("SHUTDOWN_TIMEOUT"), err)
	}

	cfg := &Config{
		ServerAddress:      get("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:    timeout,
		CORSAllowedOrigins: splitList(get("CORS_ALLOWED_ORIGINS", "*")),
		DatabaseDriver:     get("DATABASE_DRIVER", DriverSQLite),
		DatabaseURL:        get("DATABASE_URL", "practice.db"),
		JWTSecret:          getenv("JWT_SECRET"),
		JWTAudience:        get("JWT_AUDIENCE", "authenticated"),
		TextgenProvider:    get("TEXTGEN_PROVIDER", ProviderGemini),
		GoogleAPIKey:       get("GOOGLE_API_KEY", getenv("GOOGLE_AI_KEY")),
		GoogleModel:        get("GOOGLE_MODEL_NAME", "gemini-2.0-flash"),
		LLMURL:             get("LLM_URL", "http://localhost:1234"),
		LLMModel:           get("LLM_MODEL", "qwen3-8b"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("required environment variable JWT_SECRET is not set")
	}

	switch cfg.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("DATABASE_DRIVER=%q must be %q or %q", cfg.DatabaseDriver, DriverSQLite, DriverPostgres)
	}

	switch cfg.TextgenProvider {
	case ProviderGemini:
		if cfg.GoogleAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY (or GOOGLE_AI_KEY) is required for the gemini provider")
		}
	case ProviderOpenAI:
	default:
		return nil, fmt.Errorf("TEXTGEN_PROVIDER=%q must be %q or %q", cfg.TextgenProvider, ProviderGemini, ProviderOpenAI)
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
