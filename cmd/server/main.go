package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/skillprep/backend/internal/api"
	"github.com/skillprep/backend/internal/auth"
	"github.com/skillprep/backend/internal/infrastructure/config"
	"github.com/skillprep/backend/internal/service"
	"github.com/skillprep/backend/internal/store"
	"github.com/skillprep/backend/internal/textgen"

	_ "github.com/skillprep/backend/docs" // generated swagger docs
)

// @title           SkillPrep API
// @version         1.0
// @description     Practice sets, scored sessions, and model-written answer explanations.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		logger.Error("failed to create text generator", "provider", cfg.TextgenProvider, "error", err)
		os.Exit(1)
	}

	practiceSvc := service.NewPracticeService(db, gen, logger)
	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTAudience)
	handler := api.NewHandler(practiceSvc, verifier, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(cfg.CORSAllowedOrigins)(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // explanations wait on the model
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"database", cfg.DatabaseDriver,
		"textgen", cfg.TextgenProvider,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func newGenerator(ctx context.Context, cfg *config.Config) (textgen.Generator, error) {
	if cfg.TextgenProvider == config.ProviderOpenAI {
		return textgen.NewOpenAICompatible(cfg.LLMURL, cfg.LLMModel), nil
	}
	return textgen.NewGemini(ctx, textgen.GeminiOptions{
		APIKey: cfg.GoogleAPIKey,
		Model:  cfg.GoogleModel,
	})
}
