package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/hmnguyen/vietlearn/internal/config"
	"github.com/hmnguyen/vietlearn/internal/database"
	"github.com/hmnguyen/vietlearn/internal/inference/openai"
	"github.com/hmnguyen/vietlearn/internal/quiz"
	"github.com/hmnguyen/vietlearn/internal/server"
	"github.com/hmnguyen/vietlearn/internal/vocabulary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	setupLogger()

	cfg, err := config.Load(os.Getenv("VIETLEARN_CONFIG"))
	if err != nil {
		return fmt.Errorf("config.Load() > %w", err)
	}

	if cfg.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	db, err := database.Connect(context.Background(), cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Connect() > %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	defer func() {
		_ = openaiClient.Close()
	}()

	srv, err := server.New(
		vocabulary.NewDBWordRepository(db),
		vocabulary.NewDBGrammarRepository(db),
		quiz.NewGenerator(openaiClient),
	)
	if err != nil {
		return fmt.Errorf("server.New() > %w", err)
	}

	slog.Default().Info("Starting server", "address", cfg.Server.Address)
	return http.ListenAndServe(cfg.Server.Address, corsMiddleware(h2c.NewHandler(srv.Handler(), &http2.Server{})))
}

func setupLogger() {
	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
