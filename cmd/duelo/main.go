package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dueloapp/duelo/internal/analyzer"
	"github.com/dueloapp/duelo/internal/api"
	"github.com/dueloapp/duelo/internal/chat"
	"github.com/dueloapp/duelo/internal/config"
	"github.com/dueloapp/duelo/internal/detector"
	"github.com/dueloapp/duelo/internal/events"
	"github.com/dueloapp/duelo/internal/gemini"
	"github.com/dueloapp/duelo/internal/interpreter"
	"github.com/dueloapp/duelo/internal/preview"
	"github.com/dueloapp/duelo/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("duelo starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Gemini client (optional — without it every escalated category
	// falls back to deterministic scoring)
	var reasoner interpreter.Reasoner
	if cfg.GeminiAPIKey != "" {
		reasoner = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		slog.Info("gemini client ready", "model", cfg.GeminiModel)
	} else {
		slog.Warn("GEMINI_API_KEY not set — escalated categories will use fallback verdicts")
	}

	interp := interpreter.New(reasoner, interpreter.DefaultOptions, slog.Default())

	// Database (optional — analyses are still served from the preview cache)
	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — analyses will not be persisted")
	}

	// NATS (optional)
	var ev *events.Client
	if cfg.NatsURL != "" {
		var err error
		ev, err = events.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer ev.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set — completion events disabled")
	}

	previews := preview.NewStore(cfg.PreviewTTL, cfg.PreviewSweep, slog.Default())
	defer previews.Close()

	anl := analyzer.New(analyzer.Options{
		Guard: chat.GuardPolicy{
			MinMessages:      cfg.MinMessages,
			FreeTierMax:      cfg.FreeTierMax,
			WarningThreshold: cfg.WarningThreshold,
		},
		Windows: detector.Windows{
			LatencyMonths: cfg.LatencyWindowMonths,
			PrideMonths:   cfg.PrideWindowMonths,
		},
		Lexicon: detector.DefaultLexicon,
		Filter:  chat.DefaultFilterLexicon,
		Timeout: cfg.AnalysisTimeout,
	}, interp, previews, db, ev, slog.Default())

	srv := api.NewServer(cfg.Port, cfg.APIToken, anl, previews)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	if ev != nil {
		if err := ev.Publish("duelo.service.started", map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
		}); err != nil {
			slog.Warn("failed to publish startup event", "error", err)
		}
	}

	slog.Info("duelo ready", "port", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("duelo stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
