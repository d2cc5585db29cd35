package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        int
	DatabaseURL string
	NatsURL     string
	NatsToken   string
	LogLevel    string
	APIToken    string

	GeminiAPIKey string
	GeminiModel  string

	// Size/validity guard thresholds.
	MinMessages      int
	FreeTierMax      int
	WarningThreshold int

	// Recency windows for the latency-bounded detectors.
	LatencyWindowMonths int
	PrideWindowMonths   int

	// Outer deadline for one full analysis run.
	AnalysisTimeout time.Duration

	// Preview cache expiry.
	PreviewTTL   time.Duration
	PreviewSweep time.Duration
}

func Load() Config {
	return Config{
		Port:        envInt("DUELO_PORT", 8760),
		DatabaseURL: envStr("DATABASE_URL", ""),
		NatsURL:     envStr("NATS_URL", ""),
		NatsToken:   envStr("NATS_TOKEN", ""),
		LogLevel:    envStr("LOG_LEVEL", "info"),
		APIToken:    envStr("DUELO_API_TOKEN", ""),

		GeminiAPIKey: envStr("GEMINI_API_KEY", ""),
		GeminiModel:  envStr("GEMINI_MODEL", "gemini-2.0-flash"),

		MinMessages:      envInt("DUELO_MIN_MESSAGES", 50),
		FreeTierMax:      envInt("DUELO_FREE_TIER_MAX", 5000),
		WarningThreshold: envInt("DUELO_WARNING_THRESHOLD", 4500),

		LatencyWindowMonths: envInt("DUELO_LATENCY_WINDOW_MONTHS", 6),
		PrideWindowMonths:   envInt("DUELO_PRIDE_WINDOW_MONTHS", 12),

		AnalysisTimeout: envDur("DUELO_ANALYSIS_TIMEOUT", 60*time.Second),

		PreviewTTL:   envDur("DUELO_PREVIEW_TTL", 10*time.Minute),
		PreviewSweep: envDur("DUELO_PREVIEW_SWEEP", 5*time.Minute),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
