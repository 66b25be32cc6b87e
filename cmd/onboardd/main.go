package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/export"
	"github.com/hundredplus/onboard-tracker/internal/extract/gemini"
	"github.com/hundredplus/onboard-tracker/internal/hr"
	"github.com/hundredplus/onboard-tracker/internal/ingest"
	"github.com/hundredplus/onboard-tracker/internal/server"
)

func main() {
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Gemini.APIKey == "" && os.Getenv("GEMINI_API_KEY") == "" {
		// the scan operation will report ErrServiceUnavailable per attempt
		logger.Warn("GEMINI_API_KEY is not set; document extraction is disabled until it is configured")
	}

	client := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		BaseURL:     cfg.Gemini.BaseURL,
		Model:       cfg.Gemini.Model,
		Temperature: cfg.Gemini.Temperature,
		Timeout:     cfg.Gemini.Timeout,
	}, logger)

	normalizer := ingest.NewNormalizer(ingest.XLSXExtractor{}, ingest.DOCXExtractor{}, logger)
	session := ingest.NewSession(normalizer, client, logger)
	store := hr.NewStore(logger)
	exporter := export.NewService(logger)

	handler := server.NewHandler(store, session, client, exporter, logger)
	srv := server.New(cfg.Server, handler.Routes(), logger)

	if err := srv.Run(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
