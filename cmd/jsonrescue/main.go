// Command jsonrescue recovers a structured risk-assessment record from LLM
// completion text. It reads the completion from the file given as the first
// argument, or from stdin, and writes the recovery result to stdout as JSON.
//
// The process exits 0 even when recovery falls back, since the engine is
// total and the fallback record is a valid outcome. Only usage and configuration
// errors exit non-zero.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rfpscan/jsonrescue/core/recovery"
	"github.com/rfpscan/jsonrescue/internal/config"
	"github.com/rfpscan/jsonrescue/providers/observability"
	"github.com/rfpscan/jsonrescue/providers/observability/promobs"
	"github.com/rfpscan/jsonrescue/providers/observability/slogobs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "jsonrescue:", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	observer := buildObserver(cfg)
	engine := recovery.New(
		recovery.WithObserver(observer),
		recovery.WithErrorWindow(cfg.ErrorWindow),
	)

	raw, err := readInput(os.Args[1:])
	if err != nil {
		return err
	}

	ctx := context.Background()
	runID := uuid.NewString()
	observer.Info(ctx, "processing completion",
		observability.String(observability.AttrRunID, runID),
		observability.Int(observability.AttrInputLength, len(raw)),
	)

	result := engine.Recover(ctx, raw)

	observer.Info(ctx, "recovery finished",
		observability.String(observability.AttrRunID, runID),
		observability.String(observability.AttrRecoveryMethod, string(result.Method)),
		observability.Bool("success", result.Success),
	)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// buildObserver assembles the diagnostics sink: slog output, wrapped with
// Prometheus collectors when a metrics address is configured.
func buildObserver(cfg config.Config) observability.Provider {
	base := slogobs.New(
		slogobs.WithFormat(slogobs.ParseFormat(cfg.LogFormat)),
		slogobs.WithLevel(slogobs.ParseLevel(cfg.LogLevel)),
		slogobs.WithColors(cfg.LogColors),
	)
	if cfg.MetricsAddr == "" {
		return base
	}

	registry := prometheus.NewRegistry()
	go serveMetrics(cfg.MetricsAddr, registry, base)
	return promobs.New(registry, promobs.WithLogDelegate(base))
}

func serveMetrics(addr string, registry *prometheus.Registry, log observability.Provider) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error(context.Background(), "metrics server stopped", observability.Error(err))
	}
}

// readInput returns the completion text from the file named by the first
// argument, or from stdin when no argument is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
