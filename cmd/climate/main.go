// Command climate aggregates NOAA tab-delimited climate observation files
// into per-state summaries.
//
// Usage:
//
//	climate data_tn.tdv data_wa.tdv
//
// The rendered report goes to stdout; logs go to stderr. Unopenable files
// are reported and skipped, and a best-effort report is still produced for
// every state observed in the files that did open.
//
// With KAFKA_ENABLED=true each state summary is also published to the
// configured Kafka topic. With HTTP_ADDR set the process stays resident
// after rendering, serving /healthz, /readyz, /metrics, and /summary until
// interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	httpadapter "github.com/couchcryptid/climate-summary/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/climate-summary/internal/adapter/kafka"
	"github.com/couchcryptid/climate-summary/internal/config"
	"github.com/couchcryptid/climate-summary/internal/domain"
	"github.com/couchcryptid/climate-summary/internal/observability"
	"github.com/couchcryptid/climate-summary/internal/pipeline"
	"github.com/couchcryptid/climate-summary/internal/report"
)

// summaryStore hands the finished summary to the HTTP adapter.
type summaryStore struct {
	mu  sync.RWMutex
	s   report.Summary
	set bool
}

func (h *summaryStore) put(s report.Summary) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.s, h.set = s, true
}

func (h *summaryStore) Summary() (report.Summary, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.s, h.set
}

func main() {
	_ = godotenv.Load()

	paths := os.Args[1:]
	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s tdv_file1 tdv_file2 ... tdv_fileN\n", os.Args[0])
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	parser := domain.Parser{Strict: cfg.StrictFields}
	engine := pipeline.New(parser, logger, metrics)
	summaries := &summaryStore{}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *httpadapter.Server
	if cfg.HTTPAddr != "" {
		srv = httpadapter.NewServer(cfg.HTTPAddr, engine, summaries, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
	}

	table, err := engine.Run(ctx, paths)
	if err != nil {
		logger.Error("aggregation interrupted", "error", err)
		shutdownServer(srv, cfg, logger)
		os.Exit(1)
	}

	summary := report.Build(table)
	summaries.put(summary)

	if err := report.Render(os.Stdout, summary); err != nil {
		logger.Error("render report", "error", err)
	}

	if cfg.KafkaEnabled {
		publishSummary(ctx, cfg, logger, metrics, summary)
	}

	// Stay resident for scraping when the ops server is enabled.
	if srv != nil {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownServer(srv, cfg, logger)
	}
}

func publishSummary(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, summary report.Summary) {
	writer := kafkaadapter.NewWriter(cfg, logger)
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}()

	publishCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := writer.PublishSummary(publishCtx, summary); err != nil {
		logger.Error("publish summary failed", "error", err)
		return
	}
	metrics.SummariesPublished.Add(float64(len(summary.States)))
	logger.Info("summary published", "topic", cfg.KafkaSummaryTopic, "states", len(summary.States))
}

func shutdownServer(srv *httpadapter.Server, cfg *config.Config, logger *slog.Logger) {
	if srv == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
}
