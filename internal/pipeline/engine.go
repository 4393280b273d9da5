// Package pipeline drives the single-pass aggregation of TDV observation
// streams into the shared per-state accumulator table.
//
// Processing is deliberately single-threaded: streams are folded one after
// another in argument order, and lines within a stream strictly in file
// order. The first-wins extremum tie-break depends on that ordering.
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/climate-summary/internal/aggregate"
	"github.com/couchcryptid/climate-summary/internal/domain"
	"github.com/couchcryptid/climate-summary/internal/observability"
)

// Scanner buffer sizing. TDV lines are ~70 bytes, but the exporter has
// produced pathological comment rows before; tolerate up to 1 MiB.
const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 1024 * 1024
)

// ErrStreamUnavailable marks an input path that could not be opened or read.
// Such streams are reported and skipped; the run continues.
var ErrStreamUnavailable = errors.New("stream unavailable")

// Engine folds observation streams into a shared accumulator table.
type Engine struct {
	parser  domain.Parser
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates an Engine with the given parser policy and observability.
func New(parser domain.Parser, logger *slog.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{
		parser:  parser,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once the engine has fully processed at least
// one stream, or an error describing why the service is not yet ready.
func (e *Engine) CheckReadiness(_ context.Context) error {
	if !e.ready.Load() {
		return errors.New("engine has not processed any streams yet")
	}
	return nil
}

// Run opens each path in order and folds its lines into one shared table.
// A path that cannot be opened or read is logged and skipped; the run
// continues and the table still reflects every stream that succeeded.
// Run returns an error only when ctx is cancelled mid-run.
func (e *Engine) Run(ctx context.Context, paths []string) (*aggregate.Table, error) {
	table := aggregate.NewTable()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return table, err
		}
		if err := e.processFile(ctx, path, table); err != nil {
			if ctx.Err() != nil {
				return table, ctx.Err()
			}
			e.logger.Error("skipping stream", "path", path, "error", err)
			e.metrics.StreamsProcessed.WithLabelValues("failed").Inc()
			continue
		}
		e.metrics.StreamsProcessed.WithLabelValues("ok").Inc()
		e.ready.Store(true)
	}

	return table, nil
}

// processFile opens one path and folds it. Open and read failures are
// wrapped in ErrStreamUnavailable for the caller to report.
func (e *Engine) processFile(ctx context.Context, path string, table *aggregate.Table) error {
	start := time.Now()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStreamUnavailable, err)
	}
	defer f.Close()

	e.logger.Info("processing stream", "path", path)

	if err := e.FoldStream(ctx, f, table); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return fmt.Errorf("%w: %v", ErrStreamUnavailable, err)
	}

	e.metrics.StreamProcessingDuration.Observe(time.Since(start).Seconds())
	return nil
}

// FoldStream reads r line by line, parses each line, and folds valid records
// into table. Malformed lines (and, in strict mode, records with
// unparseable fields) are skipped and counted; they never abort the stream.
// Each record is applied in full before the next line is read.
func (e *Engine) FoldStream(ctx context.Context, r io.Reader, table *aggregate.Table) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialLineBuffer), maxLineBuffer)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return err
		}

		obs, coerced, err := e.parser.Parse(scanner.Text())
		if coerced > 0 {
			e.metrics.CoercedFields.Add(float64(coerced))
		}
		if err != nil {
			e.logger.Debug("skipping line", "line", lineNo, "error", err)
			e.metrics.MalformedLines.Inc()
			continue
		}

		table.GetOrCreate(obs.StateCode).Fold(obs)
		e.metrics.RecordsFolded.Inc()
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", lineNo+1, err)
	}

	e.metrics.StatesTracked.Set(float64(table.Len()))
	return nil
}
