package batch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/claims-parser/constants"
	"github.com/joseph-ayodele/claims-parser/internal/claims"
	"github.com/joseph-ayodele/claims-parser/internal/common"
	"github.com/joseph-ayodele/claims-parser/internal/textextract"
)

// TextExtractor is stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (textextract.Result, error)
}

// Runner fans a set of files out to a fixed worker pool. Each document
// runs stage 1 (text extraction) under its own timeout and stage 2
// (parsing, which cannot fail) independently of the others; the engine
// itself is stateless, so no coordination exists beyond collecting
// results. Results keep input order.
type Runner struct {
	extractor TextExtractor
	parser    *claims.Parser
	logger    *slog.Logger
	workers   int
	timeout   time.Duration
}

type Option func(*Runner)

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewRunner(extractor TextExtractor, parser *claims.Parser, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		extractor: extractor,
		parser:    parser,
		logger:    logger,
		workers:   4,
		timeout:   time.Minute,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run processes every path and blocks until the batch drains. A failed
// document never stops the batch; cancelling ctx stops feeding the pool
// and marks the unprocessed remainder SKIPPED.
func (r *Runner) Run(ctx context.Context, paths []string) *BatchResult {
	started := time.Now()
	runID := uuid.New()
	ctx = common.WithRunID(ctx, runID.String())
	r.logger.Info("batch.start", "run_id", runID.String(), "documents", len(paths), "workers", r.workers)

	results := make([]DocumentResult, len(paths))
	for i, path := range paths {
		results[i] = DocumentResult{ID: uuid.New(), Path: path, Status: constants.DocStatusQueued}
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.processOne(ctx, results[i])
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i := range results {
		if results[i].Status == constants.DocStatusQueued {
			results[i].Status = constants.DocStatusSkipped
		}
	}

	res := &BatchResult{
		RunID:     runID,
		StartedAt: started,
		ElapsedMS: time.Since(started).Milliseconds(),
		Stats:     tally(results),
		Results:   results,
	}
	r.logger.Info("batch.done",
		"run_id", runID.String(),
		"documents", len(paths),
		"parsed", res.Stats.Parsed,
		"failed", res.Stats.Failed,
		"skipped", res.Stats.Skipped,
		"elapsed", time.Since(started).String())
	return res
}

func (r *Runner) processOne(ctx context.Context, res DocumentResult) DocumentResult {
	start := time.Now()
	res.Status = constants.DocStatusRunning

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	extracted, err := r.extractor.Extract(ctx, res.Path)
	if err != nil {
		res.Status = constants.DocStatusFailed
		res.Err = err.Error()
		res.ElapsedMS = time.Since(start).Milliseconds()
		r.logger.Error("batch.extract.failed",
			"run_id", common.RunIDFromContext(ctx),
			"path", res.Path,
			"error", err)
		return res
	}
	res.Status = constants.DocStatusExtractOK
	res.Warnings = extracted.Warnings

	doc := r.parser.Parse(extracted.Text, filepath.Base(res.Path))
	res.Document = doc
	res.Status = constants.DocStatusParsed
	res.ElapsedMS = time.Since(start).Milliseconds()
	r.logger.Info("batch.doc.ok",
		"run_id", common.RunIDFromContext(ctx),
		"path", res.Path,
		"doc_type", string(doc.DocType),
		"fields", len(doc.Fields),
		"service_lines", len(doc.ServiceLines))
	return res
}

func tally(results []DocumentResult) Stats {
	stats := Stats{ByType: make(map[constants.DocType]uint32)}
	for i := range results {
		switch results[i].Status {
		case constants.DocStatusParsed:
			stats.Parsed++
			stats.ByType[results[i].Document.DocType]++
		case constants.DocStatusFailed:
			stats.Failed++
		case constants.DocStatusSkipped:
			stats.Skipped++
		}
	}
	return stats
}
