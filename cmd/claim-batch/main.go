package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/claims-parser/constants"
	"github.com/joseph-ayodele/claims-parser/internal/batch"
	"github.com/joseph-ayodele/claims-parser/internal/claims"
	"github.com/joseph-ayodele/claims-parser/internal/common"
	"github.com/joseph-ayodele/claims-parser/internal/config"
	"github.com/joseph-ayodele/claims-parser/internal/export"
	"github.com/joseph-ayodele/claims-parser/internal/textextract"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Load configuration so env-provided values become flag defaults
	cfg, err := config.Load()
	if err != nil {
		printError("Error: loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Parse CLI flags
	var (
		dir      = flag.String("dir", "", "directory to process claim documents from (required)")
		out      = flag.String("out", "", "output path; extension is set per format (defaults to the parent directory)")
		format   = flag.String("format", cfg.Export.Format, "export format: json, csv, xlsx or all")
		workers  = flag.Int("workers", cfg.Batch.Workers, "number of concurrent document workers")
		timeout  = flag.Duration("timeout", cfg.Batch.ProcessTimeout, "per-document processing timeout")
		only     = flag.String("only", "", "export only documents of this type (HCFA, EOB or UNKNOWN)")
		validate = flag.Bool("validate", cfg.Export.Validate, "check parsed documents against the interchange schema")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: -dir is required\n")
		os.Exit(2)
	}
	switch *format {
	case "json", "csv", "xlsx", "all":
	default:
		printError("Error: invalid -format %q, use json, csv, xlsx or all\n", *format)
		os.Exit(2)
	}
	var onlyType constants.DocType
	if *only != "" {
		t, ok := constants.ParseDocType(*only)
		if !ok {
			printError("Error: invalid -only %q, use HCFA, EOB or UNKNOWN\n", *only)
			os.Exit(2)
		}
		onlyType = t
	}

	// Setup logger
	level := parseLevel(cfg.Log.Level)
	if *verbose {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := context.Background()

	// Scan directory for processable documents
	paths, scanStats, err := batch.ScanDirectory(*dir, cfg.Batch.Extensions, cfg.Batch.SkipHidden, logger)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete",
		"dir", *dir,
		"scanned", scanStats.Scanned,
		"matched", scanStats.Matched,
		"hidden", scanStats.Hidden,
		"failed", scanStats.Failed)
	if len(paths) == 0 {
		logger.Error("nothing to process", "dir", *dir, "error", common.ErrEmptyBatch)
		os.Exit(1)
	}

	// Wire extractor, parser and runner
	extractor := textextract.NewExtractor(textextract.Config{MaxPages: cfg.Extract.MaxPages}, logger)
	parser := claims.NewParser(logger)
	runner := batch.NewRunner(extractor, parser, logger,
		batch.WithWorkers(*workers),
		batch.WithProcessTimeout(*timeout))

	res := runner.Run(ctx, paths)

	if *validate {
		if err := export.ValidateBatch(res); err != nil {
			logger.Error("schema validation failed", "error", err)
			os.Exit(1)
		}
		logger.Info("schema validation passed", "documents", len(res.Results))
	}

	// The JSON envelope always carries the full run; -only narrows the
	// row-oriented exports.
	docs := res.Documents()
	if onlyType != "" {
		var filtered []*claims.ParsedDocument
		for _, d := range docs {
			if d.DocType == onlyType {
				filtered = append(filtered, d)
			}
		}
		docs = filtered
	}

	// Without -out, exports land next to the input directory under a dated
	// name derived from it.
	outPath := func(ext string) string {
		if *out == "" {
			in := filepath.Clean(*dir)
			return filepath.Join(filepath.Dir(in), export.BuildFilename(filepath.Base(in)+"_claims", ext))
		}
		base := *out
		if e := filepath.Ext(base); e != "" {
			base = strings.TrimSuffix(base, e)
		}
		return base + "." + ext
	}

	written := make([]string, 0, 3)
	if *format == "json" || *format == "all" {
		p := outPath("json")
		if err := export.WriteJSONFile(p, res, logger); err != nil {
			logger.Error("failed to write JSON export", "path", p, "error", err)
			os.Exit(1)
		}
		written = append(written, p)
	}
	if *format == "csv" || *format == "all" {
		p := outPath("csv")
		if err := export.WriteCSVFile(p, docs, logger); err != nil {
			logger.Error("failed to write CSV export", "path", p, "error", err)
			os.Exit(1)
		}
		written = append(written, p)
	}
	if *format == "xlsx" || *format == "all" {
		p := outPath("xlsx")
		if err := export.ExportClaimsXLSX(p, docs, logger); err != nil {
			logger.Error("failed to write XLSX export", "path", p, "error", err)
			os.Exit(1)
		}
		written = append(written, p)
	}

	// Log summary
	logger.Info("batch processing complete",
		"run_id", res.RunID,
		"parsed", res.Stats.Parsed,
		"failed", res.Stats.Failed,
		"skipped", res.Stats.Skipped,
		"elapsed_ms", res.ElapsedMS)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents matched: %d\n", len(paths))
	fmt.Printf("- Parsed: %d\n", res.Stats.Parsed)
	fmt.Printf("- Failed: %d\n", res.Stats.Failed)
	fmt.Printf("- Skipped: %d\n", res.Stats.Skipped)
	fmt.Printf("- By type: HCFA=%d EOB=%d UNKNOWN=%d\n",
		res.Stats.ByType[constants.DocTypeHCFA],
		res.Stats.ByType[constants.DocTypeEOB],
		res.Stats.ByType[constants.DocTypeUnknown])
	for _, p := range written {
		fmt.Printf("- Output: %s\n", p)
	}

	if res.Stats.Failed > 0 {
		os.Exit(1)
	}
}
