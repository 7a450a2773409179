package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/claims-parser/internal/claims"
	"github.com/joseph-ayodele/claims-parser/internal/config"
	"github.com/joseph-ayodele/claims-parser/internal/export"
	"github.com/joseph-ayodele/claims-parser/internal/textextract"
)

func main() {
	var (
		textOnly = flag.Bool("text", false, "print extracted text instead of the parsed document")
		validate = flag.Bool("validate", false, "check the parsed document against the interchange schema")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "claimparse [-text] [-validate] [-v] <file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := textextract.NewExtractor(textextract.Config{MaxPages: cfg.Extract.MaxPages}, logger)

	start := time.Now()
	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("text extraction failed",
			"path", path, "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}
	logger.Info("text extraction OK",
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	if len(res.Warnings) > 0 {
		logger.Warn("extraction finished with warnings", "warnings", res.Warnings)
	}

	if *textOnly {
		fmt.Println(res.Text)
		return
	}

	parser := claims.NewParser(logger)
	doc := parser.Parse(res.Text, filepath.Base(path))

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		logger.Error("marshal document", "error", err)
		os.Exit(1)
	}
	if *validate {
		if err := export.ValidateDocumentJSON(data); err != nil {
			logger.Error("schema validation failed", "path", path, "error", err)
			os.Exit(1)
		}
	}
	fmt.Println(string(data))
}
