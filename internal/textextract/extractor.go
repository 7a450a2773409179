package textextract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joseph-ayodele/claims-parser/constants"
	"github.com/joseph-ayodele/claims-parser/internal/common"
)

// Result is the outcome of stage 1: file -> text.
type Result struct {
	Text     string
	Pages    int
	Format   string // constants.FormatPDF | constants.FormatText
	Method   string // "pdf-text" | "plain-text"
	Duration time.Duration
	Warnings []string
}

// Config controls extraction behavior.
type Config struct {
	// MaxPages caps how many PDF pages are read; 0 reads all of them.
	MaxPages int
}

// Extractor reads claim documents into best-effort plain text: a Result
// with empty Text and a nil error means the document has no extractable
// text layer. Whether an empty or failed document is skipped or reported
// is the caller's call.
type Extractor struct {
	cfg Config
	log *slog.Logger
}

func NewExtractor(cfg Config, log *slog.Logger) *Extractor {
	if log == nil {
		log = slog.Default()
	}
	return &Extractor{cfg: cfg, log: log}
}

// Extract dispatches on the file extension. Unsupported extensions and
// unreadable files are errors; past that, trouble inside the document
// degrades to warnings so one bad page cannot sink the rest.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := filepath.Ext(path)
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return Result{}, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var res Result
	var err error
	switch format {
	case constants.FormatPDF:
		res, err = extractPDF(path, e.cfg.MaxPages)
	default:
		res, err = extractPlainText(path)
	}
	if err != nil {
		return Result{}, err
	}

	res.Format = format
	res.Text = Normalize(res.Text)
	res.Duration = time.Since(start)

	e.log.Debug("textextract.ok",
		"run_id", common.RunIDFromContext(ctx),
		"path", path,
		"format", format,
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
		"warnings", len(res.Warnings))
	return res, nil
}

func extractPlainText(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", common.ErrNotFound, path)
		}
		return Result{}, common.WrapError(err, "read text file")
	}
	res := Result{Method: "plain-text", Pages: 1}
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
		res.Warnings = append(res.Warnings, "dropped invalid UTF-8 bytes")
	}
	res.Text = text
	return res, nil
}
