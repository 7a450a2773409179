package export

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/claims-parser/internal/batch"
	"github.com/joseph-ayodele/claims-parser/internal/claims"
)

// WriteJSON writes the batch envelope as indented JSON. Decimal amounts
// marshal as strings, so totals make the trip without precision loss.
func WriteJSON(w io.Writer, res *batch.BatchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode batch result: %w", err)
	}
	return nil
}

// WriteJSONFile writes the batch envelope to path.
func WriteJSONFile(path string, res *batch.BatchResult, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := WriteJSON(f, res); err != nil {
		return err
	}
	logger.Info("export.json.ok",
		"path", path,
		"documents", len(res.Results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// WriteCSVFile writes the claim-summary CSV (with BOM) to path.
func WriteCSVFile(path string, docs []*claims.ParsedDocument, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.Write(BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}
	w := NewWriter(f)
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteDocuments(docs); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	logger.Info("export.csv.ok",
		"path", path,
		"documents", len(docs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
