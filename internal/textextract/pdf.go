package textextract

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/joseph-ayodele/claims-parser/internal/common"
)

// extractPDF reads the text layer of a PDF row by row. Pages without a
// readable text layer contribute a warning instead of failing the file, so
// a scanned image-only PDF yields empty text and a warning per page.
func extractPDF(path string, maxPages int) (res Result, err error) {
	// the pdf package panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf %s: %v", path, r)
		}
	}()

	data, rerr := os.ReadFile(path)
	if rerr != nil {
		if os.IsNotExist(rerr) {
			return Result{}, fmt.Errorf("%w: %s", common.ErrNotFound, path)
		}
		return Result{}, common.WrapError(rerr, "read pdf")
	}
	reader, rerr := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if rerr != nil {
		return Result{}, common.WrapError(rerr, "open pdf")
	}

	total := reader.NumPage()
	res = Result{Method: "pdf-text", Pages: total}
	if maxPages > 0 && total > maxPages {
		res.Warnings = append(res.Warnings, fmt.Sprintf("reading %d of %d pages", maxPages, total))
		total = maxPages
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= total; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: missing page object", pageNum))
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("page %d: %v", pageNum, rowErr))
			continue
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(word.S)
			}
			sb.WriteByte('\n')
		}
	}
	res.Text = sb.String()
	return res, nil
}
