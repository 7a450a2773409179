package constants

import "strings"

// Source formats for the format field in extraction results.
const (
	FormatPDF  = "PDF"
	FormatText = "TEXT"
)

// AllowedExtensions holds the default allowed file extensions for claim
// document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"txt":  {},
	"text": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its extraction format, or ""
// when the extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return FormatPDF
	case "txt", "text":
		return FormatText
	default:
		return ""
	}
}
