package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/claims-parser/constants"
)

// ScanStats aggregates one directory walk.
type ScanStats struct {
	Scanned uint32 `json:"scanned"`
	Matched uint32 `json:"matched"`
	Hidden  uint32 `json:"hidden"`
	Failed  uint32 `json:"failed"`
}

// ScanDirectory walks root, filters by includeExts (or the default allowed
// set), and skips hidden entries if requested. Returns matched paths in
// walk order plus aggregate stats; unreadable entries are logged and
// counted, never fatal.
func ScanDirectory(root string, includeExts []string, skipHidden bool, log *slog.Logger) ([]string, ScanStats, error) {
	if log == nil {
		log = slog.Default()
	}
	if strings.TrimSpace(root) == "" {
		return nil, ScanStats{}, errors.New("root path is required")
	}

	// Build ext set
	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		for e := range constants.AllowedExtensions {
			exts[e] = struct{}{}
		}
	} else {
		for _, e := range includeExts {
			e = constants.NormalizeExt(strings.TrimSpace(e))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var paths []string
	var stats ScanStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			log.Warn("scan.entry.failed", "path", path, "error", walkErr)
			stats.Failed++
			return nil // continue walking
		}
		// skip hidden dirs/files if requested
		if skipHidden && isHidden(path) {
			stats.Hidden++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		// only files
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return paths, stats, fmt.Errorf("walk: %w", err)
	}
	return paths, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
