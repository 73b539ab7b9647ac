package scan

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultRecencyWindowDays is the trailing modification window used when
// recency filtering is requested without an explicit span.
const DefaultRecencyWindowDays = 7

// IsRecent reports whether the file at path was modified within the
// trailing window. A stat failure means unknown freshness and counts as
// not recent.
func IsRecent(path string, windowDays int) bool {
	info, err := os.Stat(path)
	if err != nil {
		log.Warn("Cannot stat file for recency check", "path", path, "error", err)
		return false
	}
	window := time.Duration(windowDays) * 24 * time.Hour
	return time.Since(info.ModTime()) <= window
}

// FilterRecent keeps only the paths modified within the trailing window,
// preserving the input order.
func FilterRecent(paths []string, windowDays int) []string {
	var recent []string
	for _, p := range paths {
		if IsRecent(p, windowDays) {
			recent = append(recent, p)
		}
	}
	return recent
}
