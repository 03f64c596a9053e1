// Package fileutil holds filesystem path helpers shared by writers.
package fileutil

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Classic Windows MAX_PATH limit.
const windowsPathLimit = 260

// NormalizeLongPath returns a path safe for a subsequent write of
// arbitrary-length content. On Windows, paths beyond the classic limit get
// the extended-length prefix; everywhere else the path is returned
// unchanged.
func NormalizeLongPath(path string) string {
	if runtime.GOOS != "windows" {
		return path
	}
	if len(path) > windowsPathLimit && !strings.HasPrefix(path, `\\?\`) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return path
		}
		return `\\?\` + abs
	}
	return path
}
