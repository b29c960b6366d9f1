package source

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// NewVirtual wraps in-memory content as a File and builds its line index.
// The content is used as-is: virtual sources belong to the caller and are
// echoed back verbatim, so no BOM/CRLF normalization happens here.
func NewVirtual(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   FileVirtual,
	}
}

// LineCount returns the number of lines in the file. Empty content still
// counts as one (empty) line.
func (f *File) LineCount() int {
	return len(f.LineIdx) + 1
}

// Line returns the 1-based n-th line without its terminator.
// Out-of-range line numbers (including n < 1) yield an empty string.
func (f *File) Line(n int) string {
	if n < 1 || n > f.LineCount() {
		return ""
	}

	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start uint32
	if n > 1 {
		start = f.LineIdx[n-2] + 1
	}

	end := lenContent
	if n-1 < len(f.LineIdx) {
		end = f.LineIdx[n-1]
	}

	if start >= lenContent {
		return ""
	}
	return string(f.Content[start:end])
}

// DisplayPath formats a path for human output.
// mode: "absolute", "relative", "basename", "auto".
// baseDir only matters for "relative".
func DisplayPath(path, mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(path); err == nil {
			return abs
		}
		return path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(path, baseDir); err == nil {
			return rel
		}
		return path

	case "basename":
		return BaseName(path)

	case "auto":
		// short or relative paths stay as-is, long absolute ones shrink
		if len(path) < 40 || !filepath.IsAbs(path) {
			return path
		}
		return BaseName(path)

	default:
		return path
	}
}
