package diagfmt

import (
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tanaval/internal/request"
)

// Pretty writes the diagnostic block with optional terminal presentation:
// color, display-path rewriting, and width-limited source rows. With the
// zero options the written bytes are exactly Block(req): presentation is
// layered around the canonical layout, never baked into it.
func Pretty(w io.Writer, req request.Request, opts PrettyOpts) {
	st := plainStyles
	if opts.Color {
		st = colorStyles()
	}
	path := displayPath(req.FilePath, opts.PathMode, opts.BaseDir)
	writeBlock(w, req, st, path, int(opts.Width))
}

func colorStyles() styles {
	return styles{
		title: color.New(color.Bold).SprintFunc(),
		kind:  color.New(color.FgRed, color.Bold).SprintFunc(),
		caret: color.New(color.FgRed, color.Bold).SprintFunc(),
		help:  color.New(color.FgCyan).SprintFunc(),
	}
}

// truncateLine shortens a source row to the given visible width. Widths are
// terminal cells, not runes, so wide glyphs count double.
func truncateLine(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
