// Package diagfmt renders one validation error into every output shape the
// Tana toolchain speaks: the canonical diagnostic block, a colorized TTY
// variant, JSON, SARIF, and a grep-able one-liner.
//
// Block is the single place the canonical layout lives. Every compiled
// target (native hosts, the js/wasm module) goes through it, which is what
// keeps the output byte-identical across environments.
package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tanaval/internal/request"
	"tanaval/internal/source"
)

// Canonical glyphs. Fixed once, never varied by build target.
const (
	kindMarker = "x"
	gutterBar  = "|"
	caretGlyph = "^"
	helpMarker = "= help: "
	blockTitle = "Validation Error"
)

// styles maps each block element to a sprint function. The plain style is
// the identity, so the canonical block carries no escape sequences.
type styles struct {
	title func(a ...interface{}) string
	kind  func(a ...interface{}) string
	caret func(a ...interface{}) string
	help  func(a ...interface{}) string
}

var plainStyles = styles{
	title: fmt.Sprint,
	kind:  fmt.Sprint,
	caret: fmt.Sprint,
	help:  fmt.Sprint,
}

// Block renders the canonical diagnostic block for one request.
//
// It is a pure, total function: every input, however degenerate (line past
// end of file, column < 1, zero underline), maps to a well-defined string.
// The block ends with a single trailing newline.
func Block(req request.Request) string {
	var b strings.Builder
	writeBlock(&b, req, plainStyles, req.FilePath, 0)
	return b.String()
}

// writeBlock lays out the block row by row:
//
//	Validation Error
//	x <kind>
//
//	<pad> <file>:<line>:<col>
//	<pad>
//	<line> | <source line text>
//	<pad>  | <spaces><carets> <message>
//	<pad>
//	= help: <help>              (section present only when help is non-empty)
//
// <pad> is as many spaces as the line number has decimal digits, so the
// bars of the source row and the underline row share a column for any line.
func writeBlock(w io.Writer, req request.Request, st styles, displayPath string, maxSrcWidth int) {
	lineLabel := strconv.Itoa(req.Line)
	pad := strings.Repeat(" ", len(lineLabel))

	file := source.NewVirtual(req.FilePath, []byte(req.Source))
	srcLine := file.Line(req.Line)
	if maxSrcWidth > 0 {
		srcLine = truncateLine(srcLine, maxSrcWidth)
	}

	// Padding counts Unicode scalar values, matching the unit of Column.
	caretPad := req.Column - 1
	if caretPad < 0 {
		caretPad = 0
	}
	caretLen := req.UnderlineLength
	if caretLen < 0 {
		caretLen = 0
	}

	fmt.Fprintf(w, "%s\n", st.title(blockTitle))
	fmt.Fprintf(w, "%s\n", st.kind(kindMarker+" "+req.Kind))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "%s %s:%d:%d\n", pad, displayPath, req.Line, req.Column)
	fmt.Fprintf(w, "%s\n", pad)
	fmt.Fprintf(w, "%s %s %s\n", lineLabel, gutterBar, srcLine)
	fmt.Fprintf(w, "%s %s %s%s %s\n",
		pad, gutterBar,
		strings.Repeat(" ", caretPad),
		st.caret(strings.Repeat(caretGlyph, caretLen)),
		req.Message)

	if req.Help != "" {
		fmt.Fprintf(w, "%s\n", pad)
		fmt.Fprintf(w, "%s\n", st.help(helpMarker+req.Help))
	}
}

func displayPath(path string, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		return source.DisplayPath(path, "absolute", "")
	case PathModeRelative:
		return source.DisplayPath(path, "relative", baseDir)
	case PathModeBasename:
		return source.DisplayPath(path, "basename", "")
	default:
		return path
	}
}
