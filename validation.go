// Package tanaval formats Tana smart-contract validation errors.
//
// One rendering function is shared by every Tana system (the native
// runtime and edge hosts, the browser playground, and the CLI tools) so a
// given error produces the same bytes no matter which compiled target
// emitted it. Hosts supply the error record and print the returned text
// verbatim; all layout decisions live behind this package.
package tanaval

import (
	"tanaval/internal/diagfmt"
	"tanaval/internal/request"
)

// Request describes one validation error to render. See FormatValidationError
// for the meaning of the fields.
type Request = request.Request

// FormatValidationError renders a validation error as a compiler-style
// diagnostic block:
//
//	Validation Error
//	x Invalid Import
//
//	  contract.ts:1:26
//
//	1 | import { console } from 'tana/invalid';
//	  |                          ^^^^^^^^^^^^ module 'tana/invalid' not found
//
//	= help: available modules: tana/core, tana/kv
//
// source is the full text of the file, filePath a display-only location,
// errorKind a short category label, line and column 1-based, and
// underlineLength the number of caret characters to draw at column. An
// empty help omits the help section entirely.
//
// The function is pure and total: out-of-range lines render an empty source
// line, column values below 1 clamp to zero padding, and a zero underline
// length draws no carets. Column and underlineLength are counted in Unicode
// scalar values. Concurrent callers need no coordination.
func FormatValidationError(source, filePath, errorKind string, line, column int, message, help string, underlineLength int) string {
	return diagfmt.Block(request.Request{
		Source:          source,
		FilePath:        filePath,
		Kind:            errorKind,
		Line:            line,
		Column:          column,
		Message:         message,
		Help:            help,
		UnderlineLength: underlineLength,
	})
}

// Format renders a validation error from its record form. It is equivalent
// to FormatValidationError with the record's fields.
func Format(req Request) string {
	return diagfmt.Block(req)
}
