// Package request models the validation-error record that host systems
// (runtime, edge, playground, CLI) hand over for rendering, and decodes it
// from the wire formats those hosts use.
package request

import (
	"fmt"

	"tanaval/internal/source"
)

// Request is one validation error to render. It is owned by the caller and
// never mutated by the renderer.
//
// Line and Column are 1-based. Column and UnderlineLength are counted in
// Unicode scalar values; the renderer uses the same unit everywhere so that
// every compiled target produces identical bytes.
type Request struct {
	// Source is the full text of the file being diagnosed. Hosts that keep
	// the contract on disk may leave it empty and set SourcePath instead.
	Source string `json:"source" toml:"source" yaml:"source" msgpack:"source"`

	// SourcePath points at the contract file to read when Source is empty.
	SourcePath string `json:"source_path,omitempty" toml:"source_path" yaml:"source_path" msgpack:"source_path"`

	// FilePath is the display-only location identifier, e.g. "contract.ts".
	FilePath string `json:"file_path" toml:"file_path" yaml:"file_path" msgpack:"file_path"`

	// Kind is the short error category, e.g. "Invalid Import".
	Kind string `json:"kind" toml:"kind" yaml:"kind" msgpack:"kind"`

	Line   int `json:"line" toml:"line" yaml:"line" msgpack:"line"`
	Column int `json:"column" toml:"column" yaml:"column" msgpack:"column"`

	// Message is shown inline after the caret run.
	Message string `json:"message" toml:"message" yaml:"message" msgpack:"message"`

	// Help is the trailing guidance section; empty means the section is
	// omitted entirely.
	Help string `json:"help,omitempty" toml:"help" yaml:"help" msgpack:"help"`

	// UnderlineLength is the number of caret characters to draw at Column.
	UnderlineLength int `json:"underline_length" toml:"underline_length" yaml:"underline_length" msgpack:"underline_length"`
}

// ResolveSource fills Source from SourcePath through the given FileSet when
// the host did not inline the contract text. Inline sources win.
func (r *Request) ResolveSource(fs *source.FileSet) error {
	if r.Source != "" || r.SourcePath == "" {
		return nil
	}
	f, err := fs.Load(r.SourcePath)
	if err != nil {
		return fmt.Errorf("failed to load source %q: %w", r.SourcePath, err)
	}
	r.Source = string(f.Content)
	if r.FilePath == "" {
		r.FilePath = f.Path
	}
	return nil
}
