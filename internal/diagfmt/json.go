package diagfmt

import (
	"encoding/json"
	"io"

	"tanaval/internal/request"
)

// LocationJSON describes where the error points in the contract source.
type LocationJSON struct {
	File            string `json:"file"`
	Line            int    `json:"line"`
	Column          int    `json:"column"`
	UnderlineLength int    `json:"underline_length"`
}

// DiagnosticJSON is the machine-readable form of one validation error.
type DiagnosticJSON struct {
	Kind     string       `json:"kind"`
	Message  string       `json:"message"`
	Help     string       `json:"help,omitempty"`
	Location LocationJSON `json:"location"`
	Rendered string       `json:"rendered,omitempty"`
}

// BuildDiagnosticJSON assembles the JSON payload without serializing it.
func BuildDiagnosticJSON(req request.Request, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Kind:    req.Kind,
		Message: req.Message,
		Help:    req.Help,
		Location: LocationJSON{
			File:            displayPath(req.FilePath, opts.PathMode, opts.BaseDir),
			Line:            req.Line,
			Column:          req.Column,
			UnderlineLength: req.UnderlineLength,
		},
	}
	if opts.IncludeBlock {
		out.Rendered = Block(req)
	}
	return out
}

// JSON writes the validation error as an indented JSON document.
func JSON(w io.Writer, req request.Request, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticJSON(req, opts))
}
