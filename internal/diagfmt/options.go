package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the request's display path untouched. The path in a
	// validation request is already the host's presentation choice, and the
	// canonical block must echo it byte for byte.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures terminal presentation around the canonical block.
// The zero value reproduces the canonical block exactly.
type PrettyOpts struct {
	Color    bool
	Width    uint8 // max visible width of the quoted source row, 0 = unlimited
	PathMode PathMode
	BaseDir  string // base for PathModeRelative; "" means working directory
}

// JSONOpts configures JSON output of a rendered validation error.
type JSONOpts struct {
	PathMode     PathMode
	BaseDir      string
	IncludeBlock bool // embed the canonical text block in the payload
}

// SarifRunMeta provides tool metadata for SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
