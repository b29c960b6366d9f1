package diagfmt

import (
	"fmt"
	"strings"

	"tanaval/internal/request"
)

// Short renders a stable one-line form suitable for golden files and logs:
//
//	<file>:<line>:<column> error <kind>: <message>
//
// Multi-line messages are collapsed to a single line.
func Short(req request.Request) string {
	return fmt.Sprintf("%s:%d:%d error %s: %s",
		req.FilePath, req.Line, req.Column, req.Kind, sanitizeMessage(req.Message))
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
