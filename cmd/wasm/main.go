//go:build js && wasm

// The wasm host adapter for the validation error formatter. It exposes the
// canonical rendering function to JavaScript (browser playground, Bun/Node
// CLI tooling) and contains no formatting logic of its own: both hosts and
// the native binaries call the exact same tanaval.FormatValidationError.
package main

import (
	"fmt"
	"syscall/js"

	"tanaval"
)

// formatValidationError bridges the eight-argument rendering call:
//
//	formatValidationError(source, filePath, errorKind, line, column,
//	                      message, help, underlineLength) -> string
//
// Returns {error: string} when the arguments do not line up.
func formatValidationError(this js.Value, args []js.Value) interface{} {
	if len(args) != 8 {
		return map[string]interface{}{
			"error": fmt.Sprintf("expected 8 arguments, got %d", len(args)),
		}
	}

	for _, idx := range []int{0, 1, 2, 5, 6} {
		if args[idx].Type() != js.TypeString {
			return map[string]interface{}{
				"error": fmt.Sprintf("argument %d must be a string", idx),
			}
		}
	}
	for _, idx := range []int{3, 4, 7} {
		if args[idx].Type() != js.TypeNumber {
			return map[string]interface{}{
				"error": fmt.Sprintf("argument %d must be a number", idx),
			}
		}
	}

	return tanaval.FormatValidationError(
		args[0].String(), // source
		args[1].String(), // filePath
		args[2].String(), // errorKind
		args[3].Int(),    // line
		args[4].Int(),    // column
		args[5].String(), // message
		args[6].String(), // help
		args[7].Int(),    // underlineLength
	)
}

func main() {
	js.Global().Set("formatValidationError", js.FuncOf(formatValidationError))

	// Keep the main goroutine alive so the exported function stays callable.
	select {}
}
