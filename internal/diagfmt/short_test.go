package diagfmt

import (
	"testing"

	"tanaval/internal/request"
)

func TestShort(t *testing.T) {
	got := Short(invalidImportRequest())
	want := "contract.ts:1:26 error Invalid Import: module 'tana/invalid' not found"
	if got != want {
		t.Fatalf("Short = %q, want %q", got, want)
	}
}

func TestShortCollapsesNewlines(t *testing.T) {
	req := request.Request{
		FilePath: "multi.ts",
		Kind:     "Type Error",
		Line:     2,
		Column:   7,
		Message:  "first line\r\nsecond\nthird  ",
	}
	got := Short(req)
	want := "multi.ts:2:7 error Type Error: first line second third"
	if got != want {
		t.Fatalf("Short = %q, want %q", got, want)
	}
}
