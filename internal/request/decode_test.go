package request

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

const jsonPayload = `{
  "source": "import { console } from 'tana/invalid';",
  "file_path": "contract.ts",
  "kind": "Invalid Import",
  "line": 1,
  "column": 26,
  "message": "module 'tana/invalid' not found",
  "help": "available modules: tana/core, tana/kv",
  "underline_length": 12
}`

const tomlPayload = `source = "import { console } from 'tana/invalid';"
file_path = "contract.ts"
kind = "Invalid Import"
line = 1
column = 26
message = "module 'tana/invalid' not found"
help = "available modules: tana/core, tana/kv"
underline_length = 12
`

const yamlPayload = `source: "import { console } from 'tana/invalid';"
file_path: contract.ts
kind: Invalid Import
line: 1
column: 26
message: "module 'tana/invalid' not found"
help: "available modules: tana/core, tana/kv"
underline_length: 12
`

func wantRequest() Request {
	return Request{
		Source:          "import { console } from 'tana/invalid';",
		FilePath:        "contract.ts",
		Kind:            "Invalid Import",
		Line:            1,
		Column:          26,
		Message:         "module 'tana/invalid' not found",
		Help:            "available modules: tana/core, tana/kv",
		UnderlineLength: 12,
	}
}

func TestDecodeTextFormats(t *testing.T) {
	cases := []struct {
		format  Format
		payload string
	}{
		{FormatJSON, jsonPayload},
		{FormatTOML, tomlPayload},
		{FormatYAML, yamlPayload},
	}
	want := wantRequest()
	for _, tc := range cases {
		got, err := Decode([]byte(tc.payload), tc.format)
		if err != nil {
			t.Fatalf("Decode(%s) returned error: %v", tc.format, err)
		}
		if got != want {
			t.Errorf("Decode(%s) = %+v, want %+v", tc.format, got, want)
		}
	}
}

func TestDecodeMsgpack(t *testing.T) {
	want := wantRequest()
	data, err := msgpack.Marshal(want)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	got, err := Decode(data, FormatMsgpack)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if got != want {
		t.Errorf("Decode = %+v, want %+v", got, want)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte("{not json"), FormatJSON); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := Decode([]byte("= broken"), FormatTOML); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestFormatForPath(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"req.json", FormatJSON},
		{"req.toml", FormatTOML},
		{"req.yaml", FormatYAML},
		{"req.yml", FormatYAML},
		{"req.msgpack", FormatMsgpack},
		{"dir/REQ.JSON", FormatJSON},
	}
	for _, tc := range cases {
		got, err := FormatForPath(tc.path)
		if err != nil {
			t.Fatalf("FormatForPath(%q) returned error: %v", tc.path, err)
		}
		if got != tc.want {
			t.Errorf("FormatForPath(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}

	if _, err := FormatForPath("req.txt"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestLoad(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "req.json")
	if err := os.WriteFile(path, []byte(jsonPayload), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got != wantRequest() {
		t.Errorf("Load = %+v", got)
	}

	if _, err := Load(filepath.Join(tmp, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(filepath.Join(tmp, "req.txt")); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestListFiles(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"b.toml", "a.json", "notes.txt", "c.yaml"} {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte{}, 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(tmp, "sub.json"), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	got, err := ListFiles(tmp)
	if err != nil {
		t.Fatalf("ListFiles returned error: %v", err)
	}
	want := []string{
		filepath.Join(tmp, "a.json"),
		filepath.Join(tmp, "b.toml"),
		filepath.Join(tmp, "c.yaml"),
	}
	if len(got) != len(want) {
		t.Fatalf("ListFiles = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListFiles = %v, want %v", got, want)
		}
	}
}
