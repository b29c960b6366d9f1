package request

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a request payload.
type Format uint8

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// FormatForPath maps a file extension to its payload format.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("unsupported request file extension %q", filepath.Ext(path))
	}
}

// Decode parses one request payload in the given format.
func Decode(data []byte, format Format) (Request, error) {
	var req Request
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &req)
	case FormatTOML:
		err = toml.Unmarshal(data, &req)
	case FormatYAML:
		err = yaml.Unmarshal(data, &req)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &req)
	default:
		err = fmt.Errorf("unknown request format %d", format)
	}
	if err != nil {
		return Request{}, fmt.Errorf("failed to decode %s request: %w", format, err)
	}
	return req, nil
}

// Load reads a request file and decodes it according to its extension.
func Load(path string) (Request, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return Request{}, err
	}
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("failed to read request file: %w", err)
	}
	return Decode(data, format)
}

// ListFiles enumerates the request files directly inside dir, sorted by
// path so batch output order is deterministic.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())
		if _, err := FormatForPath(p); err == nil {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}
