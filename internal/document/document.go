// Package document decodes and encodes JSON, YAML and TOML documents into the
// order-preserving values understood by package arr.
//
// Mappings decode to *arr.Map, sequences to []any and integers to int64.
// JSON and YAML keep the key order of the source; TOML tables are ordered by
// key. A key repeated in a JSON object keeps its last value, while YAML
// rejects repeated keys.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/hasbyte1/go-stdx/arr"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var (
	// ErrUnknownFormat is returned for format names or file extensions that
	// are not supported.
	ErrUnknownFormat = errors.New("document: unknown format")

	// ErrNotTable is returned when a non-mapping value is encoded as TOML.
	ErrNotTable = errors.New("document: TOML documents must be tables")
)

// ParseFormat parses a format name, accepting "yml" for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf derives the format from the extension of path.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// ─────────────────────────────────────────────────────────────────────────────
// Decoding
// ─────────────────────────────────────────────────────────────────────────────

// Decode parses data in format f. An empty document decodes to an empty
// *arr.Map.
func Decode(data []byte, f Format) (any, error) {
	var (
		v   any
		err error
	)
	switch f {
	case JSON:
		// JSON decoders keep the last of repeated keys; YAML forbids them.
		v, err = decodeYAML(data, yaml.AllowDuplicateMapKey())
	case YAML:
		v, err = decodeYAML(data)
	case TOML:
		v, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: decoding %s: %w", f, err)
	}
	if v == nil {
		return arr.NewMap(), nil
	}
	return v, nil
}

// ReadFile reads and decodes path. An empty f is derived from the extension.
// The resolved format is returned alongside the value.
func ReadFile(path string, f Format) (any, Format, error) {
	if f == "" {
		var err error
		if f, err = FormatOf(path); err != nil {
			return nil, "", err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("document: %w", err)
	}
	v, err := Decode(data, f)
	if err != nil {
		return nil, "", err
	}
	return v, f, nil
}

// ParseValue interprets s as a YAML scalar or flow collection, so "42"
// becomes int64(42), "true" a bool, "[a, b]" a list and "null" nil. Input that
// does not parse is returned as the plain string.
func ParseValue(s string) any {
	if strings.TrimSpace(s) == "" {
		return s
	}
	v, err := decodeYAML([]byte(s))
	if err != nil {
		return s
	}
	return v
}

func decodeYAML(data []byte, opts ...yaml.DecodeOption) (any, error) {
	var raw any
	opts = append([]yaml.DecodeOption{yaml.UseOrderedMap()}, opts...)
	if err := yaml.UnmarshalWithOptions(data, &raw, opts...); err != nil {
		return nil, err
	}
	return fromYAML(raw), nil
}

func fromYAML(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := arr.NewMap()
		for _, item := range t {
			_ = m.Store(fmt.Sprint(item.Key), fromYAML(item.Value))
		}
		return m
	case map[string]any:
		return fromTable(t, fromYAML)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromYAML(e)
		}
		return out
	}
	return normalizeNumber(v)
}

func decodeTOML(data []byte) (any, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return fromTOML(raw), nil
}

func fromTOML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return fromTable(t, fromTOML)
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromTOML(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = fromTOML(e)
		}
		return out
	}
	return normalizeNumber(v)
}

func fromTable(t map[string]any, conv func(any) any) *arr.Map {
	m := arr.NewMap()
	for _, k := range slices.Sorted(maps.Keys(t)) {
		_ = m.Store(k, conv(t[k]))
	}
	return m
}

func normalizeNumber(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return uintToInt(uint64(n))
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return uintToInt(n)
	case float32:
		return float64(n)
	}
	return v
}

func uintToInt(n uint64) any {
	if n > math.MaxInt64 {
		return n
	}
	return int64(n)
}

// ─────────────────────────────────────────────────────────────────────────────
// Encoding
// ─────────────────────────────────────────────────────────────────────────────

// Encode renders v in format f using indent spaces per level. The output
// always ends with a newline.
func Encode(v any, f Format, indent int) ([]byte, error) {
	indent = max(indent, 1)
	var (
		out []byte
		err error
	)
	switch f {
	case JSON:
		out, err = encodeJSON(v, indent)
	case YAML:
		out, err = yaml.MarshalWithOptions(toYAML(v), yaml.Indent(indent))
	case TOML:
		out, err = encodeTOML(v, indent)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("document: encoding %s: %w", f, err)
	}
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	return out, nil
}

// WriteFile encodes v and writes it to path, keeping the file mode of an
// existing file.
func WriteFile(path string, v any, f Format, indent int) error {
	data, err := Encode(v, f, indent)
	if err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("document: %w", err)
	}
	return nil
}

func encodeJSON(v any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAML(v any) any {
	switch t := v.(type) {
	case *arr.Map:
		out := make(yaml.MapSlice, 0, t.Len())
		for _, e := range t.Entries() {
			out = append(out, yaml.MapItem{Key: e.Key, Value: toYAML(e.Value)})
		}
		return out
	case map[string]any:
		out := make(yaml.MapSlice, 0, len(t))
		for _, k := range slices.Sorted(maps.Keys(t)) {
			out = append(out, yaml.MapItem{Key: k, Value: toYAML(t[k])})
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = toYAML(e)
		}
		return out
	}
	return v
}

func encodeTOML(v any, indent int) ([]byte, error) {
	table, ok := arr.Plain(v).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotTable, v)
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = strings.Repeat(" ", indent)
	if err := enc.Encode(table); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
