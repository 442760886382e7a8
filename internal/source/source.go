// Package source loads and saves the record files that the otable
// command shows and edits. A record file holds a list of objects
// (string-keyed maps) in JSON, YAML or TOML.
package source

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/replit/otable/internal/util"
	"gopkg.in/yaml.v2"
)

// Format is the syntax of a record file.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats and their file extensions.
var Formats = map[Format][]string{
	FormatJSON: {".json"},
	FormatYAML: {".yaml", ".yml"},
	FormatTOML: {".toml"},
}

// DefaultTOMLKey is the top-level key holding the records of a TOML
// file, which cannot be a bare list.
const DefaultTOMLKey = "rows"

// ParseFormat turns the argument of --format into a Format. "auto"
// (or "") picks the format from the extension of path.
func ParseFormat(formatStr, path string) (Format, error) {
	switch strings.ToLower(formatStr) {
	case "", "auto":
		ext := strings.ToLower(filepath.Ext(path))
		for format, exts := range Formats {
			for _, e := range exts {
				if e == ext {
					return format, nil
				}
			}
		}
		return "", errors.Errorf("cannot tell the format of %s; use --input-format", path)
	case "json", "yaml", "toml":
		return Format(strings.ToLower(formatStr)), nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.Errorf(`invalid format %#v (must be "auto", "json", "yaml" or "toml")`, formatStr)
}

// Records is a decoded record file. Rows are the maps inside Document,
// not copies, so editing a row edits the document that Save writes.
type Records struct {
	Format   Format
	Key      string
	Document any
	Rows     []map[string]any
}

// Load reads and decodes path. key names the top-level entry holding
// the list of records; with an empty key the document itself must be
// the list (TOML uses DefaultTOMLKey instead).
func Load(path string, format Format, key string) (*Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Decode(data, format, key)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return r, nil
}

// Decode decodes a record document.
func Decode(data []byte, format Format, key string) (*Records, error) {
	if format == FormatTOML && key == "" {
		key = DefaultTOMLKey
	}

	var doc any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding JSON")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding YAML")
		}
		doc = normalize(doc)
	case FormatTOML:
		table := map[string]any{}
		if _, err := toml.Decode(string(data), &table); err != nil {
			return nil, errors.Wrap(err, "decoding TOML")
		}
		doc = table
	default:
		util.Panicf("unknown format %q", format)
	}

	rows, err := extract(doc, key)
	if err != nil {
		return nil, err
	}
	return &Records{Format: format, Key: key, Document: doc, Rows: rows}, nil
}

// extract finds the list of records in doc.
func extract(doc any, key string) ([]map[string]any, error) {
	list := doc
	if key != "" {
		top, ok := doc.(map[string]any)
		if !ok {
			return nil, errors.Errorf("document is not a table of keys, cannot find %q", key)
		}
		if list, ok = top[key]; !ok {
			return nil, errors.Errorf("document has no key %q", key)
		}
	}

	switch items := list.(type) {
	case []map[string]any:
		return items, nil
	case []any:
		rows := make([]map[string]any, len(items))
		for i, item := range items {
			row, ok := item.(map[string]any)
			if !ok {
				return nil, errors.Errorf("record %d is a %T, not an object", i, item)
			}
			rows[i] = row
		}
		return rows, nil
	case nil:
		return []map[string]any{}, nil
	}
	return nil, errors.Errorf("expected a list of records, found %T", list)
}

// normalize converts the map[interface{}]interface{} values produced
// by yaml.v2 into map[string]any, recursively.
func normalize(v any) any {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]any, len(v))
		for key, value := range v {
			m[toString(key)] = normalize(value)
		}
		return m
	case []interface{}:
		for i := range v {
			v[i] = normalize(v[i])
		}
		return v
	}
	return v
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		util.Panicf("formatting YAML key %#v: %s", v, err)
	}
	return strings.TrimSpace(string(out))
}

// Encode serializes the document in its own format.
func (r *Records) Encode() ([]byte, error) {
	switch r.Format {
	case FormatJSON:
		out, err := json.MarshalIndent(r.Document, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding JSON")
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(r.Document)
		return out, errors.Wrap(err, "encoding YAML")
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(r.Document); err != nil {
			return nil, errors.Wrap(err, "encoding TOML")
		}
		return buf.Bytes(), nil
	}
	util.Panicf("unknown format %q", r.Format)
	return nil, nil
}

// Save writes the document to path atomically.
func (r *Records) Save(path string) error {
	out, err := r.Encode()
	if err != nil {
		return err
	}
	return util.TryWriteAtomic(path, out)
}

// Keys returns every key used by any record, sorted.
func Keys(rows []map[string]any) []string {
	seen := map[string]bool{}
	keys := []string{}
	for _, row := range rows {
		for key := range row {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// ParseValue reads a value typed on the command line as a YAML
// scalar, so "4" is an int, "true" a bool and "Rex" a string. An empty
// string is an empty string rather than null.
func ParseValue(s string) (any, error) {
	if s == "" {
		return "", nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, errors.Wrapf(err, "parsing value %q", s)
	}
	return normalize(v), nil
}
