package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// Format selects the on-disk representation of a document.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFor picks the format matching a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
	}
}

// Unmarshal parses raw bytes into a plain tree of mappings, slices and scalars.
func Unmarshal(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		v, err := oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return v, nil
	default:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return v, nil
	}
}

// Marshal renders an encoded tree to bytes.
func Marshal(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return []byte(oj.JSON(v, 2)), nil
	default:
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return out, nil
	}
}

// ReadFile parses and decodes a document from a billy filesystem.
func ReadFile(fs billy.Filesystem, path string, reg *Registry) (any, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }() // safe to ignore

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg.Decode(tree)
}

// WriteFile encodes v and writes it out, choosing the format from the path.
func WriteFile(fs billy.Filesystem, path string, v any) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Marshal(Encode(v), format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
