// Package document provides a format-agnostic view over parsed manifest
// files. TOML and JSON inputs are decoded into nested maps and navigated by
// key path, so the per-ecosystem extractors share one lookup implementation.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/quantmind-br/autotag-go/internal/domain"
)

// Format identifies a supported manifest encoding
type Format string

const (
	// FormatTOML is TOML (Cargo.toml, pyproject.toml)
	FormatTOML Format = "toml"

	// FormatJSON is JSON (package.json)
	FormatJSON Format = "json"
)

// Document is a parsed manifest addressable by key path
type Document struct {
	root map[string]any
}

// Parse decodes raw manifest bytes in the given format
func Parse(data []byte, format Format) (*Document, error) {
	var root map[string]any

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrParse, format)
	}

	return &Document{root: root}, nil
}

// Get retrieves the value at the given key path. The second return value
// is false when any path segment is missing or not a table/object.
func (d *Document) Get(path ...string) (any, bool) {
	current := any(d.root)

	for _, key := range path {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		value, exists := currentMap[key]
		if !exists {
			return nil, false
		}

		current = value
	}

	return current, true
}

// GetString retrieves a string value at the given key path
func (d *Document) GetString(path ...string) (string, bool) {
	value, ok := d.Get(path...)
	if !ok {
		return "", false
	}

	s, ok := value.(string)
	return s, ok
}

// GetBool retrieves a boolean value at the given key path
func (d *Document) GetBool(path ...string) (bool, bool) {
	value, ok := d.Get(path...)
	if !ok {
		return false, false
	}

	b, ok := value.(bool)
	return b, ok
}
