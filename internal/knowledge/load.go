package knowledge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadError reports that a knowledge base could not be read, parsed, or
// validated. No recommendation is possible for a session without a base.
type LoadError struct {
	Source string
	Err    error
}

// Error returns a readable message naming the failed source.
func (err *LoadError) Error() string {
	return fmt.Sprintf("load knowledge base %s: %v", err.Source, err.Err)
}

// Unwrap exposes the underlying cause.
func (err *LoadError) Unwrap() error {
	return err.Err
}

// Load reads, parses, and validates a knowledge base file.
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("read: %w", err)}
	}
	format := FormatYAML
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = FormatJSON
	}
	base, err := Parse(data, format)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Source = path
			return nil, loadErr
		}
		return nil, &LoadError{Source: path, Err: err}
	}
	return base, nil
}

// Format identifies the encoding of a knowledge base document.
type Format int

const (
	// FormatYAML decodes YAML documents.
	FormatYAML Format = iota
	// FormatJSON decodes JSON documents.
	FormatJSON
)

// Parse decodes and validates a knowledge base document.
func Parse(data []byte, format Format) (*Base, error) {
	var (
		spec Spec
		err  error
	)
	switch format {
	case FormatJSON:
		spec, err = parseJSONSpec(data)
	default:
		spec, err = parseYAMLSpec(data)
	}
	if err != nil {
		return nil, &LoadError{Source: "document", Err: err}
	}
	base, err := New(spec)
	if err != nil {
		return nil, &LoadError{Source: "document", Err: err}
	}
	return base, nil
}

func parseJSONSpec(data []byte) (Spec, error) {
	var spec Spec
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Spec{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Spec{}, fmt.Errorf("parse json: %w", err)
	}
	return spec, nil
}

func parseYAMLSpec(data []byte) (Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Spec{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Spec{}, fmt.Errorf("parse yaml: %w", err)
	}
	return spec, nil
}
