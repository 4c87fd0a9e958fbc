package knowledge

import (
	_ "embed"
	"errors"
	"sync"
)

//go:embed knowledge_base.yml
var defaultDocument []byte

var (
	defaultOnce sync.Once
	defaultBase *Base
	defaultErr  error
)

// DefaultDocument returns the embedded knowledge base source.
func DefaultDocument() []byte {
	out := make([]byte, len(defaultDocument))
	copy(out, defaultDocument)
	return out
}

// Default returns the knowledge base compiled into the binary.
func Default() (*Base, error) {
	defaultOnce.Do(func() {
		defaultBase, defaultErr = Parse(defaultDocument, FormatYAML)
		var loadErr *LoadError
		if errors.As(defaultErr, &loadErr) {
			loadErr.Source = "embedded knowledge base"
		}
	})
	return defaultBase, defaultErr
}
