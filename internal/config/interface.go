package config

import (
	"context"
	"io"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific option source.
type Loader interface {
	// Extensions lists the file extensions searched for in directories.
	Extensions() []string

	// Supports reports whether the loader recognizes the file's format.
	Supports(path string) bool

	// Load reads one option file and returns it as a generic value tree,
	// without interpreting any option.
	Load(ctx context.Context, path string) (cty.Value, error)
}

// Writer renders translated documents in one output format.
type Writer interface {
	Write(w io.Writer, docs []Document) error
}
