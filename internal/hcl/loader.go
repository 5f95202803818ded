package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/compressopts/internal/config"
	"github.com/specialistvlad/compressopts/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the file-based implementation of the config.Loader interface.
// The format is chosen by file extension.
type Loader struct{}

// NewLoader creates a new option file loader.
func NewLoader() *Loader {
	return &Loader{}
}

var extensions = []string{".hcl", ".json", ".yaml", ".yml"}

// Extensions lists the file extensions the loader understands.
func (l *Loader) Extensions() []string {
	return append([]string(nil), extensions...)
}

// Supports reports whether path has a recognized extension.
func (l *Loader) Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range extensions {
		if ext == known {
			return true
		}
	}
	return false
}

// Load reads the file at path and converts it into a generic value.
func (l *Loader) Load(ctx context.Context, path string) (cty.Value, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to read option file %s: %w", path, err)
	}
	return l.LoadBytes(ctx, path, src)
}

// LoadBytes converts in-memory source into a generic value. filename selects
// the format and is used in diagnostics.
func (l *Loader) LoadBytes(ctx context.Context, filename string, src []byte) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx).With("file", filename)

	var (
		val cty.Value
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".hcl":
		logger.Debug("Parsing option file as HCL.")
		val, err = hclToValue(filename, src)
	case ".json":
		logger.Debug("Parsing option file as JSON.")
		val, err = jsonToValue(src)
	case ".yaml", ".yml":
		logger.Debug("Parsing option file as YAML.")
		val, err = yamlToValue(src)
	default:
		return cty.NilVal, fmt.Errorf("unsupported option file format %q for %s", ext, filename)
	}
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	logger.Debug("Option file parsed.", "type", val.Type().FriendlyName())
	return val, nil
}

var _ config.Loader = (*Loader)(nil)
