package config

import "github.com/specialistvlad/compressopts/internal/compress"

// Document is one translated option file.
type Document struct {
	// Path is the source file the options were read from.
	Path    string
	Options compress.Options
}
