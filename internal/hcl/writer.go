package hcl

import (
	"fmt"
	"io"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/compressopts/internal/config"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Output formats accepted by NewWriter.
const (
	FormatHCL  = "hcl"
	FormatJSON = "json"
)

// NewWriter returns the config.Writer for the named output format.
func NewWriter(format string) (config.Writer, error) {
	switch format {
	case FormatHCL:
		return &HCLWriter{}, nil
	case FormatJSON:
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// HCLWriter renders documents as HCL. A single document is written as bare
// attributes; several are written as one `options "<path>"` block each.
type HCLWriter struct{}

func (hw *HCLWriter) Write(w io.Writer, docs []config.Document) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	if len(docs) == 1 {
		setAttributes(body, EncodeOptions(docs[0].Options))
	} else {
		for i, doc := range docs {
			if i > 0 {
				body.AppendNewline()
			}
			block := body.AppendNewBlock("options", []string{doc.Path})
			setAttributes(block.Body(), EncodeOptions(doc.Options))
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func setAttributes(body *hclwrite.Body, obj cty.Value) {
	attrs := obj.AsValueMap()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		body.SetAttributeValue(name, attrs[name])
	}
}

// JSONWriter renders documents as JSON. A single document is written as one
// object; several are written as an object keyed by source path.
type JSONWriter struct{}

func (jw *JSONWriter) Write(w io.Writer, docs []config.Document) error {
	var val cty.Value
	if len(docs) == 1 {
		val = EncodeOptions(docs[0].Options)
	} else {
		byPath := make(map[string]cty.Value, len(docs))
		for _, doc := range docs {
			byPath[doc.Path] = EncodeOptions(doc.Options)
		}
		val = cty.ObjectVal(byPath)
	}

	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to encode options as JSON: %w", err)
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}
