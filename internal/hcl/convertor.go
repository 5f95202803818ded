package hcl

import (
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// hclToValue parses native HCL syntax. The file must consist of attributes
// only; every expression is evaluated without variables or functions.
func hclToValue(filename string, src []byte) (cty.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return cty.NilVal, diags
	}

	vals := make(map[string]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return cty.NilVal, diags
		}
		vals[name] = val
	}
	return cty.ObjectVal(vals), nil
}

// jsonToValue parses JSON, letting go-cty infer the structural type from the
// document itself.
func jsonToValue(src []byte) (cty.Value, error) {
	ty, err := ctyjson.ImpliedType(src)
	if err != nil {
		return cty.NilVal, err
	}
	val, err := ctyjson.Unmarshal(src, ty)
	if err != nil {
		return cty.NilVal, err
	}
	return val, nil
}
