package terser

import (
	"math"
	"sort"

	"github.com/specialistvlad/compressopts/internal/ast"
	"github.com/zclconf/go-cty/cty"
)

// TranslateGlobalDefs turns each global definition into a literal node.
// Only null, bool, number and string values are allowed; any collection or
// structural value is an error, as is a number with no finite float64 form.
// Strings are copied verbatim.
func TranslateGlobalDefs(defs map[string]cty.Value) (map[string]ast.Lit, error) {
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	lits := make(map[string]ast.Lit, len(defs))
	for _, name := range names {
		lit, err := translateScalar(name, defs[name])
		if err != nil {
			return nil, err
		}
		lits[name] = lit
	}
	return lits, nil
}

func translateScalar(name string, v cty.Value) (ast.Lit, error) {
	if !v.IsWhollyKnown() {
		return nil, &LiteralShapeError{Name: name, Shape: "an unknown value"}
	}
	if v.IsNull() {
		return ast.Null{}, nil
	}

	switch ty := v.Type(); ty {
	case cty.Bool:
		return ast.Bool{Value: v.True()}, nil
	case cty.Number:
		f, _ := v.AsBigFloat().Float64()
		if math.IsInf(f, 0) {
			return nil, &LiteralShapeError{Name: name, Shape: "a number outside the float64 range"}
		}
		return ast.Number{Value: f}, nil
	case cty.String:
		return ast.Str{Value: v.AsString()}, nil
	default:
		return nil, &LiteralShapeError{Name: name, Shape: shapeArticle(ty)}
	}
}

func shapeArticle(ty cty.Type) string {
	switch {
	case ty.IsObjectType() || ty.IsMapType():
		return "an object"
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		return "an array"
	default:
		return "a " + ty.FriendlyName()
	}
}
