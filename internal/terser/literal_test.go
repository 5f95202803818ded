package terser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/compressopts/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestTranslateGlobalDefs(t *testing.T) {
	got, err := TranslateGlobalDefs(map[string]cty.Value{
		"DEBUG":   cty.False,
		"VERSION": cty.StringVal("1.0"),
		"COUNT":   cty.NumberIntVal(3),
		"X":       cty.NullVal(cty.DynamicPseudoType),
		"RATIO":   cty.NumberFloatVal(0.25),
		"RAW":     cty.StringVal(`a\nb`),
	})
	require.NoError(t, err)

	expected := map[string]ast.Lit{
		"DEBUG":   ast.Bool{Value: false},
		"VERSION": ast.Str{Value: "1.0"},
		"COUNT":   ast.Number{Value: 3},
		"X":       ast.Null{},
		"RATIO":   ast.Number{Value: 0.25},
		"RAW":     ast.Str{Value: `a\nb`},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("TranslateGlobalDefs() mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslateGlobalDefs_Empty(t *testing.T) {
	got, err := TranslateGlobalDefs(nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTranslateGlobalDefs_UnsupportedShapes(t *testing.T) {
	testCases := []struct {
		name  string
		value cty.Value
		shape string
	}{
		{name: "empty object", value: cty.EmptyObjectVal, shape: "an object"},
		{name: "object", value: cty.ObjectVal(map[string]cty.Value{"a": cty.True}), shape: "an object"},
		{name: "map", value: cty.MapVal(map[string]cty.Value{"a": cty.True}), shape: "an object"},
		{name: "empty tuple", value: cty.EmptyTupleVal, shape: "an array"},
		{name: "list", value: cty.ListVal([]cty.Value{cty.StringVal("a")}), shape: "an array"},
		{name: "unknown", value: cty.UnknownVal(cty.String), shape: "an unknown value"},
		{name: "overflowing number", value: cty.MustParseNumberVal("1e400"), shape: "a number outside the float64 range"},
		{name: "negative overflow", value: cty.MustParseNumberVal("-1e400"), shape: "a number outside the float64 range"},
		{name: "infinity", value: cty.PositiveInfinity, shape: "a number outside the float64 range"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := TranslateGlobalDefs(map[string]cty.Value{
				"OK":  cty.True,
				"BAD": tc.value,
			})
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrUnsupportedLiteralShape)

			var shapeErr *LiteralShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, "BAD", shapeErr.Name)
			assert.Equal(t, tc.shape, shapeErr.Shape)
		})
	}
}
