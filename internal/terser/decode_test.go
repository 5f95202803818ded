package terser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestDecode_UnknownFields(t *testing.T) {
	_, err := Decode(cty.ObjectVal(map[string]cty.Value{
		"not_a_real_option": cty.True,
		"also_wrong":        cty.False,
		"defaults":          cty.True,
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaViolation)
	assert.Contains(t, err.Error(), `"not_a_real_option"`)
	assert.Contains(t, err.Error(), `"also_wrong"`)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "also_wrong", schemaErr.Field, "unknown fields are reported in sorted order")
	assert.Equal(t, "unknown field", schemaErr.Reason)
}

func TestTranslate_UnknownFieldProducesNoOptions(t *testing.T) {
	opts, err := Translate(cty.ObjectVal(map[string]cty.Value{
		"not_a_real_option": cty.True,
	}))
	require.ErrorIs(t, err, ErrSchemaViolation)
	assert.Zero(t, opts)
}

func TestDecode_FieldNamesAreCaseSensitive(t *testing.T) {
	_, err := Decode(cty.ObjectVal(map[string]cty.Value{"unsafe_Function": cty.True}))
	require.NoError(t, err)

	_, err = Decode(cty.ObjectVal(map[string]cty.Value{"unsafe_function": cty.True}))
	require.ErrorIs(t, err, ErrSchemaViolation)
}

func TestDecode_RejectsNonObjectInput(t *testing.T) {
	testCases := []struct {
		name  string
		input cty.Value
	}{
		{name: "null", input: cty.NullVal(cty.DynamicPseudoType)},
		{name: "string", input: cty.StringVal("defaults")},
		{name: "tuple", input: cty.EmptyTupleVal},
		{name: "unknown", input: cty.UnknownVal(cty.EmptyObject)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			require.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestDecode_AcceptsMapInput(t *testing.T) {
	opts, err := Decode(cty.MapVal(map[string]cty.Value{
		"defaults": cty.True,
		"loops":    cty.False,
	}))
	require.NoError(t, err)
	assert.True(t, opts.Defaults)
	require.NotNil(t, opts.Loops)
	assert.False(t, *opts.Loops)
}

func TestDecode_Empty(t *testing.T) {
	opts, err := Decode(cty.EmptyObjectVal)
	require.NoError(t, err)
	assert.Equal(t, &CompressorOptions{}, opts)
}

func TestDecode_ShapeViolations(t *testing.T) {
	testCases := []struct {
		name  string
		field string
		value cty.Value
	}{
		{name: "bool as string", field: "defaults", value: cty.StringVal("true")},
		{name: "bool as number", field: "arguments", value: cty.NumberIntVal(1)},
		{name: "null plain bool", field: "dead_code", value: cty.NullVal(cty.Bool)},
		{name: "optional bool as string", field: "unused", value: cty.StringVal("yes")},
		{name: "level as string", field: "inline", value: cty.StringVal("3")},
		{name: "level fractional", field: "sequences", value: cty.NumberFloatVal(1.5)},
		{name: "level negative", field: "inline", value: cty.NumberIntVal(-1)},
		{name: "level too large", field: "inline", value: cty.NumberIntVal(256)},
		{name: "ecma as bool", field: "ecma", value: cty.True},
		{name: "ecma negative", field: "ecma", value: cty.NumberIntVal(-5)},
		{name: "ecma fractional", field: "ecma", value: cty.NumberFloatVal(5.5)},
		{name: "passes negative", field: "passes", value: cty.NumberIntVal(-1)},
		{name: "passes as string", field: "passes", value: cty.StringVal("2")},
		{name: "passes null", field: "passes", value: cty.NullVal(cty.Number)},
		{name: "pure_funcs as string", field: "pure_funcs", value: cty.StringVal("a")},
		{name: "pure_funcs with number", field: "pure_funcs", value: cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)})},
		{name: "pure_getters as number", field: "pure_getters", value: cty.NumberIntVal(1)},
		{name: "toplevel as number", field: "toplevel", value: cty.NumberIntVal(1)},
		{name: "top_retain as bool", field: "top_retain", value: cty.True},
		{name: "top_retain list with null", field: "top_retain", value: cty.TupleVal([]cty.Value{cty.NullVal(cty.String)})},
		{name: "global_defs as list", field: "global_defs", value: cty.EmptyTupleVal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(cty.ObjectVal(map[string]cty.Value{tc.field: tc.value}))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, tc.field, schemaErr.Field)
		})
	}
}

func TestDecode_VariantPrecedence(t *testing.T) {
	opts, err := Decode(cty.ObjectVal(map[string]cty.Value{
		"inline":       cty.True,
		"sequences":    cty.NumberIntVal(2),
		"ecma":         cty.StringVal("2017"),
		"pure_getters": cty.StringVal("strict"),
		"toplevel":     cty.StringVal("funcs"),
		"top_retain":   cty.StringVal("a,b"),
		"pure_funcs":   cty.ListVal([]cty.Value{cty.StringVal("console.log")}),
		"passes":       cty.NumberIntVal(2),
	}))
	require.NoError(t, err)

	assert.Equal(t, LevelBool(true), opts.Inline)
	assert.Equal(t, LevelNum(2), opts.Sequences)
	assert.Equal(t, EcmaString("2017"), opts.Ecma)
	assert.Equal(t, PureGettersStrict(), opts.PureGetters)
	assert.Equal(t, TopLevelString("funcs"), opts.TopLevel)
	assert.Equal(t, TopRetainString("a,b"), opts.TopRetain)
	assert.Equal(t, []string{"console.log"}, opts.PureFuncs)
	assert.Equal(t, uint(2), opts.Passes)
}

func TestDecode_NullVariantsAreAbsent(t *testing.T) {
	opts, err := Decode(cty.ObjectVal(map[string]cty.Value{
		"inline":       cty.NullVal(cty.Bool),
		"ecma":         cty.NullVal(cty.Number),
		"pure_getters": cty.NullVal(cty.String),
		"toplevel":     cty.NullVal(cty.Bool),
		"top_retain":   cty.NullVal(cty.String),
		"global_defs":  cty.NullVal(cty.EmptyObject),
	}))
	require.NoError(t, err)
	assert.Equal(t, &CompressorOptions{}, opts)
}

func TestDecode_VersionValidityIsDeferred(t *testing.T) {
	opts, err := Decode(cty.ObjectVal(map[string]cty.Value{"ecma": cty.NumberIntVal(2021)}))
	require.NoError(t, err, "unknown editions are rejected during conversion, not decoding")

	_, err = Convert(opts)
	require.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestFieldNames(t *testing.T) {
	names := FieldNames()
	assert.Len(t, names, 53)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "unsafe_Function")
	assert.Contains(t, names, "toplevel")
}

func TestDecode_PureGettersStrings(t *testing.T) {
	testCases := []struct {
		input    string
		expected PureGetterOption
	}{
		{input: "strict", expected: PureGettersStrict()},
		{input: "props", expected: PureGettersString("props")},
		{input: "", expected: PureGettersString("")},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			opts, err := Decode(cty.ObjectVal(map[string]cty.Value{"pure_getters": cty.StringVal(tc.input)}))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, opts.PureGetters)
		})
	}
}
