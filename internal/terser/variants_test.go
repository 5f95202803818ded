package terser

import (
	"errors"
	"testing"

	"github.com/specialistvlad/compressopts/internal/ast"
	"github.com/specialistvlad/compressopts/internal/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEcmaVersionResolve(t *testing.T) {
	testCases := []struct {
		name     string
		input    EcmaVersion
		expected ast.EsVersion
	}{
		{name: "3", input: EcmaNumber(3), expected: ast.Es3},
		{name: "5", input: EcmaNumber(5), expected: ast.Es5},
		{name: "6 is an alias", input: EcmaNumber(6), expected: ast.Es2015},
		{name: "text 6", input: EcmaString("6"), expected: ast.Es2015},
		{name: "2015", input: EcmaNumber(2015), expected: ast.Es2015},
		{name: "text 2015", input: EcmaString("2015"), expected: ast.Es2015},
		{name: "2016", input: EcmaNumber(2016), expected: ast.Es2016},
		{name: "2017", input: EcmaNumber(2017), expected: ast.Es2017},
		{name: "2018", input: EcmaNumber(2018), expected: ast.Es2018},
		{name: "2019", input: EcmaNumber(2019), expected: ast.Es2019},
		{name: "2020", input: EcmaNumber(2020), expected: ast.Es2020},
		{name: "unset defaults to 5", input: EcmaVersion{}, expected: ast.Es5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.input.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEcmaVersionResolve_Unsupported(t *testing.T) {
	testCases := []struct {
		name     string
		input    EcmaVersion
		parseErr bool
	}{
		{name: "zero", input: EcmaNumber(0)},
		{name: "4", input: EcmaNumber(4)},
		{name: "2021", input: EcmaNumber(2021)},
		{name: "text 2021", input: EcmaString("2021")},
		{name: "not a number", input: EcmaString("es2015"), parseErr: true},
		{name: "empty text", input: EcmaString(""), parseErr: true},
		{name: "padded text", input: EcmaString(" 2015"), parseErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.input.Resolve()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupportedVersion)

			var versionErr *VersionError
			require.True(t, errors.As(err, &versionErr))
			assert.Equal(t, tc.input.String(), versionErr.Input)
			assert.Equal(t, tc.parseErr, versionErr.Err != nil)
		})
	}
}

func TestTopRetainNames(t *testing.T) {
	testCases := []struct {
		name     string
		input    *TopRetainOption
		expected []string
	}{
		{name: "string is split and trimmed", input: TopRetainString("a, b,,c "), expected: []string{"a", "b", "c"}},
		{name: "whitespace-only parts are dropped", input: TopRetainString(" , ,x"), expected: []string{"x"}},
		{name: "empty string", input: TopRetainString(""), expected: []string{}},
		{name: "list passes through", input: TopRetainList([]string{"a", "b"}), expected: []string{"a", "b"}},
		{name: "list entries are not trimmed", input: TopRetainList([]string{" a ", ""}), expected: []string{" a ", ""}},
		{name: "nil list", input: TopRetainList(nil), expected: []string{}},
		{name: "absent", input: nil, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.input.Names()
			require.NotNil(t, got)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTopRetainNames_ListIsCopied(t *testing.T) {
	src := []string{"a", "b"}
	got := TopRetainList(src).Names()
	got[0] = "changed"
	assert.Equal(t, "a", src[0])
}

func TestPureGetterOptionResolve(t *testing.T) {
	testCases := []struct {
		name     string
		input    PureGetterOption
		expected compress.PureGetters
	}{
		{name: "zero value is strict", input: PureGetterOption{}, expected: compress.PureGetters{Mode: compress.PureGettersStrict}},
		{name: "strict keyword", input: PureGettersStrict(), expected: compress.PureGetters{Mode: compress.PureGettersStrict}},
		{name: "strict spelled as string", input: PureGettersString("strict"), expected: compress.PureGetters{Mode: compress.PureGettersStrict}},
		{name: "bool true", input: PureGettersBool(true), expected: compress.PureGetters{Mode: compress.PureGettersBool, Enabled: true}},
		{name: "bool false", input: PureGettersBool(false), expected: compress.PureGetters{Mode: compress.PureGettersBool}},
		{name: "custom string", input: PureGettersString("props"), expected: compress.PureGetters{Mode: compress.PureGettersCustom, Value: "props"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.input.Resolve())
		})
	}
}

func TestTopLevelOptionResolve(t *testing.T) {
	assert.Nil(t, (*TopLevelOption)(nil).Resolve())
	assert.Equal(t, &compress.TopLevelOptions{Functions: true}, TopLevelBool(true).Resolve())
	assert.Equal(t, &compress.TopLevelOptions{Functions: false}, TopLevelBool(false).Resolve())

	str := TopLevelString("funcs")
	assert.True(t, str.IsString())
	assert.Equal(t, "funcs", str.Text())
	assert.Equal(t, &compress.TopLevelOptions{Functions: false}, str.Resolve())
	assert.False(t, TopLevelBool(true).IsString())
}
