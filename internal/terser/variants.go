package terser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/compressopts/internal/ast"
	"github.com/specialistvlad/compressopts/internal/compress"
)

// --- ecma ---

type ecmaKind int

const (
	ecmaUnset ecmaKind = iota
	ecmaNumber
	ecmaString
)

// defaultEcma is the edition used when `ecma` is not given.
const defaultEcma = 5

// EcmaVersion is the raw `ecma` value: a number, or a string holding a
// number. The zero value means "not given" and resolves to edition 5.
type EcmaVersion struct {
	kind ecmaKind
	num  uint64
	text string
}

// EcmaNumber returns a numeric ecma value.
func EcmaNumber(n uint64) EcmaVersion {
	return EcmaVersion{kind: ecmaNumber, num: n}
}

// EcmaString returns a textual ecma value. It is parsed during Resolve.
func EcmaString(s string) EcmaVersion {
	return EcmaVersion{kind: ecmaString, text: s}
}

// String returns the value as the caller spelled it.
func (v EcmaVersion) String() string {
	switch v.kind {
	case ecmaNumber:
		return strconv.FormatUint(v.num, 10)
	case ecmaString:
		return v.text
	default:
		return strconv.Itoa(defaultEcma)
	}
}

// Resolve maps the value onto the edition table. Text is parsed as a base-10
// integer and then looked up like a number.
func (v EcmaVersion) Resolve() (ast.EsVersion, error) {
	switch v.kind {
	case ecmaNumber:
		return esVersionForNumber(v.num)
	case ecmaString:
		n, err := strconv.ParseUint(v.text, 10, 64)
		if err != nil {
			return 0, &VersionError{Input: v.text, Err: err}
		}
		return esVersionForNumber(n)
	default:
		return esVersionForNumber(defaultEcma)
	}
}

func esVersionForNumber(n uint64) (ast.EsVersion, error) {
	switch n {
	case 3:
		return ast.Es3, nil
	case 5:
		return ast.Es5, nil
	case 6, 2015:
		return ast.Es2015, nil
	case 2016:
		return ast.Es2016, nil
	case 2017:
		return ast.Es2017, nil
	case 2018:
		return ast.Es2018, nil
	case 2019:
		return ast.Es2019, nil
	case 2020:
		return ast.Es2020, nil
	default:
		return 0, &VersionError{Input: strconv.FormatUint(n, 10)}
	}
}

// --- inline / sequences ---

// Level is the raw value of a level field: either a bool shorthand or an
// explicit level.
type Level struct {
	explicit bool
	on       bool
	n        uint8
}

// LevelBool returns the bool shorthand form.
func LevelBool(on bool) *Level {
	return &Level{on: on}
}

// LevelNum returns an explicit level.
func LevelNum(n uint8) *Level {
	return &Level{explicit: true, n: n}
}

// Value returns the level this value stands for: true is compress.MaxLevel,
// false is 0, and explicit levels pass through unclamped.
func (l Level) Value() uint8 {
	if l.explicit {
		return l.n
	}
	return boolLevel(l.on)
}

func boolLevel(on bool) uint8 {
	if on {
		return compress.MaxLevel
	}
	return 0
}

// --- pure_getters ---

type pureKind int

const (
	pureStrict pureKind = iota
	pureBool
	pureString
)

// strictKeyword is the pure_getters string that selects strict mode.
const strictKeyword = "strict"

// PureGetterOption is the raw pure_getters value. The zero value is the
// "strict" keyword, which is also the default.
type PureGetterOption struct {
	kind pureKind
	on   bool
	text string
}

// PureGettersBool returns the bool form.
func PureGettersBool(on bool) PureGetterOption {
	return PureGetterOption{kind: pureBool, on: on}
}

// PureGettersStrict returns the "strict" keyword form.
func PureGettersStrict() PureGetterOption {
	return PureGetterOption{}
}

// PureGettersString returns a free-form string. The "strict" keyword is
// recognized here too so both spellings compare equal.
func PureGettersString(s string) PureGetterOption {
	if s == strictKeyword {
		return PureGettersStrict()
	}
	return PureGetterOption{kind: pureString, text: s}
}

// Resolve returns the canonical form, keeping the three shapes apart.
func (p PureGetterOption) Resolve() compress.PureGetters {
	switch p.kind {
	case pureBool:
		return compress.PureGetters{Mode: compress.PureGettersBool, Enabled: p.on}
	case pureString:
		return compress.PureGetters{Mode: compress.PureGettersCustom, Value: p.text}
	default:
		return compress.PureGetters{Mode: compress.PureGettersStrict}
	}
}

// --- toplevel ---

// TopLevelOption is the raw toplevel value: a bool or a string.
type TopLevelOption struct {
	isString bool
	on       bool
	text     string
}

// TopLevelBool returns the bool form.
func TopLevelBool(on bool) *TopLevelOption {
	return &TopLevelOption{on: on}
}

// TopLevelString returns the string form.
func TopLevelString(s string) *TopLevelOption {
	return &TopLevelOption{isString: true, text: s}
}

// IsString reports whether the string form was used.
func (t *TopLevelOption) IsString() bool {
	return t != nil && t.isString
}

// Text returns the string form's text, or "" for the bool form.
func (t *TopLevelOption) Text() string {
	if t == nil {
		return ""
	}
	return t.text
}

// Resolve returns nil for an absent option. The string form is accepted for
// compatibility only and resolves to {Functions: false}.
func (t *TopLevelOption) Resolve() *compress.TopLevelOptions {
	if t == nil {
		return nil
	}
	if t.isString {
		return &compress.TopLevelOptions{Functions: false}
	}
	return &compress.TopLevelOptions{Functions: t.on}
}

// --- top_retain ---

// TopRetainOption is the raw top_retain value: a comma-separated string or
// a list of names.
type TopRetainOption struct {
	isList bool
	text   string
	names  []string
}

// TopRetainString returns the comma-separated form.
func TopRetainString(s string) *TopRetainOption {
	return &TopRetainOption{text: s}
}

// TopRetainList returns the list form.
func TopRetainList(names []string) *TopRetainOption {
	return &TopRetainOption{isList: true, names: names}
}

// Names returns the canonical name list. The string form is split on commas
// with each part trimmed and blank parts dropped; list entries are returned
// untouched. An absent option yields an empty, non-nil list.
func (t *TopRetainOption) Names() []string {
	if t == nil {
		return []string{}
	}
	if t.isList {
		if t.names == nil {
			return []string{}
		}
		return slices.Clone(t.names)
	}

	names := []string{}
	for _, part := range strings.Split(t.text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, part)
	}
	return names
}
