package terser

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// fieldDecoder stores one raw value into its field. The value is known and
// may be null; decoders decide what null means for their field.
type fieldDecoder func(o *CompressorOptions, v cty.Value) error

// fields is the closed set of recognized keys. It is never written after init.
var fields = map[string]fieldDecoder{
	"arguments":            plainBool(func(o *CompressorOptions) *bool { return &o.Arguments }),
	"arrows":               optionalBool(func(o *CompressorOptions) **bool { return &o.Arrows }),
	"booleans":             optionalBool(func(o *CompressorOptions) **bool { return &o.Booleans }),
	"booleans_as_integers": plainBool(func(o *CompressorOptions) *bool { return &o.BooleansAsIntegers }),
	"collapse_vars":        optionalBool(func(o *CompressorOptions) **bool { return &o.CollapseVars }),
	"comparisons":          optionalBool(func(o *CompressorOptions) **bool { return &o.Comparisons }),
	"computed_props":       plainBool(func(o *CompressorOptions) *bool { return &o.ComputedProps }),
	"conditionals":         plainBool(func(o *CompressorOptions) *bool { return &o.Conditionals }),
	"dead_code":            plainBool(func(o *CompressorOptions) *bool { return &o.DeadCode }),
	"defaults":             plainBool(func(o *CompressorOptions) *bool { return &o.Defaults }),
	"directives":           plainBool(func(o *CompressorOptions) *bool { return &o.Directives }),
	"drop_console":         plainBool(func(o *CompressorOptions) *bool { return &o.DropConsole }),
	"drop_debugger":        optionalBool(func(o *CompressorOptions) **bool { return &o.DropDebugger }),
	"ecma":                 decodeEcma,
	"evaluate":             optionalBool(func(o *CompressorOptions) **bool { return &o.Evaluate }),
	"expression":           plainBool(func(o *CompressorOptions) *bool { return &o.Expression }),
	"global_defs":          decodeGlobalDefs,
	"hoist_funs":           plainBool(func(o *CompressorOptions) *bool { return &o.HoistFuns }),
	"hoist_props":          optionalBool(func(o *CompressorOptions) **bool { return &o.HoistProps }),
	"hoist_vars":           plainBool(func(o *CompressorOptions) *bool { return &o.HoistVars }),
	"ie8":                  plainBool(func(o *CompressorOptions) *bool { return &o.IE8 }),
	"if_return":            optionalBool(func(o *CompressorOptions) **bool { return &o.IfReturn }),
	"inline":               level(func(o *CompressorOptions) **Level { return &o.Inline }),
	"join_vars":            optionalBool(func(o *CompressorOptions) **bool { return &o.JoinVars }),
	"keep_classnames":      plainBool(func(o *CompressorOptions) *bool { return &o.KeepClassnames }),
	"keep_fargs":           optionalBool(func(o *CompressorOptions) **bool { return &o.KeepFargs }),
	"keep_fnames":          plainBool(func(o *CompressorOptions) *bool { return &o.KeepFnames }),
	"keep_infinity":        plainBool(func(o *CompressorOptions) *bool { return &o.KeepInfinity }),
	"loops":                optionalBool(func(o *CompressorOptions) **bool { return &o.Loops }),
	"module":               plainBool(func(o *CompressorOptions) *bool { return &o.Module }),
	"negate_iife":          optionalBool(func(o *CompressorOptions) **bool { return &o.NegateIife }),
	"passes":               decodePasses,
	"properties":           optionalBool(func(o *CompressorOptions) **bool { return &o.Properties }),
	"pure_funcs":           decodePureFuncs,
	"pure_getters":         decodePureGetters,
	"reduce_funcs":         plainBool(func(o *CompressorOptions) *bool { return &o.ReduceFuncs }),
	"reduce_vars":          plainBool(func(o *CompressorOptions) *bool { return &o.ReduceVars }),
	"sequences":            level(func(o *CompressorOptions) **Level { return &o.Sequences }),
	"side_effects":         optionalBool(func(o *CompressorOptions) **bool { return &o.SideEffects }),
	"switches":             plainBool(func(o *CompressorOptions) *bool { return &o.Switches }),
	"top_retain":           decodeTopRetain,
	"toplevel":             decodeTopLevel,
	"typeofs":              optionalBool(func(o *CompressorOptions) **bool { return &o.Typeofs }),
	"unsafe":               plainBool(func(o *CompressorOptions) *bool { return &o.Unsafe }),
	"unsafe_arrows":        plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeArrows }),
	"unsafe_comps":         plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeComps }),
	"unsafe_Function":      plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeFunction }),
	"unsafe_math":          plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeMath }),
	"unsafe_symbols":       plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeSymbols }),
	"unsafe_methods":       plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeMethods }),
	"unsafe_proto":         plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeProto }),
	"unsafe_regexp":        plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeRegexp }),
	"unsafe_undefined":     plainBool(func(o *CompressorOptions) *bool { return &o.UnsafeUndefined }),
	"unused":               optionalBool(func(o *CompressorOptions) **bool { return &o.Unused }),
}

// FieldNames returns every recognized key in sorted order.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode strictly reads a raw option object. Every key must be recognized
// and every value must have a shape its field accepts; all unknown keys are
// reported together before any value is looked at.
func Decode(val cty.Value) (*CompressorOptions, error) {
	if val.IsNull() {
		return nil, &SchemaError{Reason: "options must be an object, got null"}
	}
	if !val.IsWhollyKnown() {
		return nil, &SchemaError{Reason: "options must be fully known"}
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, &SchemaError{Reason: fmt.Sprintf("options must be an object, got %s", ty.FriendlyName())}
	}

	attrs := val.AsValueMap()
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var unknown []error
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			unknown = append(unknown, &SchemaError{Field: key, Reason: "unknown field"})
		}
	}
	if len(unknown) > 0 {
		return nil, errors.Join(unknown...)
	}

	opts := &CompressorOptions{}
	for _, key := range keys {
		if err := fields[key](opts, attrs[key]); err != nil {
			return nil, &SchemaError{Field: key, Reason: err.Error()}
		}
	}
	return opts, nil
}

// --- field families ---

func plainBool(field func(*CompressorOptions) *bool) fieldDecoder {
	return func(o *CompressorOptions, v cty.Value) error {
		if v.IsNull() {
			return errors.New("expected bool, got null")
		}
		b, err := asBool(v)
		if err != nil {
			return err
		}
		*field(o) = b
		return nil
	}
}

func optionalBool(field func(*CompressorOptions) **bool) fieldDecoder {
	return func(o *CompressorOptions, v cty.Value) error {
		if v.IsNull() {
			return nil
		}
		b, err := asBool(v)
		if err != nil {
			return err
		}
		*field(o) = &b
		return nil
	}
}

// level accepts, in order: bool, then a whole number in 0..255.
func level(field func(*CompressorOptions) **Level) fieldDecoder {
	return func(o *CompressorOptions, v cty.Value) error {
		if v.IsNull() {
			return nil
		}
		switch v.Type() {
		case cty.Bool:
			*field(o) = LevelBool(v.True())
			return nil
		case cty.Number:
			var n uint8
			if err := gocty.FromCtyValue(v, &n); err != nil {
				return fmt.Errorf("invalid level: %w", err)
			}
			*field(o) = LevelNum(n)
			return nil
		default:
			return fmt.Errorf("expected bool or number, got %s", v.Type().FriendlyName())
		}
	}
}

// decodeEcma accepts, in order: a non-negative whole number, then a string.
// Whether the value names a known edition is checked by Resolve.
func decodeEcma(o *CompressorOptions, v cty.Value) error {
	if v.IsNull() {
		return nil
	}
	switch v.Type() {
	case cty.Number:
		var n uint64
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return fmt.Errorf("invalid version number: %w", err)
		}
		o.Ecma = EcmaNumber(n)
		return nil
	case cty.String:
		o.Ecma = EcmaString(v.AsString())
		return nil
	default:
		return fmt.Errorf("expected number or string, got %s", v.Type().FriendlyName())
	}
}

func decodePasses(o *CompressorOptions, v cty.Value) error {
	if v.IsNull() {
		return errors.New("expected number, got null")
	}
	if v.Type() != cty.Number {
		return fmt.Errorf("expected number, got %s", v.Type().FriendlyName())
	}
	var n uint
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return fmt.Errorf("invalid pass count: %w", err)
	}
	o.Passes = n
	return nil
}

func decodePureFuncs(o *CompressorOptions, v cty.Value) error {
	if v.IsNull() {
		return errors.New("expected list of strings, got null")
	}
	names, err := asStringList(v)
	if err != nil {
		return err
	}
	o.PureFuncs = names
	return nil
}

// decodePureGetters accepts, in order: bool, the "strict" keyword, then any
// other string.
func decodePureGetters(o *CompressorOptions, v cty.Value) error {
	if v.IsNull() {
		return nil
	}
	switch v.Type() {
	case cty.Bool:
		o.PureGetters = PureGettersBool(v.True())
		return nil
	case cty.String:
		o.PureGetters = PureGettersString(v.AsString())
		return nil
	default:
		return fmt.Errorf("expected bool or string, got %s", v.Type().FriendlyName())
	}
}

// decodeTopLevel accepts, in order: bool, then string.
func decodeTopLevel(o *CompressorOptions, v cty.Value) error {
	if v.IsNull() {
		return nil
	}
	switch v.Type() {
	case cty.Bool:
		o.TopLevel = TopLevelBool(v.True())
		return nil
	case cty.String:
		o.TopLevel = TopLevelString(v.AsString())
		return nil
	default:
		return fmt.Errorf("expected bool or string, got %s", v.Type().FriendlyName())
	}
}

// decodeTopRetain accepts, in order: string, then a list of strings.
func decodeTopRetain(o *CompressorOptions, v cty.Value) error {
	if v.IsNull() {
		return nil
	}
	if v.Type() == cty.String {
		o.TopRetain = TopRetainString(v.AsString())
		return nil
	}
	names, err := asStringList(v)
	if err != nil {
		return fmt.Errorf("expected string or list of strings, got %s", v.Type().FriendlyName())
	}
	o.TopRetain = TopRetainList(names)
	return nil
}

// decodeGlobalDefs keeps entries as generic values; their shapes are checked
// when they are translated into literals.
func decodeGlobalDefs(o *CompressorOptions, v cty.Value) error {
	if v.IsNull() {
		return nil
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return fmt.Errorf("expected object, got %s", ty.FriendlyName())
	}
	o.GlobalDefs = v.AsValueMap()
	return nil
}

// --- shape helpers ---

func asBool(v cty.Value) (bool, error) {
	if v.Type() != cty.Bool {
		return false, fmt.Errorf("expected bool, got %s", v.Type().FriendlyName())
	}
	return v.True(), nil
}

// asStringList reads a list, set or tuple whose elements are all non-null
// strings. Element order is preserved.
func asStringList(v cty.Value) ([]string, error) {
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, fmt.Errorf("expected list of strings, got %s", ty.FriendlyName())
	}
	names := make([]string, 0, v.LengthInt())
	it := v.ElementIterator()
	for i := 0; it.Next(); i++ {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			return nil, fmt.Errorf("element %d: expected string, got %s", i, describeShape(elem))
		}
		names = append(names, elem.AsString())
	}
	return slices.Clip(names), nil
}

func describeShape(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	return v.Type().FriendlyName()
}
