package hcl

import (
	"github.com/specialistvlad/compressopts/internal/ast"
	"github.com/specialistvlad/compressopts/internal/compress"
	"github.com/zclconf/go-cty/cty"
)

var topLevelType = cty.Object(map[string]cty.Type{"functions": cty.Bool})

// EncodeOptions renders canonical options as one object value, keyed by the
// engine's snake_case option names.
func EncodeOptions(o compress.Options) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"arguments":        cty.BoolVal(o.Arguments),
		"arrows":           cty.BoolVal(o.Arrows),
		"bools":            cty.BoolVal(o.Bools),
		"bools_as_ints":    cty.BoolVal(o.BoolsAsInts),
		"collapse_vars":    cty.BoolVal(o.CollapseVars),
		"comparisons":      cty.BoolVal(o.Comparisons),
		"computed_props":   cty.BoolVal(o.ComputedProps),
		"conditionals":     cty.BoolVal(o.Conditionals),
		"dead_code":        cty.BoolVal(o.DeadCode),
		"directives":       cty.BoolVal(o.Directives),
		"drop_console":     cty.BoolVal(o.DropConsole),
		"drop_debugger":    cty.BoolVal(o.DropDebugger),
		"ecma":             cty.StringVal(o.Ecma.String()),
		"evaluate":         cty.BoolVal(o.Evaluate),
		"expr":             cty.BoolVal(o.Expr),
		"global_defs":      encodeGlobalDefs(o.GlobalDefs),
		"hoist_fns":        cty.BoolVal(o.HoistFns),
		"hoist_props":      cty.BoolVal(o.HoistProps),
		"hoist_vars":       cty.BoolVal(o.HoistVars),
		"ie8":              cty.BoolVal(o.IE8),
		"if_return":        cty.BoolVal(o.IfReturn),
		"inline":           cty.NumberUIntVal(uint64(o.Inline)),
		"join_vars":        cty.BoolVal(o.JoinVars),
		"keep_classnames":  cty.BoolVal(o.KeepClassnames),
		"keep_fargs":       cty.BoolVal(o.KeepFargs),
		"keep_fnames":      cty.BoolVal(o.KeepFnames),
		"keep_infinity":    cty.BoolVal(o.KeepInfinity),
		"loops":            cty.BoolVal(o.Loops),
		"module":           cty.BoolVal(o.Module),
		"negate_iife":      cty.BoolVal(o.NegateIife),
		"passes":           cty.NumberUIntVal(uint64(o.Passes)),
		"props":            cty.BoolVal(o.Props),
		"pure_getters":     encodePureGetters(o.PureGetters),
		"pure_funcs":       encodeStrings(o.PureFuncs),
		"reduce_fns":       cty.BoolVal(o.ReduceFns),
		"reduce_vars":      cty.BoolVal(o.ReduceVars),
		"sequences":        cty.NumberUIntVal(uint64(o.Sequences)),
		"side_effects":     cty.BoolVal(o.SideEffects),
		"switches":         cty.BoolVal(o.Switches),
		"top_retain":       encodeStrings(o.TopRetain),
		"top_level":        encodeTopLevel(o.TopLevel),
		"typeofs":          cty.BoolVal(o.Typeofs),
		"unsafe_passes":    cty.BoolVal(o.UnsafePasses),
		"unsafe_arrows":    cty.BoolVal(o.UnsafeArrows),
		"unsafe_comps":     cty.BoolVal(o.UnsafeComps),
		"unsafe_function":  cty.BoolVal(o.UnsafeFunction),
		"unsafe_math":      cty.BoolVal(o.UnsafeMath),
		"unsafe_symbols":   cty.BoolVal(o.UnsafeSymbols),
		"unsafe_methods":   cty.BoolVal(o.UnsafeMethods),
		"unsafe_proto":     cty.BoolVal(o.UnsafeProto),
		"unsafe_regexp":    cty.BoolVal(o.UnsafeRegexp),
		"unsafe_undefined": cty.BoolVal(o.UnsafeUndefined),
		"unused":           cty.BoolVal(o.Unused),
	})
}

func encodeGlobalDefs(defs map[string]ast.Lit) cty.Value {
	if len(defs) == 0 {
		return cty.EmptyObjectVal
	}
	vals := make(map[string]cty.Value, len(defs))
	for name, lit := range defs {
		vals[name] = encodeLit(lit)
	}
	return cty.ObjectVal(vals)
}

// encodeLit uses a typed null so the JSON encoder writes a bare null rather
// than a dynamic-value wrapper.
func encodeLit(lit ast.Lit) cty.Value {
	switch l := lit.(type) {
	case ast.Bool:
		return cty.BoolVal(l.Value)
	case ast.Number:
		return cty.NumberFloatVal(l.Value)
	case ast.Str:
		return cty.StringVal(l.Value)
	default:
		return cty.NullVal(cty.String)
	}
}

func encodePureGetters(p compress.PureGetters) cty.Value {
	switch p.Mode {
	case compress.PureGettersBool:
		return cty.BoolVal(p.Enabled)
	case compress.PureGettersCustom:
		return cty.StringVal(p.Value)
	default:
		return cty.StringVal("strict")
	}
}

func encodeStrings(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, item := range items {
		vals[i] = cty.StringVal(item)
	}
	return cty.ListVal(vals)
}

func encodeTopLevel(t *compress.TopLevelOptions) cty.Value {
	if t == nil {
		return cty.NullVal(topLevelType)
	}
	return cty.ObjectVal(map[string]cty.Value{"functions": cty.BoolVal(t.Functions)})
}
