package terser

import (
	"slices"

	"github.com/specialistvlad/compressopts/internal/compress"
	"github.com/zclconf/go-cty/cty"
)

// Translate decodes a raw option object and converts it in one step.
func Translate(val cty.Value) (compress.Options, error) {
	raw, err := Decode(val)
	if err != nil {
		return compress.Options{}, err
	}
	return Convert(raw)
}

// Convert builds canonical options from a raw record. Apart from the shared
// `defaults` cascade, every canonical field depends only on its own raw
// field. On error the zero Options is returned.
func Convert(c *CompressorOptions) (compress.Options, error) {
	ecma, err := c.Ecma.Resolve()
	if err != nil {
		return compress.Options{}, err
	}
	globalDefs, err := TranslateGlobalDefs(c.GlobalDefs)
	if err != nil {
		return compress.Options{}, err
	}

	pureFuncs := []string{}
	if c.PureFuncs != nil {
		pureFuncs = slices.Clone(c.PureFuncs)
	}

	return compress.Options{
		Arguments:       c.Arguments,
		Arrows:          Cascade(c.Arrows, c.Defaults),
		Bools:           Cascade(c.Booleans, c.Defaults),
		BoolsAsInts:     c.BooleansAsIntegers,
		CollapseVars:    Cascade(c.CollapseVars, c.Defaults),
		Comparisons:     Cascade(c.Comparisons, c.Defaults),
		ComputedProps:   c.ComputedProps,
		Conditionals:    c.Conditionals,
		DeadCode:        c.DeadCode,
		Directives:      c.Directives,
		DropConsole:     c.DropConsole,
		DropDebugger:    Cascade(c.DropDebugger, c.Defaults),
		Ecma:            ecma,
		Evaluate:        Cascade(c.Evaluate, c.Defaults),
		Expr:            c.Expression,
		GlobalDefs:      globalDefs,
		HoistFns:        c.HoistFuns,
		HoistProps:      Cascade(c.HoistProps, c.Defaults),
		HoistVars:       c.HoistVars,
		IE8:             c.IE8,
		IfReturn:        Cascade(c.IfReturn, c.Defaults),
		Inline:          ResolveLevel(c.Inline, c.Defaults),
		JoinVars:        Cascade(c.JoinVars, c.Defaults),
		KeepClassnames:  c.KeepClassnames,
		KeepFargs:       Cascade(c.KeepFargs, c.Defaults),
		KeepFnames:      c.KeepFnames,
		KeepInfinity:    c.KeepInfinity,
		Loops:           Cascade(c.Loops, c.Defaults),
		Module:          c.Module,
		NegateIife:      Cascade(c.NegateIife, c.Defaults),
		Passes:          c.Passes,
		Props:           Cascade(c.Properties, c.Defaults),
		PureGetters:     c.PureGetters.Resolve(),
		PureFuncs:       pureFuncs,
		ReduceFns:       c.ReduceFuncs,
		ReduceVars:      c.ReduceVars,
		Sequences:       ResolveLevel(c.Sequences, c.Defaults),
		SideEffects:     Cascade(c.SideEffects, c.Defaults),
		Switches:        c.Switches,
		TopRetain:       c.TopRetain.Names(),
		TopLevel:        c.TopLevel.Resolve(),
		Typeofs:         Cascade(c.Typeofs, c.Defaults),
		UnsafePasses:    c.Unsafe,
		UnsafeArrows:    c.UnsafeArrows,
		UnsafeComps:     c.UnsafeComps,
		UnsafeFunction:  c.UnsafeFunction,
		UnsafeMath:      c.UnsafeMath,
		UnsafeSymbols:   c.UnsafeSymbols,
		UnsafeMethods:   c.UnsafeMethods,
		UnsafeProto:     c.UnsafeProto,
		UnsafeRegexp:    c.UnsafeRegexp,
		UnsafeUndefined: c.UnsafeUndefined,
		Unused:          Cascade(c.Unused, c.Defaults),
	}, nil
}
