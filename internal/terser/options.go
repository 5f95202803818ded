package terser

import "github.com/zclconf/go-cty/cty"

// CompressorOptions is the raw, terser-compatible option record. Pointer
// fields distinguish "not given" from an explicit false; plain bools default
// to false. The zero value is a valid record equal to decoding `{}`.
type CompressorOptions struct {
	Arguments          bool
	Arrows             *bool
	Booleans           *bool
	BooleansAsIntegers bool
	CollapseVars       *bool
	Comparisons        *bool
	ComputedProps      bool
	Conditionals       bool
	DeadCode           bool
	// Defaults fills in every optional boolean left unset.
	Defaults        bool
	Directives      bool
	DropConsole     bool
	DropDebugger    *bool
	Ecma            EcmaVersion
	Evaluate        *bool
	Expression      bool
	GlobalDefs      map[string]cty.Value
	HoistFuns       bool
	HoistProps      *bool
	HoistVars       bool
	IE8             bool
	IfReturn        *bool
	Inline          *Level
	JoinVars        *bool
	KeepClassnames  bool
	KeepFargs       *bool
	KeepFnames      bool
	KeepInfinity    bool
	Loops           *bool
	Module          bool
	NegateIife      *bool
	Passes          uint
	Properties      *bool
	PureGetters     PureGetterOption
	PureFuncs       []string
	ReduceFuncs     bool
	ReduceVars      bool
	Sequences       *Level
	SideEffects     *bool
	Switches        bool
	TopRetain       *TopRetainOption
	TopLevel        *TopLevelOption
	Typeofs         *bool
	Unsafe          bool
	UnsafeArrows    bool
	UnsafeComps     bool
	UnsafeFunction  bool
	UnsafeMath      bool
	UnsafeSymbols   bool
	UnsafeMethods   bool
	UnsafeProto     bool
	UnsafeRegexp    bool
	UnsafeUndefined bool
	Unused          *bool
}

// Bool returns a pointer to b, for filling optional fields in Go code.
func Bool(b bool) *bool {
	return &b
}
