package compress

import "github.com/specialistvlad/compressopts/internal/ast"

// MaxLevel is the strongest setting of a level-valued pass (inline, sequences).
const MaxLevel uint8 = 3

// Options is the canonical compressor configuration.
type Options struct {
	Arguments      bool
	Arrows         bool
	Bools          bool
	BoolsAsInts    bool
	CollapseVars   bool
	Comparisons    bool
	ComputedProps  bool
	Conditionals   bool
	DeadCode       bool
	Directives     bool
	DropConsole    bool
	DropDebugger   bool
	Ecma           ast.EsVersion
	Evaluate       bool
	Expr           bool
	GlobalDefs     map[string]ast.Lit
	HoistFns       bool
	HoistProps     bool
	HoistVars      bool
	IE8            bool
	IfReturn       bool
	Inline         uint8
	JoinVars       bool
	KeepClassnames bool
	KeepFargs      bool
	KeepFnames     bool
	KeepInfinity   bool
	Loops          bool
	Module         bool
	NegateIife     bool
	Passes         uint
	Props          bool
	PureGetters    PureGetters
	PureFuncs      []string
	ReduceFns      bool
	ReduceVars     bool
	Sequences      uint8
	SideEffects    bool
	Switches       bool
	TopRetain      []string
	// TopLevel is nil when the caller never mentioned top-level handling.
	TopLevel        *TopLevelOptions
	Typeofs         bool
	UnsafePasses    bool
	UnsafeArrows    bool
	UnsafeComps     bool
	UnsafeFunction  bool
	UnsafeMath      bool
	UnsafeSymbols   bool
	UnsafeMethods   bool
	UnsafeProto     bool
	UnsafeRegexp    bool
	UnsafeUndefined bool
	Unused          bool
}

// TopLevelOptions controls what the engine may drop or rename at the top
// level scope.
type TopLevelOptions struct {
	Functions bool
}

// PureGettersMode distinguishes the three accepted forms of pure_getters.
type PureGettersMode int

const (
	// PureGettersStrict assumes getters are pure except on possibly-nullish objects.
	PureGettersStrict PureGettersMode = iota
	// PureGettersBool is an explicit on/off switch.
	PureGettersBool
	// PureGettersCustom carries a caller-defined string, e.g. a property list.
	PureGettersCustom
)

// String returns a human-readable mode name.
func (m PureGettersMode) String() string {
	switch m {
	case PureGettersStrict:
		return "strict"
	case PureGettersBool:
		return "bool"
	case PureGettersCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// PureGetters is the canonical pure_getters setting. Enabled is only
// meaningful for PureGettersBool and Value only for PureGettersCustom.
type PureGetters struct {
	Mode    PureGettersMode
	Enabled bool
	Value   string
}
