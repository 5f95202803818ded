package ast

import "strconv"

// LitKind identifies the concrete type behind a Lit.
type LitKind int

const (
	LitNull LitKind = iota
	LitBool
	LitNumber
	LitStr
)

// String returns a human-readable kind name.
func (k LitKind) String() string {
	switch k {
	case LitNull:
		return "null"
	case LitBool:
		return "bool"
	case LitNumber:
		return "number"
	case LitStr:
		return "string"
	default:
		return "unknown"
	}
}

// Lit is a constant literal node. The set of implementations is closed.
type Lit interface {
	Kind() LitKind
	String() string
	isLit()
}

// Null is the `null` literal.
type Null struct{}

// Bool is a `true` or `false` literal.
type Bool struct {
	Value bool
}

// Number is a numeric literal. The engine stores every number as a float64.
type Number struct {
	Value float64
}

// Str is a string literal. Value is the raw text; HasEscape reports whether
// the source spelling contained escape sequences.
type Str struct {
	Value     string
	HasEscape bool
}

func (Null) Kind() LitKind   { return LitNull }
func (Bool) Kind() LitKind   { return LitBool }
func (Number) Kind() LitKind { return LitNumber }
func (Str) Kind() LitKind    { return LitStr }

func (Null) String() string     { return "null" }
func (b Bool) String() string   { return strconv.FormatBool(b.Value) }
func (n Number) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (s Str) String() string    { return strconv.Quote(s.Value) }

func (Null) isLit()   {}
func (Bool) isLit()   {}
func (Number) isLit() {}
func (Str) isLit()    {}
