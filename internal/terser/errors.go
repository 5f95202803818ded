package terser

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaViolation is matched by errors for unknown fields and values
	// whose shape is not accepted by their field.
	ErrSchemaViolation = errors.New("schema violation")
	// ErrUnsupportedVersion is matched by errors for ecma values outside the
	// known edition table.
	ErrUnsupportedVersion = errors.New("unsupported ecma version")
	// ErrUnsupportedLiteralShape is matched by errors for global_defs entries
	// that are not null, bool, number or string.
	ErrUnsupportedLiteralShape = errors.New("unsupported global definition shape")
)

// SchemaError reports a single field that failed strict decoding.
type SchemaError struct {
	// Field is the raw key; empty when the input as a whole was rejected.
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrSchemaViolation, e.Reason)
	}
	return fmt.Sprintf("%s: field %q: %s", ErrSchemaViolation, e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaViolation }

// VersionError reports an ecma value that does not name a known edition.
type VersionError struct {
	Input string
	Err   error // parse failure for textual input, if any
}

func (e *VersionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q is not a valid ecmascript version: %v", ErrUnsupportedVersion, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %q is not a valid ecmascript version", ErrUnsupportedVersion, e.Input)
}

func (e *VersionError) Unwrap() error { return ErrUnsupportedVersion }

// LiteralShapeError reports a global definition whose value cannot become a
// literal node.
type LiteralShapeError struct {
	Name  string
	Shape string
}

func (e *LiteralShapeError) Error() string {
	return fmt.Sprintf("%s: global_defs entry %q is %s; only null, bool, number and string are allowed", ErrUnsupportedLiteralShape, e.Name, e.Shape)
}

func (e *LiteralShapeError) Unwrap() error { return ErrUnsupportedLiteralShape }
