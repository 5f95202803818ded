package terser

// Cascade is the single rule for optional booleans: an explicit value wins,
// otherwise the `defaults` flag is used.
func Cascade(explicit *bool, defaults bool) bool {
	if explicit != nil {
		return *explicit
	}
	return defaults
}

// ResolveLevel returns the level an optional level field stands for. An
// absent field takes `defaults` through the same bool shorthand rule.
func ResolveLevel(l *Level, defaults bool) uint8 {
	if l == nil {
		return boolLevel(defaults)
	}
	return l.Value()
}
