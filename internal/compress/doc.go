// Package compress defines the canonical option set handed to the
// compression engine. Every field carries a fully resolved value; there is
// no "unspecified" state left at this level.
package compress
