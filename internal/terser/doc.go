// Package terser reads compressor options written in the terser-compatible
// schema and translates them into canonical compress.Options.
//
// The raw schema is permissive: several fields accept more than one shape
// (a bool or a level, a string or a list, a number or a string). Each such
// field is decoded into an explicit variant type whose accepted shapes are
// tried in a fixed, documented order. Translation then happens field by
// field; the only value shared between fields is the `defaults` flag, which
// fills in every optional boolean the caller left out.
//
// Decoding and translation are pure functions over their input and may be
// called concurrently.
package terser
