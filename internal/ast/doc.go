// Package ast holds the small part of the compression engine's syntax tree
// that canonical options refer to: constant literal nodes and the language
// edition enumeration.
package ast
