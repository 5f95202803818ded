// Package config defines the format-agnostic pieces shared by the loading
// and output sides of the application: the Loader and Writer interfaces and
// the Document model that flows between them.
//
// A Loader produces a generic cty.Value for one source file; translation into
// canonical options happens in the terser package. Concrete implementations
// of both interfaces, for HCL, JSON and YAML, live in separate packages.
package config
