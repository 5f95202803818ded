// Package hcl provides the concrete file formats for the interfaces defined
// in the `config` package. Option files written in HCL, JSON or YAML are read
// into one generic cty.Value each, and canonical options are rendered back
// out as HCL or JSON.
package hcl
