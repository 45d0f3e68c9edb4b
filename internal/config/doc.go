// Package config defines the format-agnostic configuration model for the
// validator, along with the Loader interface for reading it from a source.
//
// The `config.Model` describes the conventions of one corpus: where the
// standards live, how their directories are named, which markers declare
// dependencies and which peripheral checks run. Concrete loaders, such as
// the HCL one, are provided in separate packages.
package config
