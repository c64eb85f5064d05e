// Package config defines the format-agnostic knowledge-base model for the
// application, along with the Loader interface for reading rule libraries
// from external sources.
//
// The `config.Model` is the single source of truth for the `registry` and
// `planner` packages. Concrete loader implementations, such as for HCL,
// are provided in separate packages.
package config
