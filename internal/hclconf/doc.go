// Package hclconf provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for rule-library file
// discovery, parsing, locals evaluation, and HCL-to-model translation.
package hclconf
