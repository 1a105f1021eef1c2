// Package profile loads render profiles from a codegen.toml manifest:
// per-language indentation overrides and default package or namespace
// names, so embedding tools keep formatting policy out of their code.
package profile
