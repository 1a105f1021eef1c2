// Package rust renders token streams as Rust source: use-declaration
// collection and string literal escaping.
package rust
