// Package golang renders token streams as Go source: package clause, import
// block with deterministic collision aliases, and string literal escaping.
//
// Go has no qualified use without an import, so short-name collisions are
// resolved by aliasing later packages (`base2`, `base3`, ...) instead of
// writing fully qualified use sites.
package golang
