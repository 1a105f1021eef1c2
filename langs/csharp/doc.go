// Package csharp renders token streams as C# source.
//
// usings are deduplicated per namespace and only emitted for namespaces
// that won at least one short name; colliding type names render fully
// qualified. Interpolated regions use $"..." literals with {} splices.
package csharp
