// Package dart renders token streams as Dart source. Trivial interpolations
// take the `$name` shorthand; everything else splices through `${}`.
package dart
