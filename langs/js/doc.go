// Package js renders token streams as JavaScript source.
//
// Named imports group into one statement per module specifier. JavaScript
// has no qualified access for named imports, so short-name collisions are
// resolved by aliasing later modules (`Name2`, `Name3`, ...). Interpolated
// regions render as template literals with ${} splices.
package js
