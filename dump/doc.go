// Package dump prints token streams one item per line for debugging stream
// producers. Output is tinted on terminals and plain when redirected.
package dump
