// Package format implements the whitespace engine that turns structural
// markers (pushed lines, blank lines, spaces, indentation deltas) into
// concrete output text.
//
// Purpose: pending-whitespace bookkeeping and flush-on-write emission around
// an output sink.
// Does not: know about token streams or target languages; callers drive the
// Formatter through its write and whitespace primitives.
// Dependencies: none outside the standard library.
package format
