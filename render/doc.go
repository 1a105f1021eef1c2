// Package render provides the one-call entry points around the engine:
// rendering a token stream to a string, a writer, or a complete file with
// its import preamble, batch rendering with bounded parallelism, and an
// output directory that rewrites files only when their content changed.
//
// Purpose: glue between token streams, language strategies and sinks.
// Does not: build token streams or define languages.
// Dependencies: format, tokens; errgroup for batches, msgpack for the
// digest manifest.
package render
