// Package tokens defines the language-neutral token stream consumed by the
// formatting engine: the closed item set, the Tokens container with its
// append-time normalization rules, the import walk, and the rendering loop
// that drives a target language implementation.
//
// Purpose: the write-side data model and the quote/eval state machine.
// Does not: parse source text or define any concrete target language; those
// live under langs/.
// Dependencies: format.
package tokens
