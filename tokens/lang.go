package tokens

import "github.com/udoprog/genco-sub000/format"

// Lang is the per-language customization point of the engine. A Lang value
// carries its own file-level configuration (package or namespace name and
// similar), so behavior is passed explicitly at the call boundary; there is
// no process-wide language registry.
type Lang interface {
	// DefaultConfig returns the indentation configuration used when the
	// caller does not override it.
	DefaultConfig() format.Config

	// OpenQuote writes the opening delimiter of a string literal. hasEval
	// reports whether the region may contain interpolation, which can
	// select a different literal form.
	OpenQuote(f *format.Formatter, hasEval bool) error

	// CloseQuote writes the closing delimiter of the innermost literal.
	// hasEval matches the value the region was opened with, so languages
	// with a distinct interpolated literal form close it correctly.
	CloseQuote(f *format.Formatter, hasEval bool) error

	// WriteQuoted writes text inside a string literal, escaping it per the
	// language's rules. The routine is total: characters the language
	// cannot spell verbatim are written as numeric escapes.
	WriteQuoted(f *format.Formatter, text string, hasEval bool) error

	// OpenEval writes the interpolation opening sequence. Languages
	// without string interpolation report an error.
	OpenEval(f *format.Formatter) error

	// CloseEval writes the interpolation closing sequence.
	CloseEval(f *format.Formatter) error

	// FormatFile renders t as a complete file: import preamble computed
	// from the stream's import walk, then the body.
	FormatFile(f *format.Formatter, t *Tokens) error
}

// FastEval is an optional Lang capability: a shorthand interpolation form
// for the trivial single-literal case (for example `$name` instead of
// `${name}`). following is the literal text immediately after the eval
// region, empty when none; languages whose shorthand has no closing
// delimiter must decline when that text could merge with the spliced
// expression. Returning false falls back to the ordinary eval hooks.
type FastEval interface {
	EvalLiteral(f *format.Formatter, lit, following string) (bool, error)
}

// LangItem is an opaque language-specific payload embedded in a stream,
// typically an import or type reference. It renders itself through the
// Formatter's literal-writing primitive only; whitespace is the stream
// producer's concern.
type LangItem interface {
	FormatInto(f *format.Formatter, lang Lang, state any) error
}

// ImportWalker is an optional LangItem capability for composite payloads
// (a generic type carrying importable type arguments, say). WalkImports
// yields the item's own importable view and every nested one, depth first,
// returning false once yield does.
type ImportWalker interface {
	WalkImports(yield func(LangItem) bool) bool
}
