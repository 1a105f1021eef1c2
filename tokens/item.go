package tokens

import "strconv"

// ItemKind discriminates the closed set of token stream elements.
type ItemKind uint8

const (
	// ItemLiteral is raw text, emitted verbatim outside quote regions and
	// through the language's quoting routine inside them.
	ItemLiteral ItemKind = iota
	// ItemLang is an opaque language-specific payload that renders itself.
	ItemLang
	// ItemRegister carries the same payload as ItemLang but is never
	// rendered; it only participates in the import walk.
	ItemRegister
	// ItemPush requests a line break before the next non-whitespace token,
	// unless the current line is already empty.
	ItemPush
	// ItemLine requests one blank line of separation.
	ItemLine
	// ItemSpace requests a single space, collapsed with adjacent spaces.
	ItemSpace
	// ItemIndent adjusts the indentation level by a nonzero delta and
	// implies a push.
	ItemIndent
	// ItemOpenQuote opens a region whose literals pass through the
	// language's string quoting.
	ItemOpenQuote
	// ItemCloseQuote closes the innermost quote region.
	ItemCloseQuote
	// ItemOpenEval opens an interpolated sub-region inside a quote.
	ItemOpenEval
	// ItemCloseEval closes the innermost eval region.
	ItemCloseEval
)

func (k ItemKind) String() string {
	switch k {
	case ItemLiteral:
		return "literal"
	case ItemLang:
		return "lang"
	case ItemRegister:
		return "register"
	case ItemPush:
		return "push"
	case ItemLine:
		return "line"
	case ItemSpace:
		return "space"
	case ItemIndent:
		return "indent"
	case ItemOpenQuote:
		return "open-quote"
	case ItemCloseQuote:
		return "close-quote"
	case ItemOpenEval:
		return "open-eval"
	case ItemCloseEval:
		return "close-eval"
	}
	return "item(" + strconv.Itoa(int(k)) + ")"
}

// Item is one element of a token stream. Kind selects which payload fields
// are meaningful. Lang payloads are held as interface values, so copying an
// Item or a Tokens shares payloads by reference.
type Item struct {
	Kind ItemKind

	// Text is the payload of ItemLiteral.
	Text string
	// Lang is the payload of ItemLang and ItemRegister.
	Lang LangItem
	// Delta is the payload of ItemIndent. Never zero.
	Delta int
	// HasEval marks an ItemOpenQuote region as possibly containing
	// interpolation.
	HasEval bool
}
