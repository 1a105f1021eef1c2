package dart

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Config is the Dart language strategy. The zero value is a complete
// configuration.
type Config struct{}

var (
	_ tokens.Lang     = Config{}
	_ tokens.FastEval = Config{}
)

func (Config) DefaultConfig() format.Config {
	return format.Config{IndentWidth: 2}
}

func (Config) OpenQuote(f *format.Formatter, hasEval bool) error {
	return f.WriteString(`"`)
}

func (Config) CloseQuote(f *format.Formatter, hasEval bool) error {
	return f.WriteString(`"`)
}

func (Config) WriteQuoted(f *format.Formatter, text string, hasEval bool) error {
	return f.WriteString(quote(text))
}

func (Config) OpenEval(f *format.Formatter) error {
	return f.WriteString("${")
}

func (Config) CloseEval(f *format.Formatter) error {
	return f.WriteString("}")
}

// EvalLiteral writes `$lit` when lit is a plain identifier, the shorthand
// Dart allows for trivial interpolations. The shorthand has no closing
// delimiter, so it is declined when the following text starts with an
// identifier character that would extend the spliced name.
func (Config) EvalLiteral(f *format.Formatter, lit, following string) (bool, error) {
	if !isIdent(lit) || extendsIdent(following) {
		return false, nil
	}
	return true, f.WriteString("$" + lit)
}

// FormatFile prepends sorted import directives to the body.
func (c Config) FormatFile(f *format.Formatter, t *tokens.Tokens) error {
	imports, st := resolveImports(t)

	var out tokens.Tokens
	for _, imp := range imports {
		out.Literal(imp.render())
		out.Push()
	}
	if len(imports) > 0 {
		out.Line()
	}
	out.Extend(t)
	return out.FormatInto(f, c, st)
}

func extendsIdent(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for n, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if n > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// quote escapes text for a Dart string literal. The dollar sign always
// escapes so literal text can never start an interpolation.
func quote(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '$':
			sb.WriteString(`\$`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u{%x}`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
