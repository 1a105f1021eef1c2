package rust

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// ErrNoEval reports use of string interpolation, which Rust string literals
// do not have.
var ErrNoEval = errors.New("rust: string evaluation is not supported")

// Config is the Rust language strategy. Rust files carry no package
// declaration, so the zero value is a complete configuration.
type Config struct{}

var _ tokens.Lang = Config{}

func (Config) DefaultConfig() format.Config {
	return format.Config{IndentWidth: 4}
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
	return ErrNoEval
}

func (Config) CloseEval(f *format.Formatter) error {
	return ErrNoEval
}

// FormatFile prepends sorted, deduplicated use declarations to the body.
func (c Config) FormatFile(f *format.Formatter, t *tokens.Tokens) error {
	imports, st := resolveImports(t)

	var out tokens.Tokens
	for _, imp := range imports {
		out.Literal(imp.useDecl())
		out.Push()
	}
	if !out.IsEmpty() {
		out.Line()
	}
	out.Extend(t)
	return out.FormatInto(f, c, st)
}

// quote escapes text for a Rust string literal. Total over Unicode: source
// is UTF-8, so anything printable stays verbatim and control characters
// become \u{...} escapes.
func quote(text string) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
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
