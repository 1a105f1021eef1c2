package js

import (
	"fmt"
	"strings"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Config is the JavaScript language strategy. The zero value is a complete
// configuration.
type Config struct{}

var _ tokens.Lang = Config{}

func (Config) DefaultConfig() format.Config {
	return format.Config{IndentWidth: 2}
}

func (Config) OpenQuote(f *format.Formatter, hasEval bool) error {
	if hasEval {
		return f.WriteString("`")
	}
	return f.WriteString(`"`)
}

func (Config) CloseQuote(f *format.Formatter, hasEval bool) error {
	if hasEval {
		return f.WriteString("`")
	}
	return f.WriteString(`"`)
}

func (Config) WriteQuoted(f *format.Formatter, text string, hasEval bool) error {
	return f.WriteString(quote(text, hasEval))
}

func (Config) OpenEval(f *format.Formatter) error {
	return f.WriteString("${")
}

func (Config) CloseEval(f *format.Formatter) error {
	return f.WriteString("}")
}

// FormatFile prepends grouped import statements to the body.
func (c Config) FormatFile(f *format.Formatter, t *tokens.Tokens) error {
	groups, st := resolveImports(t)

	var out tokens.Tokens
	for _, g := range groups {
		out.Literal(g.statement())
		out.Push()
	}
	if len(groups) > 0 {
		out.Line()
	}
	out.Extend(t)
	return out.FormatInto(f, c, st)
}

// quote escapes text for a string or template literal. Template payloads
// escape the backtick and the dollar sign so literal text can never open a
// splice.
func quote(text string, hasEval bool) string {
	var sb strings.Builder
	for _, r := range text {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			if hasEval {
				sb.WriteRune(r)
			} else {
				sb.WriteString(`\"`)
			}
		case '`':
			if hasEval {
				sb.WriteString("\\`")
			} else {
				sb.WriteRune(r)
			}
		case '$':
			if hasEval {
				sb.WriteString(`\$`)
			} else {
				sb.WriteRune(r)
			}
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
