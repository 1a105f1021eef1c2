package golang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// ErrNoEval reports use of string interpolation, which Go string literals do
// not have.
var ErrNoEval = errors.New("golang: string evaluation is not supported")

// Config is the Go language strategy.
type Config struct {
	// Package is the name in the package clause.
	Package string
	// Module is the import path of the file's own package. Imports whose
	// module matches render bare and emit no import line.
	Module string
}

var _ tokens.Lang = Config{}

func (Config) DefaultConfig() format.Config {
	return format.Config{UseTabs: true}
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

// FormatFile prepends the package clause and an import block to the body.
func (c Config) FormatFile(f *format.Formatter, t *tokens.Tokens) error {
	imports, st := c.resolveImports(t)

	var out tokens.Tokens
	if c.Package != "" {
		out.Literal("package " + c.Package)
		out.Line()
	}
	switch len(imports) {
	case 0:
	case 1:
		out.Literal("import " + imports[0].spec(st))
		out.Line()
	default:
		out.Literal("import (")
		out.Indent()
		for n, imp := range imports {
			if n > 0 {
				out.Push()
			}
			out.Literal(imp.spec(st))
		}
		out.Unindent()
		out.Literal(")")
		out.Line()
	}
	out.Extend(t)
	return out.FormatInto(f, c, st)
}

// quote escapes text for a Go string literal. Source is UTF-8, so printable
// characters stay verbatim and the rest become \uXXXX escapes.
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
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}
