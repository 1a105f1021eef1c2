package csharp

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"fortio.org/safecast"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// Config is the C# language strategy.
type Config struct {
	// Namespace is the file's own namespace. When set, the body is wrapped
	// in a namespace block and types from it are never imported.
	Namespace string
}

var _ tokens.Lang = Config{}

func (Config) DefaultConfig() format.Config {
	return format.Config{IndentWidth: 4}
}

func (Config) OpenQuote(f *format.Formatter, hasEval bool) error {
	if hasEval {
		return f.WriteString(`$"`)
	}
	return f.WriteString(`"`)
}

func (Config) CloseQuote(f *format.Formatter, hasEval bool) error {
	return f.WriteString(`"`)
}

func (Config) WriteQuoted(f *format.Formatter, text string, hasEval bool) error {
	return quote(f, text, hasEval)
}

func (Config) OpenEval(f *format.Formatter) error {
	return f.WriteString("{")
}

func (Config) CloseEval(f *format.Formatter) error {
	return f.WriteString("}")
}

// FormatFile prepends sorted usings and wraps the body in the configured
// namespace block.
func (c Config) FormatFile(f *format.Formatter, t *tokens.Tokens) error {
	usings, st := c.resolveImports(t)

	var out tokens.Tokens
	for _, ns := range usings {
		out.Literal("using " + ns + ";")
		out.Push()
	}
	if len(usings) > 0 {
		out.Line()
	}
	if c.Namespace != "" {
		out.Literal("namespace " + c.Namespace)
		out.Push()
		out.Literal("{")
		out.Indent()
		out.Extend(t)
		out.Unindent()
		out.Literal("}")
	} else {
		out.Extend(t)
	}
	return out.FormatInto(f, c, st)
}

// quote escapes text as UTF-16 code units. In interpolated literals the
// brace characters double up.
func quote(f *format.Formatter, text string, hasEval bool) error {
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
		case '{':
			if hasEval {
				sb.WriteString("{{")
			} else {
				sb.WriteRune(r)
			}
		case '}':
			if hasEval {
				sb.WriteString("}}")
			} else {
				sb.WriteRune(r)
			}
		default:
			if r >= 0x20 && r != 0x7f && r <= 0xffff {
				sb.WriteRune(r)
				break
			}
			if err := writeUnits(&sb, r); err != nil {
				return err
			}
		}
	}
	return f.WriteString(sb.String())
}

func writeUnits(sb *strings.Builder, r rune) error {
	if r <= 0xffff {
		u, err := safecast.Conv[uint16](r)
		if err != nil {
			return fmt.Errorf("csharp: code unit out of range: %w", err)
		}
		fmt.Fprintf(sb, `\u%04x`, u)
		return nil
	}
	hi, lo := utf16.EncodeRune(r)
	uh, err := safecast.Conv[uint16](hi)
	if err != nil {
		return fmt.Errorf("csharp: high surrogate out of range: %w", err)
	}
	ul, err := safecast.Conv[uint16](lo)
	if err != nil {
		return fmt.Errorf("csharp: low surrogate out of range: %w", err)
	}
	fmt.Fprintf(sb, `\u%04x\u%04x`, uh, ul)
	return nil
}
