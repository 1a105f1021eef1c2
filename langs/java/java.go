package java

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"fortio.org/safecast"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// ErrNoEval reports use of string interpolation, which Java string literals
// do not have.
var ErrNoEval = errors.New("java: string evaluation is not supported")

// langPackage is implicitly imported by every compilation unit.
const langPackage = "java.lang"

// Config is the Java language strategy.
type Config struct {
	// Package is the compilation unit's own package. Classes from it are
	// never imported or qualified.
	Package string
}

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
	return quote(f, text)
}

func (Config) OpenEval(f *format.Formatter) error {
	return ErrNoEval
}

func (Config) CloseEval(f *format.Formatter) error {
	return ErrNoEval
}

// FormatFile prepends the package declaration and sorted imports to the
// body.
func (c Config) FormatFile(f *format.Formatter, t *tokens.Tokens) error {
	imports, st := c.resolveImports(t)

	var out tokens.Tokens
	if c.Package != "" {
		out.Literal("package " + c.Package + ";")
		out.Line()
	}
	for _, imp := range imports {
		out.Literal("import " + imp.qualified() + ";")
		out.Push()
	}
	if len(imports) > 0 {
		out.Line()
	}
	out.Extend(t)
	return out.FormatInto(f, c, st)
}

// quote escapes text as UTF-16 code units: printable ASCII verbatim,
// everything else \uXXXX, with supplementary characters written as
// surrogate pairs.
func quote(f *format.Formatter, text string) error {
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
		case '\f':
			sb.WriteString(`\f`)
		case '\b':
			sb.WriteString(`\b`)
		default:
			if r >= 0x20 && r < 0x7f {
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
			return fmt.Errorf("java: code unit out of range: %w", err)
		}
		fmt.Fprintf(sb, `\u%04x`, u)
		return nil
	}
	hi, lo := utf16.EncodeRune(r)
	uh, err := safecast.Conv[uint16](hi)
	if err != nil {
		return fmt.Errorf("java: high surrogate out of range: %w", err)
	}
	ul, err := safecast.Conv[uint16](lo)
	if err != nil {
		return fmt.Errorf("java: low surrogate out of range: %w", err)
	}
	fmt.Fprintf(sb, `\u%04x\u%04x`, uh, ul)
	return nil
}
