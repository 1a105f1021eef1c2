package csharp

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

func renderFile(t *testing.T, cfg Config, tok *tokens.Tokens) string {
	t.Helper()
	var sb strings.Builder
	f := format.New(format.NewIOWriter(&sb), cfg.DefaultConfig())
	if err := cfg.FormatFile(f, tok); err != nil {
		t.Fatalf("format file failed: %v", err)
	}
	return sb.String()
}

func TestNamespaceBlock(t *testing.T) {
	list := Imported("System.Collections.Generic", "List")

	var tok tokens.Tokens
	tok.Literal("class Demo {")
	tok.Indent()
	tok.Lang(list)
	tok.Literal("<int> xs;")
	tok.Unindent()
	tok.Literal("}")

	want := strings.Join([]string{
		"using System.Collections.Generic;",
		"",
		"namespace My.App",
		"{",
		"    class Demo {",
		"        List<int> xs;",
		"    }",
		"}",
	}, "\n")
	if got := renderFile(t, Config{Namespace: "My.App"}, &tok); got != want {
		t.Fatalf("namespace mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestNameCollisionQualifies(t *testing.T) {
	first := Imported("Foo.Bar", "B")
	second := Imported("Foo.Baz", "B")

	var tok tokens.Tokens
	tok.Lang(first)
	tok.Space()
	tok.Lang(second)

	want := "using Foo.Bar;\n\nB Foo.Baz.B"
	if got := renderFile(t, Config{}, &tok); got != want {
		t.Fatalf("collision mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestUsingOnlyForWinningNamespaces(t *testing.T) {
	var tok tokens.Tokens
	// Foo.Baz loses B but wins C, so its using line stays.
	tok.Lang(Imported("Foo.Bar", "B"))
	tok.Space()
	tok.Lang(Imported("Foo.Baz", "B"))
	tok.Space()
	tok.Lang(Imported("Foo.Baz", "C"))

	want := "using Foo.Bar;\nusing Foo.Baz;\n\nB Foo.Baz.B C"
	if got := renderFile(t, Config{}, &tok); got != want {
		t.Fatalf("using set mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestGenericTypeWalksArguments(t *testing.T) {
	m := Generic(
		Imported("System.Collections.Generic", "Dictionary"),
		Imported("System", "String"),
		Imported("My.App", "Widget"),
	)

	var tok tokens.Tokens
	tok.Lang(m)
	tok.Literal(" index;")

	want := strings.Join([]string{
		"using System;",
		"using System.Collections.Generic;",
		"",
		"namespace My.App",
		"{",
		"    Dictionary<String, Widget> index;",
		"}",
	}, "\n")
	if got := renderFile(t, Config{Namespace: "My.App"}, &tok); got != want {
		t.Fatalf("generic mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestInterpolatedLiteral(t *testing.T) {
	var tok tokens.Tokens
	tok.OpenQuote(true)
	tok.Literal("Hello {")
	tok.OpenEval()
	tok.Literal("name")
	tok.CloseEval()
	tok.Literal("}")
	tok.CloseQuote()

	var sb strings.Builder
	f := format.New(format.NewIOWriter(&sb), Config{}.DefaultConfig())
	if err := tok.FormatInto(f, Config{}, nil); err != nil {
		t.Fatalf("format: %v", err)
	}
	want := `$"Hello {{{name}}}"`
	if got := sb.String(); got != want {
		t.Fatalf("interpolation mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	samples := []string{
		"plain",
		"tab\tnewline\nreturn\rquote\"backslash\\",
		"braces{}and more",
		"unicode: é astral: \U0001f600",
	}
	for n, sample := range samples {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			var sb strings.Builder
			f := format.New(format.NewIOWriter(&sb), Config{}.DefaultConfig())
			if err := quote(f, sample, false); err != nil {
				t.Fatalf("quote: %v", err)
			}
			back, err := decodeCSharp(sb.String())
			if err != nil {
				t.Fatalf("decode %q: %v", sb.String(), err)
			}
			if back != sample {
				t.Fatalf("round trip mismatch:\nwant %q\ngot  %q", sample, back)
			}
		})
	}
}

// decodeCSharp decodes the escape forms the quoting routine produces.
func decodeCSharp(s string) (string, error) {
	var units []uint16
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r != '\\' {
			units = append(units, utf16.Encode([]rune{r})...)
			i += size
			continue
		}
		i++
		switch s[i] {
		case '\\':
			units = append(units, '\\')
		case '"':
			units = append(units, '"')
		case 't':
			units = append(units, '\t')
		case 'n':
			units = append(units, '\n')
		case 'r':
			units = append(units, '\r')
		case 'u':
			v, err := strconv.ParseUint(s[i+1:i+5], 16, 16)
			if err != nil {
				return "", err
			}
			units = append(units, uint16(v))
			i += 4
		}
		i++
	}
	return string(utf16.Decode(units)), nil
}
