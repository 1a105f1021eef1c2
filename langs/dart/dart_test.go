package dart

import (
	"strings"
	"testing"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

func renderFile(t *testing.T, tok *tokens.Tokens) string {
	t.Helper()
	var sb strings.Builder
	f := format.New(format.NewIOWriter(&sb), Config{}.DefaultConfig())
	if err := (Config{}).FormatFile(f, tok); err != nil {
		t.Fatalf("format file failed: %v", err)
	}
	return sb.String()
}

func render(t *testing.T, tok *tokens.Tokens) string {
	t.Helper()
	var sb strings.Builder
	f := format.New(format.NewIOWriter(&sb), Config{}.DefaultConfig())
	if err := tok.FormatInto(f, Config{}, nil); err != nil {
		t.Fatalf("format: %v", err)
	}
	return sb.String()
}

func TestFileWithImports(t *testing.T) {
	var tok tokens.Tokens
	tok.Literal("void main() {")
	tok.Indent()
	tok.Literal("print(")
	tok.Lang(Imported("dart:math", "sqrt"))
	tok.Literal("(4));")
	tok.Unindent()
	tok.Literal("}")

	want := strings.Join([]string{
		`import "dart:math";`,
		"",
		"void main() {",
		"  print(sqrt(4));",
		"}",
	}, "\n")
	if got := renderFile(t, &tok); got != want {
		t.Fatalf("file mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestCollisionGetsPrefix(t *testing.T) {
	var tok tokens.Tokens
	tok.Lang(Imported("package:a/a.dart", "render"))
	tok.Space()
	tok.Lang(Imported("package:b/b.dart", "render"))

	want := strings.Join([]string{
		`import "package:a/a.dart";`,
		`import "package:b/b.dart" as _i1;`,
		"",
		"render _i1.render",
	}, "\n")
	if got := renderFile(t, &tok); got != want {
		t.Fatalf("prefix mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestForcedPrefix(t *testing.T) {
	var tok tokens.Tokens
	tok.Lang(Imported("dart:math", "sqrt").WithAlias("math"))

	want := "import \"dart:math\" as math;\n\nmath.sqrt"
	if got := renderFile(t, &tok); got != want {
		t.Fatalf("forced prefix mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestEvalShorthand(t *testing.T) {
	var tok tokens.Tokens
	tok.OpenQuote(true)
	tok.Literal("Hello ")
	tok.OpenEval()
	tok.Literal("name")
	tok.CloseEval()
	tok.CloseQuote()

	want := `"Hello $name"`
	if got := render(t, &tok); got != want {
		t.Fatalf("shorthand mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestEvalExpressionUsesBraces(t *testing.T) {
	var tok tokens.Tokens
	tok.OpenQuote(true)
	tok.Literal("sum ")
	tok.OpenEval()
	tok.Literal("a")
	tok.Space()
	tok.Literal("+")
	tok.Space()
	tok.Literal("b")
	tok.CloseEval()
	tok.CloseQuote()

	want := `"sum ${a + b}"`
	if got := render(t, &tok); got != want {
		t.Fatalf("braces mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestShorthandDeclinedBeforeIdentChar(t *testing.T) {
	var tok tokens.Tokens
	tok.OpenQuote(true)
	tok.OpenEval()
	tok.Literal("name")
	tok.CloseEval()
	tok.Literal("s")
	tok.CloseQuote()

	// `$names` would interpolate the wrong variable; the braces keep the
	// spliced expression and the following text apart.
	want := `"${name}s"`
	if got := render(t, &tok); got != want {
		t.Fatalf("adjacent literal mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestShorthandKeptBeforeNonIdentChar(t *testing.T) {
	var tok tokens.Tokens
	tok.OpenQuote(true)
	tok.Literal("hi ")
	tok.OpenEval()
	tok.Literal("name")
	tok.CloseEval()
	tok.Literal("!")
	tok.CloseQuote()

	want := `"hi $name!"`
	if got := render(t, &tok); got != want {
		t.Fatalf("non-ident boundary mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestEvalNonIdentifierFallsBack(t *testing.T) {
	var tok tokens.Tokens
	tok.OpenQuote(true)
	tok.OpenEval()
	tok.Literal("a.b")
	tok.CloseEval()
	tok.CloseQuote()

	want := `"${a.b}"`
	if got := render(t, &tok); got != want {
		t.Fatalf("fallback mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestDollarAlwaysEscaped(t *testing.T) {
	var tok tokens.Tokens
	tok.OpenQuote(true)
	tok.Literal("price: $9")
	tok.CloseQuote()

	want := `"price: \$9"`
	if got := render(t, &tok); got != want {
		t.Fatalf("dollar escape mismatch:\nwant %q\ngot  %q", want, got)
	}
}
