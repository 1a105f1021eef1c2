package dump

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/udoprog/genco-sub000/langs/rust"
	"github.com/udoprog/genco-sub000/tokens"
)

func TestTokens(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var tok tokens.Tokens
	tok.Literal("fn main()")
	tok.Space()
	tok.Indentation(2)
	tok.OpenQuote(true)
	tok.CloseQuote()
	tok.Register(rust.Imported("std::fmt", "Debug"))

	var sb strings.Builder
	if err := Tokens(&sb, &tok); err != nil {
		t.Fatalf("dump: %v", err)
	}

	want := strings.Join([]string{
		`literal      "fn main()"`,
		"space        ",
		"indent       +2",
		"open-quote   has-eval",
		"close-quote  ",
		"register     rust.Import",
	}, "\n") + "\n"
	if got := sb.String(); got != want {
		t.Fatalf("dump mismatch:\nwant %q\ngot  %q", want, got)
	}
}
