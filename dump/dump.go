package dump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/udoprog/genco-sub000/tokens"
)

var (
	literalColor    = color.New(color.FgGreen)
	langColor       = color.New(color.FgCyan)
	whitespaceColor = color.New(color.FgYellow)
	quoteColor      = color.New(color.FgMagenta)
)

// kindColumn is the padded width of the kind label column.
const kindColumn = 12

// Tokens writes t to w, one item per line: the item kind, padded into a
// column, then the payload.
func Tokens(w io.Writer, t *tokens.Tokens) error {
	for _, it := range t.Items() {
		label := runewidth.FillRight(it.Kind.String(), kindColumn)
		if _, err := fmt.Fprintf(w, "%s %s\n", tint(it.Kind, label), payload(it)); err != nil {
			return err
		}
	}
	return nil
}

func tint(k tokens.ItemKind, label string) string {
	switch k {
	case tokens.ItemLiteral:
		return literalColor.Sprint(label)
	case tokens.ItemLang, tokens.ItemRegister:
		return langColor.Sprint(label)
	case tokens.ItemOpenQuote, tokens.ItemCloseQuote, tokens.ItemOpenEval, tokens.ItemCloseEval:
		return quoteColor.Sprint(label)
	default:
		return whitespaceColor.Sprint(label)
	}
}

func payload(it tokens.Item) string {
	switch it.Kind {
	case tokens.ItemLiteral:
		return strconv.Quote(it.Text)
	case tokens.ItemLang, tokens.ItemRegister:
		if s, ok := it.Lang.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("%T", it.Lang)
	case tokens.ItemIndent:
		return fmt.Sprintf("%+d", it.Delta)
	case tokens.ItemOpenQuote:
		if it.HasEval {
			return "has-eval"
		}
		return ""
	default:
		return ""
	}
}
