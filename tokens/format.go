package tokens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/udoprog/genco-sub000/format"
)

// ErrIllegalState reports an item sequence the state machine cannot accept,
// such as eval markers outside a quoted region or an unmatched close. It
// signals a producer bug: streams built exclusively through the Tokens
// primitives never trigger it.
var ErrIllegalState = errors.New("illegal token sequence")

// frame is one level of the quote/eval state machine. The stack has one
// bottom frame for ordinary tokens; a quote pushes a frame with inQuote set,
// an eval region pushes a frame that terminates on the matching close-eval.
type frame struct {
	inQuote   bool
	hasEval   bool
	endOnEval bool
}

// FormatInto renders the stream through lang's hooks, writing to f. state
// is the language's per-render state and is handed through to every lang
// item; it may be nil when rendering outside file assembly.
func (t *Tokens) FormatInto(f *format.Formatter, lang Lang, state any) error {
	return formatItems(t.items, f, lang, state)
}

func formatItems(items []Item, f *format.Formatter, lang Lang, state any) error {
	stack := []frame{{}}

	for i := 0; i < len(items); i++ {
		it := &items[i]
		top := &stack[len(stack)-1]

		switch it.Kind {
		case ItemLiteral:
			if top.inQuote {
				if err := lang.WriteQuoted(f, it.Text, top.hasEval); err != nil {
					return err
				}
			} else if err := f.WriteString(it.Text); err != nil {
				return err
			}

		case ItemLang:
			if err := it.Lang.FormatInto(f, lang, state); err != nil {
				return err
			}

		case ItemRegister:
			// Import side effects only; nothing rendered.

		case ItemPush:
			f.Push()

		case ItemLine:
			f.Line()

		case ItemSpace:
			f.Space()

		case ItemIndent:
			f.Indentation(it.Delta)

		case ItemOpenQuote:
			if !top.inQuote {
				if err := lang.OpenQuote(f, it.HasEval); err != nil {
					return err
				}
				stack = append(stack, frame{inQuote: true, hasEval: it.HasEval})
				continue
			}
			// A literal quote nested directly inside another quote: render
			// the inner region on its own, then feed the result through the
			// outer quoting routine as plain literal text.
			j, err := matchingCloseQuote(items, i)
			if err != nil {
				return err
			}
			inner, err := renderScratch(items[i:j+1], f.Config(), lang, state)
			if err != nil {
				return err
			}
			if err := lang.WriteQuoted(f, inner, top.hasEval); err != nil {
				return err
			}
			i = j

		case ItemCloseQuote:
			if !top.inQuote {
				return fmt.Errorf("tokens: close-quote outside a quoted region: %w", ErrIllegalState)
			}
			if err := lang.CloseQuote(f, top.hasEval); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]

		case ItemOpenEval:
			if !top.inQuote {
				return fmt.Errorf("tokens: open-eval outside a quoted region: %w", ErrIllegalState)
			}
			if i+2 < len(items) && items[i+1].Kind == ItemLiteral && items[i+2].Kind == ItemCloseEval {
				if fe, ok := lang.(FastEval); ok {
					var following string
					if i+3 < len(items) && items[i+3].Kind == ItemLiteral {
						following = items[i+3].Text
					}
					handled, err := fe.EvalLiteral(f, items[i+1].Text, following)
					if err != nil {
						return err
					}
					if handled {
						i += 2
						continue
					}
				}
			}
			if err := lang.OpenEval(f); err != nil {
				return err
			}
			stack = append(stack, frame{endOnEval: true})

		case ItemCloseEval:
			if !top.endOnEval {
				return fmt.Errorf("tokens: close-eval without matching open-eval: %w", ErrIllegalState)
			}
			if err := lang.CloseEval(f); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]

		default:
			return fmt.Errorf("tokens: unknown item kind %v: %w", it.Kind, ErrIllegalState)
		}
	}

	if len(stack) != 1 {
		return fmt.Errorf("tokens: unterminated quote or eval region: %w", ErrIllegalState)
	}
	return nil
}

// matchingCloseQuote finds the close-quote balancing the open-quote at
// items[open].
func matchingCloseQuote(items []Item, open int) (int, error) {
	depth := 0
	for j := open + 1; j < len(items); j++ {
		switch items[j].Kind {
		case ItemOpenQuote:
			depth++
		case ItemCloseQuote:
			if depth == 0 {
				return j, nil
			}
			depth--
		}
	}
	return 0, fmt.Errorf("tokens: unterminated nested quote: %w", ErrIllegalState)
}

// renderScratch formats a sub-slice into a scratch buffer with a fresh
// formatter, re-entering the same state machine.
func renderScratch(items []Item, cfg format.Config, lang Lang, state any) (string, error) {
	var sb strings.Builder
	f := format.New(format.NewIOWriter(&sb), cfg)
	if err := formatItems(items, f, lang, state); err != nil {
		return "", err
	}
	return sb.String(), nil
}
