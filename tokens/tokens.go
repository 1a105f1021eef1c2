package tokens

// Tokens is an ordered sequence of items with insertion-time normalization:
// adjacent spaces collapse, redundant pushes and lines collapse, and
// consecutive indentation deltas coalesce by summation. The zero value is an
// empty stream ready for use.
type Tokens struct {
	items []Item
}

// IsEmpty reports whether no items were recorded.
func (t *Tokens) IsEmpty() bool {
	return len(t.items) == 0
}

// Len returns the number of recorded items after normalization.
func (t *Tokens) Len() int {
	return len(t.items)
}

// Items returns the recorded items in order. The slice is shared; callers
// must not modify it.
func (t *Tokens) Items() []Item {
	return t.items
}

func (t *Tokens) last() *Item {
	if len(t.items) == 0 {
		return nil
	}
	return &t.items[len(t.items)-1]
}

// Append records one item, applying the normalization rules.
func (t *Tokens) Append(it Item) {
	last := t.last()
	switch it.Kind {
	case ItemSpace:
		if last != nil && last.Kind == ItemSpace {
			return
		}
	case ItemPush:
		if last != nil && (last.Kind == ItemPush || last.Kind == ItemLine) {
			return
		}
	case ItemLine:
		if last != nil {
			switch last.Kind {
			case ItemLine:
				return
			case ItemPush:
				last.Kind = ItemLine
				return
			}
		}
	case ItemIndent:
		if it.Delta == 0 {
			return
		}
		if last != nil {
			switch last.Kind {
			case ItemIndent:
				last.Delta += it.Delta
				if last.Delta == 0 {
					// The deltas cancelled; what remains is the implied
					// push, re-normalized against the item before it.
					t.items = t.items[:len(t.items)-1]
					t.Append(Item{Kind: ItemPush})
				}
				return
			case ItemPush:
				// Indentation implies a push.
				*last = it
				return
			}
		}
	}
	t.items = append(t.items, it)
}

// Extend appends every item of o, preserving normalization across the
// boundary. Lang payloads are shared, not copied.
func (t *Tokens) Extend(o *Tokens) {
	for _, it := range o.items {
		t.Append(it)
	}
}

// Literal appends raw text.
func (t *Tokens) Literal(text string) {
	t.Append(Item{Kind: ItemLiteral, Text: text})
}

// Lang appends a language-specific payload for rendering.
func (t *Tokens) Lang(item LangItem) {
	t.Append(Item{Kind: ItemLang, Lang: item})
}

// Register appends a payload that is never rendered but still participates
// in the import walk.
func (t *Tokens) Register(item LangItem) {
	t.Append(Item{Kind: ItemRegister, Lang: item})
}

// Push requests a line break before the next token.
func (t *Tokens) Push() {
	t.Append(Item{Kind: ItemPush})
}

// Line requests one blank line of separation before the next token.
func (t *Tokens) Line() {
	t.Append(Item{Kind: ItemLine})
}

// Space requests a single collapsed space before the next token.
func (t *Tokens) Space() {
	t.Append(Item{Kind: ItemSpace})
}

// Indentation adjusts the indentation level by delta. A zero delta records
// nothing.
func (t *Tokens) Indentation(delta int) {
	t.Append(Item{Kind: ItemIndent, Delta: delta})
}

// Indent is shorthand for Indentation(1).
func (t *Tokens) Indent() {
	t.Indentation(1)
}

// Unindent is shorthand for Indentation(-1).
func (t *Tokens) Unindent() {
	t.Indentation(-1)
}

// OpenQuote opens a quoted region. hasEval marks it as possibly containing
// interpolation.
func (t *Tokens) OpenQuote(hasEval bool) {
	t.Append(Item{Kind: ItemOpenQuote, HasEval: hasEval})
}

// CloseQuote closes the innermost quoted region.
func (t *Tokens) CloseQuote() {
	t.Append(Item{Kind: ItemCloseQuote})
}

// OpenEval opens an interpolated sub-region. Only meaningful inside a
// quoted region.
func (t *Tokens) OpenEval() {
	t.Append(Item{Kind: ItemOpenEval})
}

// CloseEval closes the innermost interpolated sub-region.
func (t *Tokens) CloseEval() {
	t.Append(Item{Kind: ItemCloseEval})
}

// Quoted appends a complete quoted region holding a single literal.
func (t *Tokens) Quoted(text string) {
	t.OpenQuote(false)
	t.Literal(text)
	t.CloseQuote()
}

// WalkImports visits every Lang and Register payload in traversal order,
// descending depth-first into composite payloads. The walk restarts from
// scratch on every call and stops early once yield returns false.
func (t *Tokens) WalkImports(yield func(LangItem) bool) bool {
	for i := range t.items {
		it := &t.items[i]
		if it.Kind != ItemLang && it.Kind != ItemRegister {
			continue
		}
		if w, ok := it.Lang.(ImportWalker); ok {
			if !w.WalkImports(yield) {
				return false
			}
			continue
		}
		if !yield(it.Lang) {
			return false
		}
	}
	return true
}
