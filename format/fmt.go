package format

import "strings"

// Formatter tracks pending whitespace for one rendering pass and realizes it
// lazily, immediately before the next non-whitespace write. Pending blank
// lines are capped at one (two newline characters); the indentation level is
// signed and may go negative, in which case output clamps to column zero
// while the numeric deficit is preserved.
type Formatter struct {
	out Writer
	cfg Config

	indent  int
	lines   int // 0..2; Line caps pending separation at one blank line
	spaces  int
	written bool
}

// New creates a Formatter writing to out.
func New(out Writer, cfg Config) *Formatter {
	return &Formatter{
		out: out,
		cfg: cfg.withDefaults(),
	}
}

// Config returns the indentation configuration of this pass.
func (f *Formatter) Config() Config {
	return f.cfg
}

// WriteString emits literal text, flushing pending whitespace first.
func (f *Formatter) WriteString(s string) error {
	if s == "" {
		return nil
	}
	if err := f.flush(); err != nil {
		return err
	}
	f.written = true
	return f.out.WriteString(s)
}

// Push requests a line break before the next write, unless the current line
// is still empty. Pending spaces are discarded: they were requested for a
// line that is now over.
func (f *Formatter) Push() {
	f.spaces = 0
	if !f.written {
		return
	}
	if f.lines < 1 {
		f.lines = 1
	}
}

// Line requests one blank line of separation before the next write. Leading
// separation at the very start of the output is trimmed.
func (f *Formatter) Line() {
	f.spaces = 0
	if !f.written {
		return
	}
	f.lines = 2
}

// Space requests a single space before the next write. Repeated requests
// collapse.
func (f *Formatter) Space() {
	f.spaces = 1
}

// Indentation adjusts the indentation level by delta and implies a Push.
func (f *Formatter) Indentation(delta int) {
	f.Push()
	f.indent += delta
}

// Indent is shorthand for Indentation(1).
func (f *Formatter) Indent() {
	f.Indentation(1)
}

// Unindent is shorthand for Indentation(-1).
func (f *Formatter) Unindent() {
	f.Indentation(-1)
}

// TrailingNewline terminates the output with a single line break when
// anything was written. Pending separation is dropped: a file ends with
// exactly one newline.
func (f *Formatter) TrailingNewline() error {
	f.lines = 0
	f.spaces = 0
	if !f.written {
		return nil
	}
	return f.out.WriteNewline()
}

func (f *Formatter) flush() error {
	atLineStart := !f.written
	if f.written {
		for range f.lines {
			if err := f.out.WriteNewline(); err != nil {
				return err
			}
		}
		if f.lines > 0 {
			atLineStart = true
		}
	}
	if atLineStart && f.indent > 0 {
		if err := f.out.WriteString(strings.Repeat(f.cfg.unit(), f.indent)); err != nil {
			return err
		}
	}
	if f.spaces > 0 {
		if err := f.out.WriteString(strings.Repeat(" ", f.spaces)); err != nil {
			return err
		}
	}
	f.lines = 0
	f.spaces = 0
	return nil
}
