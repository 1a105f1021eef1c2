package format

import "io"

// Writer is the output sink for a formatting pass. Structural line breaks go
// through WriteNewline so that sinks which buffer per line can tell them
// apart from literal text that happens to contain '\n'.
type Writer interface {
	WriteString(s string) error
	WriteNewline() error
}

// IOWriter adapts an io.Writer into a formatting sink.
type IOWriter struct {
	w io.Writer

	// Newline is the line terminator; "\n" when empty.
	Newline string
}

// NewIOWriter wraps w as a formatting sink.
func NewIOWriter(w io.Writer) *IOWriter {
	return &IOWriter{w: w}
}

func (w *IOWriter) WriteString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

func (w *IOWriter) WriteNewline() error {
	nl := w.Newline
	if nl == "" {
		nl = "\n"
	}
	_, err := io.WriteString(w.w, nl)
	return err
}

// LineWriter collects output as a slice of lines, one entry per structural
// line break.
type LineWriter struct {
	lines []string
	cur   []byte
}

// NewLineWriter creates an empty line-collecting sink.
func NewLineWriter() *LineWriter {
	return &LineWriter{}
}

func (w *LineWriter) WriteString(s string) error {
	w.cur = append(w.cur, s...)
	return nil
}

func (w *LineWriter) WriteNewline() error {
	w.lines = append(w.lines, string(w.cur))
	w.cur = w.cur[:0]
	return nil
}

// Lines returns everything written so far, including the unterminated final
// line when non-empty.
func (w *LineWriter) Lines() []string {
	out := make([]string, 0, len(w.lines)+1)
	out = append(out, w.lines...)
	if len(w.cur) > 0 {
		out = append(out, string(w.cur))
	}
	return out
}
