package format

import (
	"errors"
	"strings"
	"testing"
)

func render(t *testing.T, cfg Config, drive func(f *Formatter) error) string {
	t.Helper()

	var sb strings.Builder
	f := New(NewIOWriter(&sb), cfg)
	if err := drive(f); err != nil {
		t.Fatalf("formatting failed: %v", err)
	}
	return sb.String()
}

func TestSpaceCollapsing(t *testing.T) {
	got := render(t, Config{}, func(f *Formatter) error {
		if err := f.WriteString("a"); err != nil {
			return err
		}
		for range 5 {
			f.Space()
		}
		return f.WriteString("b")
	})
	if got != "a b" {
		t.Fatalf("space collapsing mismatch:\nwant %q\ngot  %q", "a b", got)
	}
}

func TestBlankLineCapping(t *testing.T) {
	got := render(t, Config{}, func(f *Formatter) error {
		if err := f.WriteString("a"); err != nil {
			return err
		}
		for range 4 {
			f.Line()
			f.Push()
		}
		return f.WriteString("b")
	})
	if got != "a\n\nb" {
		t.Fatalf("blank line capping mismatch:\nwant %q\ngot  %q", "a\n\nb", got)
	}
}

func TestPushOnEmptyLineIsNoop(t *testing.T) {
	got := render(t, Config{}, func(f *Formatter) error {
		f.Push()
		f.Push()
		return f.WriteString("a")
	})
	if got != "a" {
		t.Fatalf("leading pushes should not emit newlines, got %q", got)
	}
}

func TestSpaceBeforePushIsDropped(t *testing.T) {
	got := render(t, Config{}, func(f *Formatter) error {
		if err := f.WriteString("a"); err != nil {
			return err
		}
		f.Space()
		f.Push()
		return f.WriteString("b")
	})
	if got != "a\nb" {
		t.Fatalf("space before push mismatch:\nwant %q\ngot  %q", "a\nb", got)
	}
}

func TestIndentationRoundTrip(t *testing.T) {
	got := render(t, Config{IndentWidth: 2}, func(f *Formatter) error {
		if err := f.WriteString("a"); err != nil {
			return err
		}
		f.Indent()
		if err := f.WriteString("b"); err != nil {
			return err
		}
		f.Indent()
		if err := f.WriteString("c"); err != nil {
			return err
		}
		f.Unindent()
		if err := f.WriteString("d"); err != nil {
			return err
		}
		f.Unindent()
		return f.WriteString("e")
	})
	want := "a\n  b\n    c\n  d\ne"
	if got != want {
		t.Fatalf("indentation mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestNegativeIndentationClampsButTracks(t *testing.T) {
	got := render(t, Config{IndentWidth: 2}, func(f *Formatter) error {
		if err := f.WriteString("a"); err != nil {
			return err
		}
		f.Unindent()
		if err := f.WriteString("b"); err != nil {
			return err
		}
		f.Indent()
		if err := f.WriteString("c"); err != nil {
			return err
		}
		f.Indent()
		return f.WriteString("d")
	})
	// The deficit is tracked numerically: b and c both land at column zero,
	// and only the second indent moves d to one unit.
	want := "a\nb\nc\n  d"
	if got != want {
		t.Fatalf("negative indentation mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestTabs(t *testing.T) {
	got := render(t, Config{UseTabs: true}, func(f *Formatter) error {
		if err := f.WriteString("a"); err != nil {
			return err
		}
		f.Indent()
		return f.WriteString("b")
	})
	if got != "a\n\tb" {
		t.Fatalf("tab indentation mismatch:\nwant %q\ngot  %q", "a\n\tb", got)
	}
}

func TestTrailingNewline(t *testing.T) {
	var sb strings.Builder
	f := New(NewIOWriter(&sb), Config{})
	if err := f.TrailingNewline(); err != nil {
		t.Fatalf("trailing newline on empty output: %v", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("empty output must stay empty, got %q", sb.String())
	}
	if err := f.WriteString("a"); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Line()
	if err := f.TrailingNewline(); err != nil {
		t.Fatalf("trailing newline: %v", err)
	}
	if got := sb.String(); got != "a\n" {
		t.Fatalf("trailing newline mismatch:\nwant %q\ngot  %q", "a\n", got)
	}
}

func TestLineWriterSplitsStructuralBreaks(t *testing.T) {
	w := NewLineWriter()
	f := New(w, Config{IndentWidth: 2})
	if err := f.WriteString("a"); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Indent()
	if err := f.WriteString("b\nc"); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := w.Lines()
	want := []string{"a", "  b\nc"}
	if len(got) != len(want) {
		t.Fatalf("line count mismatch: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d mismatch:\nwant %q\ngot  %q", i, want[i], got[i])
		}
	}
}

type failingWriter struct{}

func (failingWriter) WriteString(string) error { return errors.New("sink closed") }
func (failingWriter) WriteNewline() error      { return errors.New("sink closed") }

func TestSinkErrorPropagates(t *testing.T) {
	f := New(failingWriter{}, Config{})
	if err := f.WriteString("a"); err == nil {
		t.Fatalf("expected sink error")
	}
}
