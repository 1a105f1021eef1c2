package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/udoprog/genco-sub000/format"
	"github.com/udoprog/genco-sub000/tokens"
)

// String renders the stream body with the language's default configuration.
// No import preamble is computed.
func String(lang tokens.Lang, t *tokens.Tokens) (string, error) {
	var sb strings.Builder
	f := format.New(format.NewIOWriter(&sb), lang.DefaultConfig())
	if err := t.FormatInto(f, lang, nil); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FileString renders the stream as a complete file: import preamble, body,
// and a trailing newline.
func FileString(lang tokens.Lang, t *tokens.Tokens) (string, error) {
	var sb strings.Builder
	if err := File(&sb, lang, t, lang.DefaultConfig()); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// To renders the stream body to w under cfg.
func To(w io.Writer, lang tokens.Lang, t *tokens.Tokens, cfg format.Config) error {
	f := format.New(format.NewIOWriter(w), cfg)
	return t.FormatInto(f, lang, nil)
}

// File renders the stream as a complete file to w under cfg.
func File(w io.Writer, lang tokens.Lang, t *tokens.Tokens, cfg format.Config) error {
	f := format.New(format.NewIOWriter(w), cfg)
	if err := lang.FormatFile(f, t); err != nil {
		return err
	}
	return f.TrailingNewline()
}

// Job is one file in a batch render.
type Job struct {
	// Path is the output path, relative to the batch's output directory.
	Path string
	Lang tokens.Lang
	// Tokens is the file body. The stream is only read, so one stream may
	// appear in several jobs.
	Tokens *tokens.Tokens
	// Config overrides the language default when non-zero.
	Config format.Config
}

func (j Job) config() format.Config {
	if j.Config == (format.Config{}) {
		return j.Lang.DefaultConfig()
	}
	return j.Config
}

// All renders every job concurrently and hands the results to out in job
// order. workers bounds parallelism; zero means GOMAXPROCS. The first
// failure cancels the remaining jobs.
func All(ctx context.Context, out *Output, jobs []Job, workers int) error {
	if out == nil {
		return errors.New("render: nil output")
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rendered := make([][]byte, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			job := jobs[i]
			var sb strings.Builder
			if err := File(&sb, job.Lang, job.Tokens, job.config()); err != nil {
				return fmt.Errorf("render %s: %w", job.Path, err)
			}
			rendered[i] = []byte(sb.String())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, job := range jobs {
		if _, err := out.Write(job.Path, rendered[i]); err != nil {
			return err
		}
	}
	return nil
}
