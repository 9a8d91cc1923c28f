// Package docpipe turns one multi-page document into one ordered text
// artifact by transcribing every page concurrently through the generation
// service and reassembling the results in page order.
package docpipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/contracts-analyzer/internal/llm"
	"github.com/joseph-ayodele/contracts-analyzer/internal/schema"
)

const transcribePrompt = "Transcribe the content of this page, formatted as markdown. " +
	"Output only the transcription, with no commentary or explanation."

// Config bounds the fan-out. The page calls race freely up to PageConcurrency
// in flight; PageTimeout caps a single page call so one hung call cannot
// stall the document forever.
type Config struct {
	PageConcurrency int
	PageTimeout     time.Duration
}

type Digitizer struct {
	gen llm.Generator
	cfg Config
	log *slog.Logger
}

func NewDigitizer(gen llm.Generator, cfg Config, logger *slog.Logger) *Digitizer {
	if cfg.PageConcurrency <= 0 {
		cfg.PageConcurrency = 8
	}
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = 2 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Digitizer{gen: gen, cfg: cfg, log: logger}
}

// Digitize converts a whole PDF into one ordered text artifact.
func (d *Digitizer) Digitize(ctx context.Context, pdf []byte) (string, error) {
	pages, err := SplitPDF(pdf)
	if err != nil {
		return "", err
	}
	return d.Transcribe(ctx, pages)
}

// Transcribe submits every page concurrently and joins the results in page
// index order. Each goroutine writes only its own slot, keyed by the
// immutable index assigned at split time, so the completion order the calls
// race over never leaks into the output. Any single page failure
// fails the whole document; there is no partial-document success.
func (d *Digitizer) Transcribe(ctx context.Context, pages []Page) (string, error) {
	if err := checkContiguous(pages); err != nil {
		return "", err
	}

	rid := uuid.New().String()
	start := time.Now()
	d.log.Info("digitize.start", "req_id", rid, "pages", len(pages))

	results := make([]string, len(pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.PageConcurrency)
	for _, page := range pages {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(gctx, d.cfg.PageTimeout)
			defer cancel()

			out, err := d.gen.Generate(pctx, pageMessages(page))
			if err != nil {
				return fmt.Errorf("page %d: %w", page.Index, err)
			}
			results[page.Index] = schema.Dewrap(out)
			d.log.Info("digitize.page_done", "req_id", rid, "page", page.Index)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		d.log.Error("digitize.failed", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}

	d.log.Info("digitize.ok", "req_id", rid, "pages", len(pages),
		"elapsed_ms", time.Since(start).Milliseconds())
	return strings.Join(results, "\n"), nil
}

func pageMessages(p Page) []llm.Message {
	if p.ImageURL != "" {
		return []llm.Message{llm.Image(transcribePrompt, p.ImageURL)}
	}
	return []llm.Message{llm.Text(llm.RoleUser, transcribePrompt+"\n\nPage text:\n"+p.Text)}
}

// checkContiguous enforces the page-unit invariant: indices unique and
// contiguous over [0, len).
func checkContiguous(pages []Page) error {
	seen := make([]bool, len(pages))
	for _, p := range pages {
		if p.Index < 0 || p.Index >= len(pages) || seen[p.Index] {
			return fmt.Errorf("page indices not contiguous: index %d over %d pages", p.Index, len(pages))
		}
		seen[p.Index] = true
	}
	return nil
}
