// Package batch orchestrates the per-URL pipeline over a list of candidate
// URLs: validate, fetch, extract, sanitize, name, write. Items are
// independent; a failure on one page yields an empty-text output file and
// the batch continues.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/urltext"
	"golang.org/x/sync/errgroup"
)

// Runner drives a batch run. Fetcher, Extractor, and Writer are required;
// Fallback and Limiter are optional.
type Runner struct {
	Fetcher   urltext.Fetcher
	Extractor urltext.Extractor

	// Fallback, if set, is tried when Extractor fails on a page, so the
	// page still yields best-effort text.
	Fallback urltext.Extractor

	Writer  urltext.RecordWriter
	Limiter urltext.HostLimiter
	Logger  *slog.Logger

	// Concurrency bounds how many items are processed at once. Values
	// below 1 mean sequential processing in input order, which matches
	// the default CLI behavior.
	Concurrency int
}

// Result holds the outcome of a batch run. Saved + Failed items each left
// one output file behind; Skipped lines were not valid URLs and left none.
type Result struct {
	Saved   int
	Failed  int
	Skipped int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress. With
// Concurrency above 1 it is called from multiple goroutines and must be
// safe for concurrent use.
type ProgressFunc func(event ProgressEvent)

// ReadItems scans input line by line and returns the items to process.
// Every line consumes an ordinal index whether or not it is kept, and
// invalid lines are dropped only after indexing, so output names always
// reflect original line positions. Skipped reports how many lines were
// dropped.
func ReadItems(r io.Reader) (items []urltext.Item, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	index := 0
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		i := index
		index++
		if !urltext.IsURL(raw) {
			skipped++
			continue
		}
		items = append(items, urltext.Item{Index: i, URL: raw})
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("reading input: %w", err)
	}
	return items, skipped, nil
}

// Run reads candidate URLs from input and processes each valid item.
// Fetch and extraction failures are per-item: they are logged, produce an
// empty-text file, and never abort the run. Only input read errors, write
// errors, and context cancellation are returned.
func (r *Runner) Run(ctx context.Context, input io.Reader, progress ProgressFunc) (*Result, error) {
	items, skipped, err := ReadItems(input)
	if err != nil {
		return nil, err
	}

	total := len(items)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var saved, failed, completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, item := range items {
		g.Go(func() error {
			res := r.processItem(gctx, item)

			rec := &urltext.Record{Filename: res.Filename, Text: res.Text}
			if err := r.Writer.Write(gctx, rec); err != nil {
				return fmt.Errorf("writing %s: %w", res.Filename, err)
			}

			if res.Failed() {
				failed.Add(1)
			} else {
				saved.Add(1)
			}

			if progress != nil {
				typ := ProgressCompleted
				if res.Failed() {
					typ = ProgressFailed
				}
				progress(ProgressEvent{
					Type:      typ,
					Completed: int(completed.Add(1)),
					Total:     total,
					URL:       item.URL,
					Error:     res.Err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &Result{
		Saved:   int(saved.Load()),
		Failed:  int(failed.Load()),
		Skipped: skipped,
	}, nil
}

// processItem runs the pipeline for one item. It never returns a
// batch-fatal error: any fetch or extraction failure is recorded on the
// result and the text stays empty.
func (r *Runner) processItem(ctx context.Context, item urltext.Item) urltext.ItemResult {
	res := urltext.ItemResult{
		Item:     item,
		Filename: urltext.OutputName(item.Index, item.URL),
	}

	if r.Limiter != nil {
		if host := urlHost(item.URL); host != "" {
			if err := r.Limiter.Wait(ctx, host); err != nil {
				res.Err = err
				return res
			}
		}
	}

	html, err := r.Fetcher.Fetch(ctx, item.URL)
	if err != nil {
		res.Err = err
		r.logger().Warn("fetch failed", "url", item.URL, "err", err)
		return res
	}

	extracted, err := r.Extractor.Extract(html)
	if err != nil && r.Fallback != nil {
		r.logger().Debug("extraction failed, using fallback", "url", item.URL, "err", err)
		extracted, err = r.Fallback.Extract(html)
	}
	if err != nil {
		res.Err = err
		r.logger().Warn("extraction failed", "url", item.URL, "err", err)
		return res
	}

	res.Text = urltext.Sanitize(extracted.Title + "\n" + extracted.ContentHTML)
	return res
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// urlHost extracts the host component for rate limiting. Items reach the
// runner already validated, so parse failures just disable limiting.
func urlHost(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
