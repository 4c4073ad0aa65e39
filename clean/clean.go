// Package clean provides corpus cleaning orchestration. It coordinates file
// discovery, reading, HTML extraction, token cleaning, and writing of the
// mirrored output tree, with per-file outcomes recorded in the run ledger.
package clean

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"winnow"

	"golang.org/x/sync/errgroup"
)

// Pipeline orchestrates a cleaning run over an input tree.
type Pipeline struct {
	Walker    winnow.FileWalker
	Reader    winnow.FileReader
	Writer    winnow.FileWriter
	Stopwords *winnow.StopwordSet

	// Extractors are tried in order for .html and .htm inputs. When every
	// extractor fails the raw bytes are cleaned instead; the tag-stripping
	// step still removes markup.
	Extractors []winnow.Extractor

	// Runs records run and per-file outcomes when set. Ledger writes are
	// best effort and never fail a file.
	Runs winnow.RunService

	// Dedup skips files whose cleaned content was already produced when
	// set.
	Dedup *ContentFilter

	Concurrency int
}

// Result holds the outcome of a cleaning run.
type Result struct {
	// RunID identifies the ledger entry for this run, if a ledger was
	// configured.
	RunID string

	Files        int
	Cleaned      int
	EmptyOutputs int
	Duplicates   int
	Failed       int

	BytesIn    int64
	BytesOut   int64
	TokensKept int

	Elapsed time.Duration
}

// fileResult holds the outcome of processing a single file.
type fileResult struct {
	file     winnow.FileInfo
	status   string
	tokens   int
	bytesOut int64
	hash     string
	err      error
}

// Clean processes every matching file under run.InputDir and writes cleaned
// output to the mirrored path under run.OutputDir. A file's failure never
// aborts the run; failures are counted and reported through progress events.
// The returned error is non-nil only for setup failures and cancellation, in
// which case the partial Result is still returned.
func (p *Pipeline) Clean(ctx context.Context, run *winnow.Run, progress ProgressFunc) (*Result, error) {
	if err := run.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	files, err := p.Walker.Walk(ctx, run.InputDir)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", run.InputDir, err)
	}

	result := &Result{Files: len(files)}

	if p.Runs != nil {
		if err := p.Runs.CreateRun(ctx, run); err != nil {
			return nil, fmt.Errorf("create run: %w", err)
		}
		result.RunID = run.ID
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(files)})
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = winnow.DefaultConcurrency()
	}

	resultCh := make(chan fileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, file := range files {
			if gctx.Err() != nil {
				break
			}
			file := file
			g.Go(func() error {
				resultCh <- p.processFile(gctx, file)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var completed atomic.Int64
	for res := range resultCh {
		completed.Add(1)
		p.record(ctx, run, res)
		result.add(res)

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     len(files),
			Path:      res.file.RelPath,
			Status:    res.status,
			Error:     res.err,
		}
		if res.err != nil {
			event.Type = ProgressFailed
		} else {
			event.Type = ProgressCompleted
		}
		progress(event)
	}

	result.Elapsed = time.Since(start)

	p.finishRun(ctx, run, result)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: int(completed.Load()),
			Total:     len(files),
		})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// processFile reads, cleans, and writes a single file.
func (p *Pipeline) processFile(ctx context.Context, file winnow.FileInfo) fileResult {
	res := fileResult{file: file}

	text, err := p.Reader.ReadText(ctx, file.Path)
	if err != nil {
		switch winnow.ErrorCode(err) {
		case winnow.EEMPTY, winnow.ETOOLARGE:
			res.status = winnow.StatusSkipped
		default:
			res.status = winnow.StatusFailed
		}
		res.err = fmt.Errorf("%s: %w", file.RelPath, err)
		return res
	}

	if winnow.IsHTMLPath(file.RelPath) {
		if extracted := winnow.ExtractText(p.Extractors, text); extracted != "" {
			text = extracted
		}
	}

	cleaned := winnow.Clean(text, p.Stopwords)

	if cleaned != "" && p.Dedup != nil && p.Dedup.TestAndAdd(cleaned) {
		res.status = winnow.StatusDuplicate
		res.hash = ComputeHash(cleaned)
		return res
	}

	if err := p.Writer.WriteText(ctx, file.RelPath, cleaned); err != nil {
		res.status = winnow.StatusFailed
		res.err = fmt.Errorf("write %s: %w", file.RelPath, err)
		return res
	}

	res.bytesOut = int64(len(cleaned))
	if cleaned == "" {
		res.status = winnow.StatusEmpty
		return res
	}

	res.status = winnow.StatusCleaned
	res.tokens = strings.Count(cleaned, " ") + 1
	res.hash = ComputeHash(cleaned)
	return res
}

// record writes the file's outcome to the ledger.
func (p *Pipeline) record(ctx context.Context, run *winnow.Run, res fileResult) {
	if p.Runs == nil {
		return
	}
	rec := &winnow.FileRecord{
		RunID:       run.ID,
		Path:        res.file.RelPath,
		Status:      res.status,
		TokensKept:  res.tokens,
		BytesIn:     res.file.Size,
		BytesOut:    res.bytesOut,
		ContentHash: res.hash,
	}
	if res.err != nil {
		rec.Error = res.err.Error()
	}
	_ = p.Runs.CreateFileRecord(ctx, rec)
}

// finishRun stamps the run with its final counters.
func (p *Pipeline) finishRun(ctx context.Context, run *winnow.Run, result *Result) {
	if p.Runs == nil {
		return
	}
	now := time.Now()
	_, _ = p.Runs.UpdateRun(ctx, run.ID, winnow.RunUpdate{
		FinishedAt:   &now,
		Files:        &result.Files,
		Cleaned:      &result.Cleaned,
		EmptyOutputs: &result.EmptyOutputs,
		Duplicates:   &result.Duplicates,
		Failed:       &result.Failed,
		BytesIn:      &result.BytesIn,
		BytesOut:     &result.BytesOut,
	})
}

func (r *Result) add(res fileResult) {
	switch res.status {
	case winnow.StatusCleaned:
		r.Cleaned++
		r.BytesIn += res.file.Size
		r.BytesOut += res.bytesOut
		r.TokensKept += res.tokens
	case winnow.StatusEmpty:
		r.EmptyOutputs++
		r.BytesIn += res.file.Size
	case winnow.StatusDuplicate:
		r.Duplicates++
		r.BytesIn += res.file.Size
	default:
		r.Failed++
	}
}
