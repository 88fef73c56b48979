package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/glotta-io/glotta/translator"
)

const defaultDocumentConcurrency = 4

// DocumentOptions configures a batch of document translations.
type DocumentOptions struct {
	SourceLang  string
	TargetLang  string
	GlossaryID  string
	Formality   string
	OutputDir   string
	Concurrency int
	Inputs      []string
}

// RunDocuments translates each input file through the async document
// pipeline, bounded by a small concurrency limit. Every file is
// attempted even when others fail; the command errors if any did.
func RunDocuments(ctx context.Context, deps *Deps, opts DocumentOptions) error {
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("no input files given")
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultDocumentConcurrency
	}

	start := time.Now()
	var successCount, failedCount atomic.Int64
	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(concurrency))

	for _, inputPath := range opts.Inputs {
		inputPath := inputPath
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				failedCount.Add(1)
				return
			}
			defer sem.Release(1)

			outputPath, err := outputPathFor(inputPath, opts.OutputDir, opts.TargetLang)
			if err != nil {
				failedCount.Add(1)
				deps.Log.Error().Str("input", inputPath).Err(err).Msg("document translation failed")
				return
			}

			err = deps.Client.TranslateDocumentToFile(ctx, inputPath, outputPath,
				opts.SourceLang, opts.TargetLang, &translator.TranslationOptions{
					GlossaryID: opts.GlossaryID,
					Formality:  translator.Formality(opts.Formality),
				})
			if err != nil {
				failedCount.Add(1)
				logDocumentFailure(deps, inputPath, err)
				return
			}

			successCount.Add(1)
			fmt.Fprintf(deps.Out, "%s -> %s\n", inputPath, outputPath)
		}()
	}
	wg.Wait()

	success := successCount.Load()
	failed := failedCount.Load()
	deps.Log.Info().
		Int64("succeeded", success).
		Int64("failed", failed).
		Dur("elapsed", time.Since(start).Round(time.Second)).
		Msg("document batch finished")

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, success+failed)
	}
	return nil
}

func logDocumentFailure(deps *Deps, inputPath string, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		deps.Log.Warn().Str("input", inputPath).Msg("document translation cancelled")
		return
	}

	event := deps.Log.Error().Str("input", inputPath)
	var docErr *translator.DocumentTranslationError
	if errors.As(err, &docErr) && docErr.Handle != nil {
		// Only the ID. The document key stays out of logs.
		event = event.Str("document_id", docErr.Handle.DocumentID)
	}
	event.Err(err).Msg("document translation failed")
}

// outputPathFor derives the translated file name from the input name and
// the target language: report.pdf translated to de becomes report.de.pdf.
func outputPathFor(inputPath, outputDir, targetLang string) (string, error) {
	base := filepath.Base(inputPath)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("input path %q has no file name", inputPath)
	}

	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	lang := strings.ToLower(strings.TrimSpace(targetLang))
	name := stem + "." + lang + ext

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, name), nil
}
