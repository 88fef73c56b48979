package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glotta-io/glotta/internal/langdetect"
	"github.com/glotta-io/glotta/translator"
)

// TextOptions configures a single text translation.
type TextOptions struct {
	SourceLang string
	TargetLang string
	GlossaryID string
	Formality  string
	Detect     bool
	Text       string
}

// RunText translates one piece of text and prints the result. When the
// text argument is empty the input is read from stdin, so the command
// composes with pipes.
func RunText(ctx context.Context, deps *Deps, opts TextOptions) error {
	text := opts.Text
	if strings.TrimSpace(text) == "" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		text = string(raw)
	}

	sourceLang := opts.SourceLang
	if sourceLang == "" && opts.Detect {
		if guessed := langdetect.Source(text); guessed != "" {
			sourceLang = guessed
			deps.Log.Debug().Str("source_lang", guessed).Msg("detected source language locally")
		}
	}

	result, err := deps.Client.TranslateText(ctx, text, sourceLang, opts.TargetLang, &translator.TranslationOptions{
		GlossaryID: opts.GlossaryID,
		Formality:  translator.Formality(opts.Formality),
	})
	if err != nil {
		return err
	}

	if sourceLang == "" && result.DetectedSourceLanguage != "" {
		deps.Log.Debug().Str("source_lang", result.DetectedSourceLanguage).Msg("server detected source language")
	}
	fmt.Fprintln(deps.Out, result.Text)
	return nil
}
