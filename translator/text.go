package translator

import (
	"context"
	"strings"
)

// TextResult is one translated text with the source language the service
// detected when none was supplied.
type TextResult struct {
	Text                   string
	DetectedSourceLanguage string
}

// TranslateText translates plain text. sourceLang may be empty to let the
// service detect the source language.
func (c *Client) TranslateText(ctx context.Context, text, sourceLang, targetLang string, opts *TranslationOptions) (TextResult, error) {
	if strings.TrimSpace(text) == "" {
		return TextResult{}, newValidationError("text is required")
	}
	params, err := textParams(sourceLang, targetLang, opts)
	if err != nil {
		return TextResult{}, err
	}
	params = append(params, Param{"text", text})

	var out struct {
		Translations []struct {
			DetectedSourceLanguage string `json:"detected_source_language"`
			Text                   string `json:"text"`
		} `json:"translations"`
	}
	if err := c.rest.PostForm(ctx, "/v2/translate", params, &out); err != nil {
		return TextResult{}, err
	}
	if len(out.Translations) == 0 {
		return TextResult{}, &APIError{Message: "translation response missing translations"}
	}

	return TextResult{
		Text:                   out.Translations[0].Text,
		DetectedSourceLanguage: out.Translations[0].DetectedSourceLanguage,
	}, nil
}
