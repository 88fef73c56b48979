package translator

import (
	"strings"
	"testing"
)

func paramKeys(params []Param) []string {
	keys := make([]string, 0, len(params))
	for _, p := range params {
		keys = append(keys, p.Key)
	}
	return keys
}

func TestTextParams_Ordering(t *testing.T) {
	t.Parallel()

	outline := false
	params, err := textParams("en", "de", &TranslationOptions{
		GlossaryID:         "g-123",
		Formality:          FormalityMore,
		SentenceSplitting:  SplitSentencesNoNewlines,
		PreserveFormatting: true,
		TagHandling:        "xml",
		OutlineDetection:   &outline,
		NonSplittingTags:   []string{"a", "b"},
		SplittingTags:      []string{"p"},
		IgnoreTags:         []string{"code"},
	})
	if err != nil {
		t.Fatalf("text params: %v", err)
	}

	want := []string{
		"target_lang", "source_lang", "glossary_id", "formality",
		"split_sentences", "preserve_formatting", "tag_handling",
		"outline_detection", "non_splitting_tags", "splitting_tags", "ignore_tags",
	}
	got := paramKeys(params)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected parameter order:\n got %v\nwant %v", got, want)
	}
	if params[0].Value != "de" || params[1].Value != "en" {
		t.Fatalf("unexpected language values: %+v", params[:2])
	}
	if params[8].Value != "a,b" {
		t.Fatalf("unexpected non_splitting_tags value: %q", params[8].Value)
	}
}

func TestTextParams_DefaultsOmitted(t *testing.T) {
	t.Parallel()

	params, err := textParams("", "fr", &TranslationOptions{
		SentenceSplitting: SplitSentencesAll,
	})
	if err != nil {
		t.Fatalf("text params: %v", err)
	}
	if len(params) != 1 || params[0].Key != "target_lang" || params[0].Value != "fr" {
		t.Fatalf("expected only target_lang, got %+v", params)
	}

	params, err = textParams("", "fr", nil)
	if err != nil {
		t.Fatalf("text params with nil options: %v", err)
	}
	if len(params) != 1 {
		t.Fatalf("expected only target_lang with nil options, got %+v", params)
	}
}

func TestDocumentParams_NarrowOptionSet(t *testing.T) {
	t.Parallel()

	params, err := documentParams("en", "de", &TranslationOptions{
		GlossaryID:         "g-123",
		Formality:          FormalityLess,
		PreserveFormatting: true,
		TagHandling:        "xml",
	})
	if err != nil {
		t.Fatalf("document params: %v", err)
	}

	want := []string{"target_lang", "source_lang", "glossary_id", "formality"}
	got := paramKeys(params)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("text-only fields leaked into document params:\n got %v\nwant %v", got, want)
	}
}

func TestParams_DeprecatedTargetCodes(t *testing.T) {
	t.Parallel()

	for _, target := range []string{"en", "EN", "pt", " pt "} {
		if _, err := textParams("", target, nil); !isValidationError(err) {
			t.Fatalf("textParams(%q): expected validation error, got %v", target, err)
		}
		if _, err := documentParams("de", target, &TranslationOptions{Formality: FormalityMore}); !isValidationError(err) {
			t.Fatalf("documentParams(%q): expected validation error, got %v", target, err)
		}
	}

	_, err := textParams("", "en", nil)
	if err == nil || !strings.Contains(err.Error(), "en-GB or en-US") {
		t.Fatalf("expected replacement suggestion in error, got %v", err)
	}
	_, err = textParams("", "pt", nil)
	if err == nil || !strings.Contains(err.Error(), "pt-PT or pt-BR") {
		t.Fatalf("expected replacement suggestion in error, got %v", err)
	}

	// Regional forms stay valid.
	if _, err := textParams("", "en-US", nil); err != nil {
		t.Fatalf("textParams(en-US): %v", err)
	}
	if _, err := textParams("", "pt-BR", nil); err != nil {
		t.Fatalf("textParams(pt-BR): %v", err)
	}
}

func TestParams_Validation(t *testing.T) {
	t.Parallel()

	if _, err := textParams("", "", nil); !isValidationError(err) {
		t.Fatalf("expected validation error for empty target, got %v", err)
	}
	if _, err := textParams(" ", "de", &TranslationOptions{GlossaryID: "g-1"}); !isValidationError(err) {
		t.Fatalf("expected validation error for glossary without source, got %v", err)
	}
	if _, err := documentParams("", "de", &TranslationOptions{GlossaryID: "g-1"}); !isValidationError(err) {
		t.Fatalf("expected validation error for glossary without source, got %v", err)
	}
	if _, err := textParams("e n", "de", nil); !isValidationError(err) {
		t.Fatalf("expected validation error for malformed source, got %v", err)
	}
}
