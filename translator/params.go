package translator

import (
	"strings"

	"github.com/glotta-io/glotta/internal/language"
)

// Param is one ordered request parameter. Request bodies preserve the
// order in which parameters were appended.
type Param struct {
	Key   string
	Value string
}

// deprecatedTargetCodes maps retired bare target codes to the regional
// replacements the API requires. New deprecations are added here without
// touching the rest of the validation.
var deprecatedTargetCodes = map[string][]string{
	"en": {"en-GB", "en-US"},
	"pt": {"pt-PT", "pt-BR"},
}

// textParams assembles the validated parameter list for a text translation
// request: target_lang, source_lang?, glossary_id?, formality?, then the
// text-only fields, each appended only when it differs from its default.
func textParams(sourceLang, targetLang string, opts *TranslationOptions) ([]Param, error) {
	params, err := baseParams(sourceLang, targetLang, opts)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		return params, nil
	}

	if opts.SentenceSplitting != "" && opts.SentenceSplitting != SplitSentencesAll {
		params = append(params, Param{"split_sentences", string(opts.SentenceSplitting)})
	}
	if opts.PreserveFormatting {
		params = append(params, Param{"preserve_formatting", "1"})
	}
	if handling := strings.TrimSpace(opts.TagHandling); handling != "" {
		params = append(params, Param{"tag_handling", handling})
	}
	if opts.OutlineDetection != nil && !*opts.OutlineDetection {
		params = append(params, Param{"outline_detection", "0"})
	}
	if len(opts.NonSplittingTags) > 0 {
		params = append(params, Param{"non_splitting_tags", strings.Join(opts.NonSplittingTags, ",")})
	}
	if len(opts.SplittingTags) > 0 {
		params = append(params, Param{"splitting_tags", strings.Join(opts.SplittingTags, ",")})
	}
	if len(opts.IgnoreTags) > 0 {
		params = append(params, Param{"ignore_tags", strings.Join(opts.IgnoreTags, ",")})
	}
	return params, nil
}

// documentParams assembles the parameter list for a document upload. Only
// the glossary id and formality options apply to documents.
func documentParams(sourceLang, targetLang string, opts *TranslationOptions) ([]Param, error) {
	return baseParams(sourceLang, targetLang, opts)
}

func baseParams(sourceLang, targetLang string, opts *TranslationOptions) ([]Param, error) {
	target, err := language.Standardize(targetLang)
	if err != nil {
		return nil, newValidationError("target language: %v", err)
	}
	if replacements, deprecated := deprecatedTargetCodes[target]; deprecated {
		return nil, newValidationError(
			"target language %q is deprecated, use %s instead",
			target, strings.Join(replacements, " or "),
		)
	}

	source := ""
	if strings.TrimSpace(sourceLang) != "" {
		source, err = language.Standardize(sourceLang)
		if err != nil {
			return nil, newValidationError("source language: %v", err)
		}
	}

	glossaryID := ""
	if opts != nil {
		glossaryID = strings.TrimSpace(opts.GlossaryID)
	}
	if glossaryID != "" && source == "" {
		return nil, newValidationError("source language is required when a glossary is used")
	}

	params := make([]Param, 0, 4)
	params = append(params, Param{"target_lang", target})
	if source != "" {
		params = append(params, Param{"source_lang", source})
	}
	if glossaryID != "" {
		params = append(params, Param{"glossary_id", glossaryID})
	}
	if opts != nil && opts.Formality != FormalityDefault {
		params = append(params, Param{"formality", string(opts.Formality)})
	}
	return params, nil
}
