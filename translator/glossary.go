package translator

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/glotta-io/glotta/internal/language"
)

// GlossaryInfo describes one glossary and its provisioning state. A newly
// created glossary is usable once Ready becomes true.
type GlossaryInfo struct {
	GlossaryID   string    `json:"glossary_id"`
	Name         string    `json:"name"`
	Ready        bool      `json:"ready"`
	SourceLang   string    `json:"source_lang"`
	TargetLang   string    `json:"target_lang"`
	CreationTime time.Time `json:"creation_time"`
	EntryCount   int       `json:"entry_count"`
}

// Glossary provisioning is short and bounded, so a fixed interval is
// simpler than adaptive backoff and responsive enough.
const glossaryPollDelay = 2 * time.Second

// CreateGlossary registers a glossary for the given language pair.
// Glossary language pairs are matched at base-language granularity, so
// regional variants are stripped from both codes.
func (c *Client) CreateGlossary(ctx context.Context, name, sourceLang, targetLang string, entries map[string]string) (GlossaryInfo, error) {
	if strings.TrimSpace(name) == "" {
		return GlossaryInfo{}, newValidationError("glossary name is required")
	}
	if len(entries) == 0 {
		return GlossaryInfo{}, newValidationError("glossary entries are required")
	}
	source := language.NonRegional(sourceLang)
	if source == "" {
		return GlossaryInfo{}, newValidationError("glossary source language: language code is empty or malformed")
	}
	target := language.NonRegional(targetLang)
	if target == "" {
		return GlossaryInfo{}, newValidationError("glossary target language: language code is empty or malformed")
	}
	tsv, err := glossaryTSV(entries)
	if err != nil {
		return GlossaryInfo{}, err
	}

	params := []Param{
		{"name", strings.TrimSpace(name)},
		{"source_lang", source},
		{"target_lang", target},
		{"entries_format", "tsv"},
		{"entries", tsv},
	}
	var info GlossaryInfo
	if err := c.rest.PostForm(ctx, "/v2/glossaries", params, &info); err != nil {
		return GlossaryInfo{}, err
	}
	return info, nil
}

// GetGlossary fetches one glossary by id.
func (c *Client) GetGlossary(ctx context.Context, glossaryID string) (GlossaryInfo, error) {
	id := strings.TrimSpace(glossaryID)
	if id == "" {
		return GlossaryInfo{}, newValidationError("glossary id is required")
	}
	var info GlossaryInfo
	if err := c.rest.GetJSON(ctx, "/v2/glossaries/"+url.PathEscape(id), nil, &info); err != nil {
		return GlossaryInfo{}, err
	}
	return info, nil
}

// ListGlossaries returns all glossaries on the account.
func (c *Client) ListGlossaries(ctx context.Context) ([]GlossaryInfo, error) {
	var out struct {
		Glossaries []GlossaryInfo `json:"glossaries"`
	}
	if err := c.rest.GetJSON(ctx, "/v2/glossaries", nil, &out); err != nil {
		return nil, err
	}
	return out.Glossaries, nil
}

// DeleteGlossary removes one glossary by id.
func (c *Client) DeleteGlossary(ctx context.Context, glossaryID string) error {
	id := strings.TrimSpace(glossaryID)
	if id == "" {
		return newValidationError("glossary id is required")
	}
	return c.rest.Delete(ctx, "/v2/glossaries/"+url.PathEscape(id))
}

// WaitUntilGlossaryReady polls the glossary at a fixed interval until the
// service reports it ready, and returns that first ready snapshot. Cancel
// the context to abort a pending sleep or in-flight request.
func (c *Client) WaitUntilGlossaryReady(ctx context.Context, glossaryID string) (GlossaryInfo, error) {
	for {
		info, err := c.GetGlossary(ctx, glossaryID)
		if err != nil {
			return GlossaryInfo{}, err
		}
		if info.Ready {
			return info, nil
		}
		if err := c.sleep(ctx, glossaryPollDelay); err != nil {
			return GlossaryInfo{}, err
		}
	}
}

// glossaryTSV renders entries as tab-separated lines, sorted by term so
// identical entry sets produce identical requests.
func glossaryTSV(entries map[string]string) (string, error) {
	terms := make([]string, 0, len(entries))
	for term := range entries {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	var b strings.Builder
	for i, term := range terms {
		translation := entries[term]
		if strings.TrimSpace(term) == "" || strings.TrimSpace(translation) == "" {
			return "", newValidationError("glossary entries must have non-empty terms and translations")
		}
		if strings.ContainsAny(term, "\t\r\n") || strings.ContainsAny(translation, "\t\r\n") {
			return "", newValidationError("glossary entry %q contains tab or newline characters", term)
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\t%s", term, translation)
	}
	return b.String(), nil
}
