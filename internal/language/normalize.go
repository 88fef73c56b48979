package language

import (
	"fmt"
	"strings"
)

// Standardize canonicalizes a language code to its wire form: subtags
// separated by "-", the primary subtag lowercased and any region subtag
// uppercased (for example "en_us" -> "en-US").
// Returns an error when the value is blank or contains invalid characters.
func Standardize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("language code is empty")
	}

	trimmed = strings.ReplaceAll(trimmed, "_", "-")
	parts := strings.Split(trimmed, "-")
	standardized := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !isAlpha(part) {
			return "", fmt.Errorf("language code %q is malformed", raw)
		}
		if len(standardized) == 0 {
			standardized = append(standardized, strings.ToLower(part))
			continue
		}
		standardized = append(standardized, strings.ToUpper(part))
	}

	if len(standardized) == 0 {
		return "", fmt.Errorf("language code %q is malformed", raw)
	}
	return strings.Join(standardized, "-"), nil
}

// NonRegional returns the primary language subtag (for example "en" from
// "en-US"). Glossary language pairs are matched at this granularity.
func NonRegional(raw string) string {
	standardized, err := Standardize(raw)
	if err != nil {
		return ""
	}
	if dash := strings.IndexByte(standardized, '-'); dash >= 0 {
		return standardized[:dash]
	}
	return standardized
}

func isAlpha(value string) bool {
	for _, r := range value {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
