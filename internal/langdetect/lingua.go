package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// supported mirrors the source languages the translation API accepts.
// Restricting the detector to them keeps model loading cheap and avoids
// guesses the API would reject anyway.
var supported = []lingua.Language{
	lingua.Bulgarian,
	lingua.Czech,
	lingua.Danish,
	lingua.German,
	lingua.Greek,
	lingua.English,
	lingua.Spanish,
	lingua.Estonian,
	lingua.Finnish,
	lingua.French,
	lingua.Hungarian,
	lingua.Indonesian,
	lingua.Italian,
	lingua.Japanese,
	lingua.Korean,
	lingua.Lithuanian,
	lingua.Latvian,
	lingua.Dutch,
	lingua.Polish,
	lingua.Portuguese,
	lingua.Romanian,
	lingua.Russian,
	lingua.Slovak,
	lingua.Slovene,
	lingua.Swedish,
	lingua.Turkish,
	lingua.Ukrainian,
	lingua.Chinese,
}

// Source guesses the source language of text as a lowercase ISO 639-1
// code. Short or non-textual input yields "" and the caller falls back
// to server-side detection.
func Source(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}

	letterCount := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < 6 {
		return ""
	}

	language, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return ""
	}

	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return ""
	}
	return code
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supported...).
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
