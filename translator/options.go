package translator

// Formality controls whether translated output leans formal or informal.
// The default leaves the choice to the service and is omitted from requests.
type Formality string

const (
	FormalityDefault Formality = ""
	FormalityMore    Formality = "more"
	FormalityLess    Formality = "less"
)

// SentenceSplitting controls how input text is split into sentences before
// translation. Splitting on punctuation and newlines is the default and is
// omitted from requests.
type SentenceSplitting string

const (
	SplitSentencesAll        SentenceSplitting = "1"
	SplitSentencesNoNewlines SentenceSplitting = "nonewlines"
	SplitSentencesOff        SentenceSplitting = "0"
)

// TranslationOptions is the immutable options bag for translation calls.
// GlossaryID requires a source language to be set on the same call. The tag
// fields apply to text translation only; document uploads use just
// GlossaryID and Formality.
type TranslationOptions struct {
	GlossaryID         string
	Formality          Formality
	SentenceSplitting  SentenceSplitting
	PreserveFormatting bool
	TagHandling        string
	OutlineDetection   *bool
	NonSplittingTags   []string
	SplittingTags      []string
	IgnoreTags         []string
}
