package corpus

import "strings"

// Segment splits a learner text into sentences on terminal punctuation.
// The rule is deliberately naive: every one of . ! ? closes a sentence,
// so abbreviations ("Mr.") and decimals ("3.5") split too. Existing
// labeled data was produced under this rule, so it must not be refined
// without re-annotating.
func Segment(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, ch := range text {
		current.WriteRune(ch)
		switch ch {
		case '.', '!', '?':
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	// Trailing text without terminal punctuation still counts as a sentence.
	if current.Len() > 0 {
		sentences = append(sentences, strings.TrimSpace(current.String()))
	}

	return sentences
}
