package domain

import (
	"errors"
	"fmt"
)

// TenseLabel is one assignable value from the tense taxonomy. Category
// names are grouping labels only and are deliberately not part of this set.
type TenseLabel string

const (
	TensePresentSimple       TenseLabel = "Present Simple"
	TensePastSimple          TenseLabel = "Past Simple"
	TenseFutureSimpleWill    TenseLabel = "Future Simple (will)"
	TenseFutureSimpleGoingTo TenseLabel = "Future Simple (going to)"

	TensePresentContinuous TenseLabel = "Present Continuous"
	TensePastContinuous    TenseLabel = "Past Continuous"
	TenseFutureContinuous  TenseLabel = "Future Continuous"

	TensePresentPerfect           TenseLabel = "Present Perfect"
	TensePastPerfect              TenseLabel = "Past Perfect"
	TenseFuturePerfect            TenseLabel = "Future Perfect"
	TensePresentPerfectContinuous TenseLabel = "Present Perfect Continuous"
	TensePastPerfectContinuous    TenseLabel = "Past Perfect Continuous"
	TenseFuturePerfectContinuous  TenseLabel = "Future Perfect Continuous"

	TenseModalPresent TenseLabel = "Modal Present (would/could/might/should)"
	TenseModalPast    TenseLabel = "Modal Past (would have/could have)"

	TenseConditional    TenseLabel = "Conditional (if clause)"
	TenseToInfinitive   TenseLabel = "To-infinitive"
	TenseBareInfinitive TenseLabel = "Bare infinitive"
	TenseGerund         TenseLabel = "Gerund (-ing form)"
	TenseMultipleVerbs  TenseLabel = "Multiple Verbs"
)

// TenseCategory groups labels for presentation. The ordering of categories
// and of labels within a category is fixed and mirrors the annotation
// guidelines given to annotators.
type TenseCategory struct {
	Name   string       `json:"name"`
	Labels []TenseLabel `json:"labels"`
}

func TenseCategories() []TenseCategory {
	return []TenseCategory{
		{Name: "Simple Forms", Labels: []TenseLabel{
			TensePresentSimple,
			TensePastSimple,
			TenseFutureSimpleWill,
			TenseFutureSimpleGoingTo,
		}},
		{Name: "Continuous Forms", Labels: []TenseLabel{
			TensePresentContinuous,
			TensePastContinuous,
			TenseFutureContinuous,
		}},
		{Name: "Perfect Forms", Labels: []TenseLabel{
			TensePresentPerfect,
			TensePastPerfect,
			TenseFuturePerfect,
			TensePresentPerfectContinuous,
			TensePastPerfectContinuous,
			TenseFuturePerfectContinuous,
		}},
		{Name: "Modal Forms", Labels: []TenseLabel{
			TenseModalPresent,
			TenseModalPast,
		}},
		{Name: "Other Structures", Labels: []TenseLabel{
			TenseConditional,
			TenseToInfinitive,
			TenseBareInfinitive,
			TenseGerund,
			TenseMultipleVerbs,
		}},
	}
}

// TenseOptions flattens the taxonomy into the legal domain of target_tense,
// preserving category order then within-category order.
func TenseOptions() []TenseLabel {
	var out []TenseLabel
	for _, cat := range TenseCategories() {
		out = append(out, cat.Labels...)
	}
	return out
}

// ErrInvalidTense rejects an empty selection, a category name, or any other
// string outside the flattened label set.
var ErrInvalidTense = errors.New("invalid tense label")

func ParseTenseLabel(raw string) (TenseLabel, error) {
	if raw == "" {
		return "", fmt.Errorf("empty selection: %w", ErrInvalidTense)
	}
	for _, label := range TenseOptions() {
		if TenseLabel(raw) == label {
			return label, nil
		}
	}
	return "", fmt.Errorf("%q: %w", raw, ErrInvalidTense)
}

func (t TenseLabel) String() string { return string(t) }
