package domain

import "fmt"

// CEFRLevel is the proficiency band attached to a learner text.
type CEFRLevel string

const (
	CEFRA1 CEFRLevel = "A1"
	CEFRA2 CEFRLevel = "A2"
	CEFRB1 CEFRLevel = "B1"
	CEFRB2 CEFRLevel = "B2"
	CEFRC1 CEFRLevel = "C1"
)

// CEFRLevels returns the bands in ascending proficiency order.
func CEFRLevels() []CEFRLevel {
	return []CEFRLevel{CEFRA1, CEFRA2, CEFRB1, CEFRB2, CEFRC1}
}

func ParseCEFRLevel(raw string) (CEFRLevel, error) {
	switch CEFRLevel(raw) {
	case CEFRA1, CEFRA2, CEFRB1, CEFRB2, CEFRC1:
		return CEFRLevel(raw), nil
	default:
		return "", fmt.Errorf("unknown CEFR level %q", raw)
	}
}

func (l CEFRLevel) String() string { return string(l) }
