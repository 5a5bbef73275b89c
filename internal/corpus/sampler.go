package corpus

import (
	"errors"
	"fmt"
	"math/rand"

	types "github.com/annolab/tenselab-backend/internal/domain"
)

// ErrEmptyLevel reports that no corpus row matches the requested CEFR
// level. Callers surface it to the user; it is not fatal.
var ErrEmptyLevel = errors.New("no corpus rows at requested level")

// Sample filters rows to the exact requested level and draws a uniform
// random subset without replacement. The subset size is clamped to the
// number of matching rows. Two calls with the same inputs may return
// different subsets.
func Sample(rows []types.CorpusRow, level types.CEFRLevel, size int) ([]types.CorpusRow, error) {
	var filtered []types.CorpusRow
	for _, row := range rows {
		if row.CEFR == level {
			filtered = append(filtered, row)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("level %s: %w", level, ErrEmptyLevel)
	}

	if size > len(filtered) {
		size = len(filtered)
	}
	if size < 0 {
		size = 0
	}

	sampled := make([]types.CorpusRow, 0, size)
	for _, idx := range rand.Perm(len(filtered))[:size] {
		sampled = append(sampled, filtered[idx])
	}
	return sampled, nil
}
