package corpus

import (
	types "github.com/annolab/tenselab-backend/internal/domain"
)

// BuildWorkList flattens sampled rows into the ordered worklist of
// annotation units. Row order and within-row sentence order are both
// preserved; identical sentence text across rows is not deduplicated.
func BuildWorkList(rows []types.CorpusRow) types.WorkList {
	var worklist types.WorkList
	for _, row := range rows {
		for idx, sentence := range Segment(row.TextCorrected) {
			worklist = append(worklist, types.AnnotationUnit{
				ParentText:    row.TextCorrected,
				Sentence:      sentence,
				SentenceIndex: idx,
				CEFR:          row.CEFR,
				LearnerID:     row.LearnerID,
			})
		}
	}
	return worklist
}
