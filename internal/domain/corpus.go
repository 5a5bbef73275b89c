package domain

// CorpusRow is one learner text as loaded from the corpus file. Rows are
// immutable once loaded.
type CorpusRow struct {
	TextCorrected string    `json:"text_corrected"`
	CEFR          CEFRLevel `json:"cefr"`
	LearnerID     string    `json:"learner_id"`
}

// AnnotationUnit is one sentence extracted from a learner text, the atomic
// item an annotator labels. SentenceIndex is the 0-based position of the
// sentence within its parent text. Units live only inside the active
// session and are never persisted themselves.
type AnnotationUnit struct {
	ParentText    string    `json:"parent_text"`
	Sentence      string    `json:"sentence"`
	SentenceIndex int       `json:"sentence_index"`
	CEFR          CEFRLevel `json:"cefr"`
	LearnerID     string    `json:"learner_id"`
}

// WorkList is the ordered sequence of units loaded into one session,
// fixed once built.
type WorkList []AnnotationUnit
