package domain

import (
	"time"

	"github.com/google/uuid"
)

// Annotation is one labeling decision. Records are append-only: there is
// no update or delete path, and resubmitting the same sentence creates a
// second, independent record.
type Annotation struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	AnnotatorID  uuid.UUID  `gorm:"type:uuid;index;not null;column:annotator_id" json:"annotator_id"`
	Sentence     string     `gorm:"not null;column:sentence" json:"sentence"`
	TargetTense  TenseLabel `gorm:"not null;column:target_tense" json:"target_tense"`
	Notes        string     `gorm:"column:notes" json:"notes"`
	CEFRLevel    CEFRLevel  `gorm:"not null;column:cefr_level" json:"cefr_level"`
	OriginalText string     `gorm:"not null;column:original_text" json:"original_text"`
	LearnerID    string     `gorm:"not null;column:learner_id" json:"learner_id"`
	CreatedAt    time.Time  `gorm:"not null;index;column:created_at" json:"created_at"`
}

func (Annotation) TableName() string { return "annotation" }
