package corpus

import (
	"os"
	"path/filepath"
	"testing"

	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func TestCSVSourceLoad(t *testing.T) {
	path := writeCorpus(t, "learner_id,cefr,text_corrected\n"+
		"l-1,B1,\"I go. He ran!\"\n"+
		"l-2,C1,Advanced writing.\n")

	rows, err := NewCSVSource(path, testLogger(t)).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Load: expected 2 rows, got %d", len(rows))
	}
	if rows[0].LearnerID != "l-1" || rows[0].CEFR != types.CEFRB1 || rows[0].TextCorrected != "I go. He ran!" {
		t.Fatalf("Load: unexpected first row: %+v", rows[0])
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), testLogger(t))
	if _, err := src.Load(); err == nil {
		t.Fatalf("Load: expected error for missing file")
	}
}

func TestCSVSourceMissingColumn(t *testing.T) {
	path := writeCorpus(t, "learner_id,text_corrected\nl-1,Hello.\n")
	if _, err := NewCSVSource(path, testLogger(t)).Load(); err == nil {
		t.Fatalf("Load: expected error for missing cefr column")
	}
}

func TestCSVSourceBadLevel(t *testing.T) {
	path := writeCorpus(t, "learner_id,cefr,text_corrected\nl-1,Z9,Hello.\n")
	if _, err := NewCSVSource(path, testLogger(t)).Load(); err == nil {
		t.Fatalf("Load: expected error for malformed level")
	}
}
