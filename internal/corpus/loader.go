package corpus

import (
	"encoding/csv"
	"fmt"
	"os"

	types "github.com/annolab/tenselab-backend/internal/domain"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
)

// Source provides the immutable corpus rows. Implementations may be
// called once per worklist load; the engine never caches rows itself.
type Source interface {
	Load() ([]types.CorpusRow, error)
}

// CSVSource reads learner texts from a delimited file with a header row
// containing text_corrected, cefr and learner_id columns.
type CSVSource struct {
	path string
	log  *logger.Logger
}

func NewCSVSource(path string, baseLog *logger.Logger) *CSVSource {
	return &CSVSource{path: path, log: baseLog.With("source", "CSVSource")}
}

func (s *CSVSource) Load() ([]types.CorpusRow, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("corpus file %s has no header row", s.path)
	}

	cols := map[string]int{}
	for i, name := range records[0] {
		cols[name] = i
	}
	for _, required := range []string{"text_corrected", "cefr", "learner_id"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("corpus file %s is missing column %q", s.path, required)
		}
	}

	rows := make([]types.CorpusRow, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		max := cols["text_corrected"]
		for _, c := range []int{cols["cefr"], cols["learner_id"]} {
			if c > max {
				max = c
			}
		}
		if len(record) <= max {
			return nil, fmt.Errorf("corpus file %s line %d: too few columns", s.path, line)
		}

		level, err := types.ParseCEFRLevel(record[cols["cefr"]])
		if err != nil {
			return nil, fmt.Errorf("corpus file %s line %d: %w", s.path, line, err)
		}

		rows = append(rows, types.CorpusRow{
			TextCorrected: record[cols["text_corrected"]],
			CEFR:          level,
			LearnerID:     record[cols["learner_id"]],
		})
	}

	s.log.Debug("Corpus loaded", "rows", len(rows), "path", s.path)
	return rows, nil
}
