package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	types "github.com/annolab/tenselab-backend/internal/domain"
)

var (
	// ErrEmptyWorkList rejects loading a worklist with zero units; the
	// session keeps whatever state it had before the attempt.
	ErrEmptyWorkList = errors.New("worklist has no units")

	// ErrNotLoaded reports navigation before any worklist was loaded.
	ErrNotLoaded = errors.New("no worklist loaded")
)

// Progress is the (completed, total) pair shown to the annotator.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Remaining int `json:"remaining"`
}

// Session tracks one annotator's position through their worklist. It is
// created at login and destroyed at logout; nothing survives across
// logins. The worklist is owned exclusively by this session. Cursor stays
// within [0, len(worklist)) whenever a worklist is present.
type Session struct {
	UserID uuid.UUID
	Role   types.Role

	mu       sync.Mutex
	worklist types.WorkList
	cursor   int
}

func New(userID uuid.UUID, role types.Role) *Session {
	return &Session{UserID: userID, Role: role}
}

// Load installs a freshly built worklist and resets the cursor to 0.
func (s *Session) Load(worklist types.WorkList) error {
	if len(worklist) == 0 {
		return ErrEmptyWorkList
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worklist = worklist
	s.cursor = 0
	return nil
}

func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.worklist) > 0
}

// Current returns the unit under the cursor.
func (s *Session) Current() (types.AnnotationUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.worklist) == 0 {
		return types.AnnotationUnit{}, ErrNotLoaded
	}
	return s.worklist[s.cursor], nil
}

// Next advances the cursor by one and returns the unit there. At the last
// unit it stays put; no wraparound, no error.
func (s *Session) Next() (types.AnnotationUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.worklist) == 0 {
		return types.AnnotationUnit{}, ErrNotLoaded
	}
	if s.cursor < len(s.worklist)-1 {
		s.cursor++
	}
	return s.worklist[s.cursor], nil
}

// Previous moves the cursor back by one and returns the unit there. At
// the first unit it stays put.
func (s *Session) Previous() (types.AnnotationUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.worklist) == 0 {
		return types.AnnotationUnit{}, ErrNotLoaded
	}
	if s.cursor > 0 {
		s.cursor--
	}
	return s.worklist[s.cursor], nil
}

func (s *Session) Progress() (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.worklist) == 0 {
		return Progress{}, ErrNotLoaded
	}
	completed := s.cursor + 1
	total := len(s.worklist)
	return Progress{
		Completed: completed,
		Total:     total,
		Remaining: total - completed,
	}, nil
}
