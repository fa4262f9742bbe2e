// Package storage implements the record store behind the PhysioPlan API:
// a single JSON document holding the exercise catalog and the saved-program
// archive. Every read loads the full document and every write rewrites it in
// full. A mutex serializes access within this process; concurrent writers
// from other processes can race (known limitation, the store assumes
// single-session use).
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/claude/physioplan/internal/models"
)

// ErrNotFound is returned when a body part is not in the catalog.
var ErrNotFound = errors.New("not found")

// document is the on-disk shape of the store.
type document struct {
	ExerciseCategories []models.ExerciseCategory `json:"exerciseCategories"`
	SavedPrograms      []models.SavedProgram     `json:"savedPrograms"`
}

// Store is a JSON-document-backed record store.
type Store struct {
	path string
	mu   sync.Mutex
}

// Open opens the store at path, creating an empty document if the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("creating store dir: %w", err)
			}
		}
		if err := s.write(&document{
			ExerciseCategories: []models.ExerciseCategory{},
			SavedPrograms:      []models.SavedProgram{},
		}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking store file: %w", err)
	}

	// Fail fast on a corrupt document.
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) read() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading store file: %w", err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing store file: %w", err)
	}
	return &doc, nil
}

func (s *Store) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store document: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store file: %w", err)
	}
	return nil
}

// BodyParts returns the catalog's body part names in document order.
func (s *Store) BodyParts(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.ExerciseCategories))
	for _, cat := range doc.ExerciseCategories {
		names = append(names, cat.Name)
	}
	return names, nil
}

// ExercisesFor returns the templates for a body part, matched
// case-insensitively. Returns ErrNotFound for an unknown body part.
func (s *Store) ExercisesFor(ctx context.Context, bodyPart string) (*models.ExercisesByBodyPart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	for _, cat := range doc.ExerciseCategories {
		if strings.EqualFold(cat.Name, bodyPart) {
			return &models.ExercisesByBodyPart{
				BodyPart:  cat.Name,
				Exercises: cat.Exercises,
			}, nil
		}
	}
	return nil, fmt.Errorf("body part %q: %w", bodyPart, ErrNotFound)
}

// SavedPrograms returns all saved programs in archive order, oldest first.
func (s *Store) SavedPrograms(ctx context.Context) ([]models.SavedProgram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.SavedPrograms, nil
}

// AppendProgram stores a draft as a new saved program, assigning it an ID one
// greater than the current maximum (1 when the archive is empty).
func (s *Store) AppendProgram(ctx context.Context, draft models.ProgramDraft) (*models.SavedProgram, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, p := range doc.SavedPrograms {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	saved := models.SavedProgram{
		ID:             maxID + 1,
		Name:           draft.Name,
		Exercises:      draft.Exercises,
		Days:           draft.Days,
		SessionsPerDay: draft.SessionsPerDay,
		Notes:          draft.Notes,
	}
	if saved.Exercises == nil {
		saved.Exercises = []models.ProgramExercise{}
	}
	if saved.Days == nil {
		saved.Days = []string{}
	}

	doc.SavedPrograms = append(doc.SavedPrograms, saved)
	if err := s.write(doc); err != nil {
		return nil, err
	}
	return &saved, nil
}

// ClearPrograms deletes every saved program. The catalog is untouched.
func (s *Store) ClearPrograms(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.SavedPrograms = []models.SavedProgram{}
	return s.write(doc)
}

// ReplaceCategories swaps in a new exercise catalog, used by the seed tool.
// Saved programs are preserved.
func (s *Store) ReplaceCategories(ctx context.Context, categories []models.ExerciseCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	doc.ExerciseCategories = categories
	return s.write(doc)
}
