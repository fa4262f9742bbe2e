package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claude/physioplan/internal/models"
)

// Archive is the persistence collaborator a Session submits drafts to.
// *archive.Client satisfies it.
type Archive interface {
	Submit(ctx context.Context, draft models.ProgramDraft) (*models.SavedProgram, error)
	ListSaved(ctx context.Context) ([]models.SavedProgram, error)
}

// SubmissionRecorder tracks confirmed saves so a re-run cannot double-submit
// the same content. *archive.SubmissionLog satisfies it; a nil recorder
// disables the check and the recording.
type SubmissionRecorder interface {
	Record(program models.SavedProgram) error
	IsSubmitted(draft models.ProgramDraft) (bool, error)
}

// State describes where a draft is in its lifecycle.
type State string

const (
	StateEmpty      State = "empty"
	StateBuilding   State = "building"
	StateSubmitting State = "submitting"
)

// Session ties a Builder to the archive for one draft lifecycle:
// Empty -> Building -> Submitting -> saved (clears back to Empty) or
// failed (returns to Building with all state preserved).
type Session struct {
	Builder *Builder

	archive    Archive
	recorder   SubmissionRecorder
	log        *slog.Logger
	submitting bool
}

// NewSession creates a Session around a fresh Builder. recorder may be nil.
func NewSession(archive Archive, recorder SubmissionRecorder, log *slog.Logger) *Session {
	return &Session{
		Builder:  New(),
		archive:  archive,
		recorder: recorder,
		log:      log,
	}
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	switch {
	case s.submitting:
		return StateSubmitting
	case s.Builder.Len() > 0:
		return StateBuilding
	default:
		return StateEmpty
	}
}

// Save assembles the current draft, submits it, and clears the builder once
// the archive confirms. On any submit failure the builder is left untouched
// so the user can retry. A second Save while one is in flight is rejected;
// the interaction surface is expected to disable the save control, this is
// the backstop. When a recorder is present, a draft whose content the log
// already confirmed is rejected with ErrAlreadySubmitted before it reaches
// the archive.
func (s *Session) Save(ctx context.Context) (*models.SavedProgram, error) {
	if s.submitting {
		return nil, ErrSubmitInFlight
	}
	s.submitting = true
	defer func() { s.submitting = false }()

	draft := s.Builder.AssembleDraft()

	if s.recorder != nil {
		submitted, err := s.recorder.IsSubmitted(draft)
		if err != nil {
			// A broken log must not block saving.
			s.log.Warn("submission log check failed", "error", err)
		} else if submitted {
			return nil, fmt.Errorf("%q: %w", draft.Name, ErrAlreadySubmitted)
		}
	}

	saved, err := s.archive.Submit(ctx, draft)
	if err != nil {
		s.log.Error("program submit failed", "name", draft.Name, "error", err)
		return nil, fmt.Errorf("submitting program: %w", err)
	}

	if s.recorder != nil {
		if err := s.recorder.Record(*saved); err != nil {
			// The save itself succeeded; a logging failure must not undo it.
			s.log.Warn("recording submission failed", "id", saved.ID, "error", err)
		}
	}

	s.Builder.Clear()
	s.log.Info("program saved", "id", saved.ID, "name", saved.Name, "exercises", len(saved.Exercises))
	return saved, nil
}

// ListSaved fetches all previously saved programs in archive order.
func (s *Session) ListSaved(ctx context.Context) ([]models.SavedProgram, error) {
	return s.archive.ListSaved(ctx)
}
