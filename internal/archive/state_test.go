package archive

import (
	"testing"

	"github.com/claude/physioplan/internal/models"
)

func testLog(t *testing.T) *SubmissionLog {
	t.Helper()
	log, err := OpenSubmissionLog(t.TempDir())
	if err != nil {
		t.Fatalf("opening submission log: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log
}

// TestSubmissionLogRoundTrip verifies a recorded save is reported as
// submitted afterwards.
func TestSubmissionLogRoundTrip(t *testing.T) {
	log := testLog(t)

	draft := models.ProgramDraft{
		Name:           "Combo 3/14/2025, 3:09:26 PM",
		Exercises:      []models.ProgramExercise{{Exercise: "Squat", Sets: 3, Reps: 10, Side: "Both", Stage: models.StageBeginner}},
		Days:           []string{"M", "W"},
		SessionsPerDay: 1,
	}

	submitted, err := log.IsSubmitted(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if submitted {
		t.Fatal("fresh log reports draft as submitted")
	}

	saved := models.SavedProgram{
		ID:             7,
		Name:           draft.Name,
		Exercises:      draft.Exercises,
		Days:           draft.Days,
		SessionsPerDay: draft.SessionsPerDay,
	}
	if err := log.Record(saved); err != nil {
		t.Fatalf("record: %v", err)
	}

	submitted, err = log.IsSubmitted(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !submitted {
		t.Error("draft not reported as submitted after record")
	}
}

// TestSubmissionLogDistinguishesContent verifies drafts differing in any
// field hash differently.
func TestSubmissionLogDistinguishesContent(t *testing.T) {
	log := testLog(t)

	base := models.ProgramDraft{Name: "a", Days: []string{"M"}}
	if err := log.Record(models.SavedProgram{ID: 1, Name: base.Name, Days: base.Days}); err != nil {
		t.Fatalf("record: %v", err)
	}

	other := base
	other.SessionsPerDay = 2
	submitted, err := log.IsSubmitted(other)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if submitted {
		t.Error("draft with different sessionsPerDay reported as submitted")
	}
}

// TestSubmissionLogSurvivesReopen verifies the log persists in state.db
// across close and reopen.
func TestSubmissionLogSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	log, err := OpenSubmissionLog(dir)
	if err != nil {
		t.Fatalf("opening submission log: %v", err)
	}
	draft := models.ProgramDraft{Name: "persisted"}
	if err := log.Record(models.SavedProgram{ID: 3, Name: "persisted"}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSubmissionLog(dir)
	if err != nil {
		t.Fatalf("reopening submission log: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	submitted, err := reopened.IsSubmitted(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !submitted {
		t.Error("submission lost across reopen")
	}
}

// TestSubmissionLogIgnoresName verifies two assemblies of the same content
// match even though each carries a fresh timestamp name.
func TestSubmissionLogIgnoresName(t *testing.T) {
	log := testLog(t)

	exercises := []models.ProgramExercise{{Exercise: "Squat", Sets: 3, Reps: 10, Side: "Both", Stage: models.StageBeginner}}
	first := models.ProgramDraft{Name: "Combo 3/14/2025, 3:09:26 PM", Exercises: exercises, Days: []string{"M"}}
	if err := log.Record(models.SavedProgram{ID: 1, Name: first.Name, Exercises: first.Exercises, Days: first.Days}); err != nil {
		t.Fatalf("record: %v", err)
	}

	reassembled := first
	reassembled.Name = "Combo 3/14/2025, 3:10:02 PM"
	submitted, err := log.IsSubmitted(reassembled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !submitted {
		t.Error("reassembled draft with a new timestamp name not recognized as submitted")
	}
}

// TestHashDraftStable verifies identical drafts hash identically.
func TestHashDraftStable(t *testing.T) {
	draft := models.ProgramDraft{Name: "x", Days: []string{"M", "W"}}
	h1, err := HashDraft(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h2, err := HashDraft(draft)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h1 != h2 {
		t.Errorf("hashes differ: %s vs %s", h1, h2)
	}
}
