package builder

import (
	"slices"
	"time"

	"github.com/claude/physioplan/internal/models"
)

// now is swapped out in tests.
var now = time.Now

// Assemble derives a persistable ProgramDraft from the selection list and the
// scheduling fields. The draft name is generated from the assembly timestamp.
// Inputs are copied, never aliased.
func Assemble(entries []models.SelectionEntry, days []string, sessionsPerDay int, notes string) models.ProgramDraft {
	exercises := make([]models.ProgramExercise, 0, len(entries))
	for _, e := range entries {
		side := string(e.Side)
		if e.Side == models.SideNone {
			side = "Both"
		}
		stage := e.Stage
		if stage == "" {
			stage = models.StageBeginner
		}
		exercises = append(exercises, models.ProgramExercise{
			Exercise: e.Name,
			Sets:     e.Sets,
			Reps:     e.Reps,
			HoldTime: e.HoldTime,
			Side:     side,
			Stage:    stage,
			Weight:   e.Weight,
		})
	}

	return models.ProgramDraft{
		Name:           "Combo " + now().Format("1/2/2006, 3:04:05 PM"),
		Exercises:      exercises,
		Days:           slices.Clone(days),
		SessionsPerDay: sessionsPerDay,
		Notes:          notes,
	}
}

// AssembleDraft assembles the draft for the builder's current state.
func (b *Builder) AssembleDraft() models.ProgramDraft {
	return Assemble(b.entries, b.days, b.sessionsPerDay, b.notes)
}
