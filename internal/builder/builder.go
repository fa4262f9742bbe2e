// Package builder holds the program-builder state model: the ordered list of
// configured exercise entries, the auxiliary scheduling fields, and the rules
// for adding, duplicating, editing, reordering and clearing entries.
package builder

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/claude/physioplan/internal/models"
)

// Builder owns the selection list for one in-progress program draft plus the
// draft-scoped scheduling fields (therapy days, sessions per day, notes).
// It is not safe for concurrent use: all mutations belong to a single user
// session and are expected to run one at a time.
type Builder struct {
	entries        []models.SelectionEntry
	days           []string
	sessionsPerDay int
	notes          string

	// OnSelect, when set, is called after an exercise is successfully
	// appended. The interaction surface uses it to close its browse menu;
	// it never fires for a duplicate select.
	OnSelect func(models.SelectionEntry)
}

// New returns an empty Builder. Sessions per day starts at 1; note that
// Clear resets it to 0, not 1.
func New() *Builder {
	return &Builder{sessionsPerDay: 1}
}

// sameExercise reports whether two entries refer to the same catalog
// exercise, ignoring side. IDs are compared when both are set, otherwise
// the name decides.
func sameExercise(aID int, aName string, bID int, bName string) bool {
	if aID != 0 && bID != 0 {
		return aID == bID
	}
	return aName == bName
}

// SelectExercise appends a new entry seeded from the template, unless an
// entry for the same exercise (ignoring side) already exists. Returns true
// if the entry was appended; a duplicate select is a no-op returning false.
func (b *Builder) SelectExercise(tmpl models.ExerciseTemplate) bool {
	for _, e := range b.entries {
		if sameExercise(e.SourceID, e.Name, tmpl.ID, tmpl.Name) {
			return false
		}
	}

	stage := tmpl.Stage
	if stage == "" {
		stage = models.StageBeginner
	}
	entry := models.SelectionEntry{
		SourceID: tmpl.ID,
		Name:     tmpl.Name,
		Side:     models.SideNone,
		HoldTime: tmpl.HoldTime,
		Stage:    stage,
		Weight:   tmpl.Weight,
	}
	b.entries = append(b.entries, entry)

	if b.OnSelect != nil {
		b.OnSelect(entry)
	}
	return true
}

// ToggleSide sets the entry's side, or resets it to none when it already
// has that side.
func (b *Builder) ToggleSide(index int, side models.Side) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if side != models.SideLeft && side != models.SideRight {
		return fmt.Errorf("%w: side %q", ErrInvalidField, side)
	}
	if b.entries[index].Side == side {
		b.entries[index].Side = models.SideNone
	} else {
		b.entries[index].Side = side
	}
	return nil
}

// Duplicate appends a verbatim clone of the entry at index, keeping whatever
// side it already has. No dedup rule applies to this variant.
func (b *Builder) Duplicate(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.entries = append(b.entries, b.entries[index])
	return nil
}

// DuplicateSide appends a copy of the entry at index with its side overridden.
// If an entry for the same exercise with that side already exists the call is
// a no-op: each source exercise gets at most one copy per side.
func (b *Builder) DuplicateSide(index int, side models.Side) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if !side.Valid() {
		return fmt.Errorf("%w: side %q", ErrInvalidField, side)
	}

	src := b.entries[index]
	for _, e := range b.entries {
		if sameExercise(e.SourceID, e.Name, src.SourceID, src.Name) && e.Side == side {
			return nil
		}
	}

	copied := src
	copied.Side = side
	b.entries = append(b.entries, copied)
	return nil
}

// UpdateField parses raw as a number, clamps it to >= 0 (0 on parse failure),
// and writes it into the named numeric field. Stage is categorical and has
// its own setter.
func (b *Builder) UpdateField(index int, field, raw string) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}

	value := clampNumeric(raw)
	entry := &b.entries[index]
	switch field {
	case "sets":
		entry.Sets = value
	case "reps":
		entry.Reps = value
	case "holdTime":
		entry.HoldTime = value
	case "weight":
		entry.Weight = value
	default:
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
	return nil
}

// clampNumeric coerces raw to a non-negative integer: floats truncate toward
// zero, unparseable or NaN input becomes 0. ParseFloat also accepts "NaN",
// "Inf", and values beyond the int range; int conversion of those is
// implementation-defined, so they are clamped before converting.
func clampNumeric(raw string) int {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// SetStage assigns the entry's progression stage.
func (b *Builder) SetStage(index int, stage models.Stage) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	if stage != models.StageBeginner && stage != models.StageIntermediate && stage != models.StageAdvanced {
		return fmt.Errorf("%w: stage %q", ErrInvalidField, stage)
	}
	b.entries[index].Stage = stage
	return nil
}

// Delete removes the entry at index, shifting later entries left.
func (b *Builder) Delete(index int) error {
	if err := b.checkIndex(index); err != nil {
		return err
	}
	b.entries = slices.Delete(b.entries, index, index+1)
	return nil
}

// Reorder removes the entry at from and reinserts it at to, where to is a
// position in the list after removal (splice semantics). Both indices are
// validated against the pre-removal list.
func (b *Builder) Reorder(from, to int) error {
	if err := b.checkIndex(from); err != nil {
		return err
	}
	if err := b.checkIndex(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	entry := b.entries[from]
	b.entries = slices.Delete(b.entries, from, from+1)
	b.entries = slices.Insert(b.entries, to, entry)
	return nil
}

// Clear resets the selection list and all draft-scoped fields. Sessions per
// day resets to 0 even though a fresh Builder starts at 1.
func (b *Builder) Clear() {
	b.entries = nil
	b.days = nil
	b.sessionsPerDay = 0
	b.notes = ""
}

// Entries returns a copy of the selection list in order.
func (b *Builder) Entries() []models.SelectionEntry {
	return slices.Clone(b.entries)
}

// Len returns the number of selected entries.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Notes returns the therapist notes for the draft.
func (b *Builder) Notes() string { return b.notes }

// SetNotes replaces the therapist notes.
func (b *Builder) SetNotes(notes string) { b.notes = notes }

// SessionsPerDay returns the configured daily session count.
func (b *Builder) SessionsPerDay() int { return b.sessionsPerDay }

// SetSessionsPerDay sets the daily session count, clamped to >= 0.
func (b *Builder) SetSessionsPerDay(n int) {
	b.sessionsPerDay = max(0, n)
}

// Days returns a copy of the selected therapy day codes.
func (b *Builder) Days() []string {
	return slices.Clone(b.days)
}

// ToggleDay adds the day code to the therapy days, or removes it when
// already present. Unknown codes are ignored.
func (b *Builder) ToggleDay(day string) {
	if !slices.Contains(models.WeekDays, day) {
		return
	}
	if i := slices.Index(b.days, day); i >= 0 {
		b.days = slices.Delete(b.days, i, i+1)
		return
	}
	b.days = append(b.days, day)
}

// SelectAllDays selects all seven therapy days.
func (b *Builder) SelectAllDays() {
	b.days = slices.Clone(models.WeekDays)
}

func (b *Builder) checkIndex(index int) error {
	if index < 0 || index >= len(b.entries) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(b.entries))
	}
	return nil
}
