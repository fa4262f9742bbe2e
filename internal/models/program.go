package models

// Side is the laterality tag on a configured exercise. SideNone means the
// exercise is not tracked per side; it serializes as "Both" in saved programs.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "Left"
	SideRight Side = "Right"
)

// Valid reports whether s is one of the three known side values.
func (s Side) Valid() bool {
	return s == SideNone || s == SideLeft || s == SideRight
}

// Stage is the progression stage of an exercise.
type Stage string

const (
	StageBeginner     Stage = "Beginner"
	StageIntermediate Stage = "Intermediate"
	StageAdvanced     Stage = "Advanced"
)

// Valid reports whether s is one of the three known stages.
func (s Stage) Valid() bool {
	return s == StageBeginner || s == StageIntermediate || s == StageAdvanced
}

// WeekDays lists the day-of-week codes in display order.
var WeekDays = []string{"S", "M", "Tu", "W", "Th", "F", "Su"}

// ExerciseTemplate is a reference catalog item. Templates are immutable: the
// builder copies their fields into a SelectionEntry and never writes back.
type ExerciseTemplate struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	HoldTime int    `json:"holdTime,omitempty"`
	Stage    Stage  `json:"stage,omitempty"`
	Weight   int    `json:"weight,omitempty"`
}

// ExerciseCategory groups the templates belonging to one body part.
type ExerciseCategory struct {
	Name      string             `json:"name"`
	Exercises []ExerciseTemplate `json:"exercises"`
}

// SelectionEntry is one configured exercise in the program under construction.
type SelectionEntry struct {
	SourceID int    `json:"sourceId"`
	Name     string `json:"name"`
	Side     Side   `json:"side"`
	HoldTime int    `json:"holdTime"`
	Stage    Stage  `json:"stage"`
	Weight   int    `json:"weight"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
}

// ProgramExercise is the persisted form of a SelectionEntry inside a saved
// program. Side is always populated ("Both" when the entry had no side).
type ProgramExercise struct {
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	Reps     int    `json:"reps"`
	HoldTime int    `json:"holdTime"`
	Side     string `json:"side"`
	Stage    Stage  `json:"stage"`
	Weight   int    `json:"weight"`
}

// ProgramDraft is the not-yet-persisted program assembled at save time.
type ProgramDraft struct {
	Name           string            `json:"name"`
	Exercises      []ProgramExercise `json:"exercises"`
	Days           []string          `json:"days"`
	SessionsPerDay int               `json:"sessionsPerDay"`
	Notes          string            `json:"notes"`
}

// SavedProgram is a draft that the archive accepted and assigned an ID.
type SavedProgram struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Exercises      []ProgramExercise `json:"exercises"`
	Days           []string          `json:"days"`
	SessionsPerDay int               `json:"sessionsPerDay"`
	Notes          string            `json:"notes"`
}

// ExercisesByBodyPart is the catalog lookup response: the canonical body part
// name (as stored, not as queried) plus its templates.
type ExercisesByBodyPart struct {
	BodyPart  string             `json:"bodyPart"`
	Exercises []ExerciseTemplate `json:"exercises"`
}
