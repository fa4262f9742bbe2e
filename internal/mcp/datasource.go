package mcp

import (
	"context"

	"github.com/claude/physioplan/internal/models"
	"github.com/claude/physioplan/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.Store
// (local document) and HTTPClient (remote via REST API) satisfy it.
type DataSource interface {
	BodyParts(ctx context.Context) ([]string, error)
	ExercisesFor(ctx context.Context, bodyPart string) (*models.ExercisesByBodyPart, error)
	SavedPrograms(ctx context.Context) ([]models.SavedProgram, error)
}

// Compile-time check: *storage.Store satisfies DataSource.
var _ DataSource = (*storage.Store)(nil)
