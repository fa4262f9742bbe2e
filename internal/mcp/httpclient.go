package mcp

import (
	"context"

	"github.com/claude/physioplan/internal/archive"
	"github.com/claude/physioplan/internal/catalog"
	"github.com/claude/physioplan/internal/models"
)

// HTTPClient implements DataSource by calling the PhysioPlan REST API. Used
// for remote MCP mode where the binary runs locally (stdio) but the store
// lives on the server.
type HTTPClient struct {
	catalog *catalog.Client
	archive *archive.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		catalog: catalog.NewClient(baseURL),
		archive: archive.NewClient(baseURL),
	}
}

func (c *HTTPClient) BodyParts(ctx context.Context) ([]string, error) {
	return c.catalog.ListBodyParts(ctx)
}

func (c *HTTPClient) ExercisesFor(ctx context.Context, bodyPart string) (*models.ExercisesByBodyPart, error) {
	return c.catalog.ListExercisesFor(ctx, bodyPart)
}

func (c *HTTPClient) SavedPrograms(ctx context.Context) ([]models.SavedProgram, error) {
	return c.archive.ListSaved(ctx)
}
