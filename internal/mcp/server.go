package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PhysioPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PhysioPlan therapy program server. Browse the exercise catalog by body part and review previously saved therapy programs."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListBodyParts, Handler: h.listBodyParts},
		server.ServerTool{Tool: toolGetExercises, Handler: h.getExercises},
		server.ServerTool{Tool: toolListSavedPrograms, Handler: h.listSavedPrograms},
	)

	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

var resCatalog = mcp.NewResource(
	"physioplan://catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All body parts with their exercise templates"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	parts, err := h.ds.BodyParts(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make(map[string]any, len(parts))
	for _, part := range parts {
		result, err := h.ds.ExercisesFor(ctx, part)
		if err != nil {
			h.log.Error("mcp catalog resource", "bodyPart", part, "error", err)
			continue
		}
		catalog[result.BodyPart] = result.Exercises
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
