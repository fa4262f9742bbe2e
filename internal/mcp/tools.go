package mcp

import (
	"context"
	"errors"

	"github.com/claude/physioplan/internal/catalog"
	"github.com/claude/physioplan/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolListBodyParts = mcp.NewTool("list_body_parts",
	mcp.WithDescription("List the body parts the exercise catalog is grouped by (e.g. Knee, Shoulder)."),
)

var toolGetExercises = mcp.NewTool("get_exercises",
	mcp.WithDescription("Get the exercise templates for a body part, including default hold time, stage, and weight. Body part names match case-insensitively."),
	mcp.WithString("body_part", mcp.Required(), mcp.Description("Body part name (e.g. Knee)")),
)

var toolListSavedPrograms = mcp.NewTool("list_saved_programs",
	mcp.WithDescription("List all saved therapy programs in archive order (oldest first), with their exercises, therapy days, sessions per day, and therapist notes."),
)

// --- Tool handlers ---

func (h *handlers) listBodyParts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	parts, err := h.ds.BodyParts(ctx)
	if err != nil {
		h.log.Error("mcp list_body_parts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(parts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	bodyPart := req.GetString("body_part", "")
	if bodyPart == "" {
		return mcp.NewToolResultError("body_part parameter is required"), nil
	}

	exercises, err := h.ds.ExercisesFor(ctx, bodyPart)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) || errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError("unknown body part: " + bodyPart), nil
		}
		h.log.Error("mcp get_exercises", "bodyPart", bodyPart, "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSavedPrograms(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	programs, err := h.ds.SavedPrograms(ctx)
	if err != nil {
		h.log.Error("mcp list_saved_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(programs)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
