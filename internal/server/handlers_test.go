package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/claude/physioplan/internal/models"
	"github.com/claude/physioplan/internal/storage"
)

func testServer(t *testing.T) (*Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, log), store
}

func seedCatalog(t *testing.T, store *storage.Store) {
	t.Helper()
	err := store.ReplaceCategories(context.Background(), []models.ExerciseCategory{
		{Name: "Knee", Exercises: []models.ExerciseTemplate{{ID: 1, Name: "Squat"}}},
		{Name: "Shoulder", Exercises: []models.ExerciseTemplate{{ID: 2, Name: "Wall Slide"}}},
	})
	if err != nil {
		t.Fatalf("ReplaceCategories: %v", err)
	}
}

// TestHandleBodyParts verifies GET /api/v1/bodyparts returns the catalog
// names in order.
func TestHandleBodyParts(t *testing.T) {
	srv, store := testServer(t)
	seedCatalog(t, store)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bodyparts", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var names []string
	if err := json.NewDecoder(rec.Body).Decode(&names); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(names) != 2 || names[0] != "Knee" || names[1] != "Shoulder" {
		t.Errorf("names = %v, want [Knee Shoulder]", names)
	}
}

// TestHandleExercisesByBodyPart verifies case-insensitive lookup and the
// {bodyPart, exercises} response shape.
func TestHandleExercisesByBodyPart(t *testing.T) {
	srv, store := testServer(t)
	seedCatalog(t, store)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/exercises?name=knee", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var result models.ExercisesByBodyPart
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if result.BodyPart != "Knee" {
		t.Errorf("bodyPart = %q, want Knee", result.BodyPart)
	}
	if len(result.Exercises) != 1 || result.Exercises[0].Name != "Squat" {
		t.Errorf("exercises = %+v", result.Exercises)
	}
}

// TestHandleExercisesUnknownBodyPart verifies a 404 for an unknown body part.
func TestHandleExercisesUnknownBodyPart(t *testing.T) {
	srv, store := testServer(t)
	seedCatalog(t, store)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/exercises?name=Elbow", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestHandleExercisesMissingName verifies the name parameter is required.
func TestHandleExercisesMissingName(t *testing.T) {
	srv, _ := testServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/exercises", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleSaveProgram verifies POST assigns sequential IDs and the record
// round-trips through GET.
func TestHandleSaveProgram(t *testing.T) {
	srv, _ := testServer(t)

	body := `{
		"name": "Combo 1/1/2025, 9:00:00 AM",
		"exercises": [{"exercise":"Squat","sets":3,"reps":10,"holdTime":0,"side":"Right","stage":"Beginner","weight":0}],
		"days": ["M","W"],
		"sessionsPerDay": 2,
		"notes": "ice after"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
	}
	var saved models.SavedProgram
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if saved.ID != 1 {
		t.Errorf("id = %d, want 1", saved.ID)
	}

	// Second save gets the next ID.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/programs", strings.NewReader(body))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if saved.ID != 2 {
		t.Errorf("second id = %d, want 2", saved.ID)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/programs", nil))
	var programs []models.SavedProgram
	if err := json.NewDecoder(rec.Body).Decode(&programs); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(programs) != 2 {
		t.Fatalf("programs = %d, want 2", len(programs))
	}
	if programs[0].Exercises[0].Exercise != "Squat" || programs[0].Exercises[0].Side != "Right" {
		t.Errorf("exercise = %+v", programs[0].Exercises[0])
	}
}

// TestHandleSaveProgramBadJSON verifies malformed bodies are rejected.
func TestHandleSaveProgramBadJSON(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/programs", strings.NewReader("{oops"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleClearPrograms verifies DELETE empties the archive and returns
// 204 with no body.
func TestHandleClearPrograms(t *testing.T) {
	srv, store := testServer(t)
	if _, err := store.AppendProgram(context.Background(), models.ProgramDraft{Name: "Combo A"}); err != nil {
		t.Fatalf("AppendProgram: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/programs", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/programs", nil))
	var programs []models.SavedProgram
	if err := json.NewDecoder(rec.Body).Decode(&programs); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(programs) != 0 {
		t.Errorf("programs = %d, want 0 after clear", len(programs))
	}
}

// TestHandleEmptyArchive verifies GET on a fresh store returns an empty JSON
// array, not null.
func TestHandleEmptyArchive(t *testing.T) {
	srv, _ := testServer(t)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/programs", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}
