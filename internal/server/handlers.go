package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/physioplan/internal/models"
	"github.com/claude/physioplan/internal/storage"
)

func (s *Server) handleBodyParts(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.BodyParts(r.Context())
	if err != nil {
		s.log.Error("list body parts", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleExercisesByBodyPart(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}

	result, err := s.store.ExercisesFor(r.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "body part not found"})
			return
		}
		s.log.Error("exercises lookup", "bodyPart", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.store.SavedPrograms(r.Context())
	if err != nil {
		s.log.Error("list programs", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleSaveProgram(w http.ResponseWriter, r *http.Request) {
	var draft models.ProgramDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	saved, err := s.store.AppendProgram(r.Context(), draft)
	if err != nil {
		s.log.Error("save program", "name", draft.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.log.Info("program saved", "id", saved.ID, "name", saved.Name)
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleClearPrograms(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ClearPrograms(r.Context()); err != nil {
		s.log.Error("clear programs", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
