package archive

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude/physioplan/internal/models"
	_ "modernc.org/sqlite"
)

// SubmissionLog records drafts the archive has confirmed, keyed by content
// hash, so a re-run of a push never double-submits the same program.
type SubmissionLog struct {
	db *sql.DB
}

// OpenSubmissionLog opens (or creates) the SQLite log at dir/state.db.
func OpenSubmissionLog(dir string) (*SubmissionLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS submitted_programs (
		hash         TEXT PRIMARY KEY,
		program_id   INTEGER NOT NULL,
		name         TEXT NOT NULL,
		submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &SubmissionLog{db: db}, nil
}

// IsSubmitted checks whether a draft with identical content was already
// confirmed by the archive.
func (l *SubmissionLog) IsSubmitted(draft models.ProgramDraft) (bool, error) {
	hash, err := HashDraft(draft)
	if err != nil {
		return false, err
	}
	var count int
	err = l.db.QueryRow(
		`SELECT COUNT(*) FROM submitted_programs WHERE hash = ?`, hash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Record stores a confirmed save. Satisfies builder.SubmissionRecorder.
func (l *SubmissionLog) Record(program models.SavedProgram) error {
	hash, err := HashDraft(models.ProgramDraft{
		Name:           program.Name,
		Exercises:      program.Exercises,
		Days:           program.Days,
		SessionsPerDay: program.SessionsPerDay,
		Notes:          program.Notes,
	})
	if err != nil {
		return err
	}
	_, err = l.db.Exec(
		`INSERT OR REPLACE INTO submitted_programs (hash, program_id, name) VALUES (?, ?, ?)`,
		hash, program.ID, program.Name,
	)
	return err
}

// Close closes the state database.
func (l *SubmissionLog) Close() error {
	return l.db.Close()
}

// HashDraft computes the SHA-256 hash of a draft's canonical JSON form. The
// name is excluded: it carries the assembly timestamp, and two assemblies of
// the same content must hash the same.
func HashDraft(draft models.ProgramDraft) (string, error) {
	draft.Name = ""
	data, err := json.Marshal(draft)
	if err != nil {
		return "", fmt.Errorf("hashing draft: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
