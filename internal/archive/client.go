// Package archive provides the saved-program archive client and the local
// submission log.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/physioplan/internal/models"
)

// Client submits drafts to and lists programs from the PhysioPlan REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client targeting the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit POSTs a draft to the archive and returns the stored record with its
// assigned ID. On any failure the caller's draft state must stay untouched;
// the builder session clears only after a nil error from here.
func (c *Client) Submit(ctx context.Context, draft models.ProgramDraft) (*models.SavedProgram, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("archive: marshal draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/programs", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("archive: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("archive: submit: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("archive: read body: %w", err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive: submit returned %d: %s", resp.StatusCode, body)
	}

	var saved models.SavedProgram
	if err := json.Unmarshal(body, &saved); err != nil {
		return nil, fmt.Errorf("archive: decode saved program: %w", err)
	}
	return &saved, nil
}

// ListSaved returns all saved programs in archive order, oldest first.
func (c *Client) ListSaved(ctx context.Context) ([]models.SavedProgram, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/programs", nil)
	if err != nil {
		return nil, fmt.Errorf("archive: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("archive: list: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("archive: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive: list returned %d: %s", resp.StatusCode, body)
	}

	var programs []models.SavedProgram
	if err := json.Unmarshal(body, &programs); err != nil {
		return nil, fmt.Errorf("archive: decode programs: %w", err)
	}
	return programs, nil
}

// Clear bulk-deletes every saved program in the archive.
func (c *Client) Clear(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/v1/programs", nil)
	if err != nil {
		return fmt.Errorf("archive: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("archive: clear: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("archive: clear returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
