// Package catalog provides the read-only reference catalog client: body
// parts and the exercise templates belonging to them.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/physioplan/internal/models"
)

// ErrNotFound is returned when the queried body part is unknown to the
// catalog. Callers surface it as a lookup failure; it never mutates any
// builder state.
var ErrNotFound = errors.New("body part not found")

// Client queries the catalog over the PhysioPlan REST API.
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

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("catalog: read body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// ListBodyParts returns the body part names in catalog order. Idempotent and
// cacheable per session.
func (c *Client) ListBodyParts(ctx context.Context) ([]string, error) {
	body, status, err := c.get(ctx, "/api/v1/bodyparts", nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog: bodyparts returned %d: %s", status, body)
	}

	var names []string
	if err := json.Unmarshal(body, &names); err != nil {
		return nil, fmt.Errorf("catalog: decode bodyparts: %w", err)
	}
	return names, nil
}

// ListExercisesFor returns the templates for a body part, matched
// case-insensitively by the server. Returns ErrNotFound for an unknown name.
func (c *Client) ListExercisesFor(ctx context.Context, bodyPart string) (*models.ExercisesByBodyPart, error) {
	params := url.Values{}
	params.Set("name", bodyPart)

	body, status, err := c.get(ctx, "/api/v1/exercises", params)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("catalog: %q: %w", bodyPart, ErrNotFound)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog: exercises returned %d: %s", status, body)
	}

	var result models.ExercisesByBodyPart
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("catalog: decode exercises: %w", err)
	}
	return &result, nil
}
