package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/domain/services"
)

// NotSpecifiedLocation is filled in client-side when a report is submitted
// without a location. The server uses a different literal when it defaults
// the location of an approved report's struggle.
const NotSpecifiedLocation = "Not specified"

// Client talks to a Citizen's Voice service instance
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the service at baseURL
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// fetchCollection performs a GET against a collection function endpoint and
// unwraps the {"<key>": [...]} envelope.
func fetchCollection[T any](ctx context.Context, c *Client, path, key string) ([]T, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("response is missing the %q collection", key)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("malformed %s payload: %w", key, err)
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
			return nil, fmt.Errorf("request failed: %s", failure.Error)
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return body, nil
}

// Struggles returns a container over the struggles collection
func (c *Client) Struggles() *Collection[models.Struggle] {
	return NewCollection(func(ctx context.Context) ([]models.Struggle, error) {
		return fetchCollection[models.Struggle](ctx, c, "/functions/struggles", "struggles")
	})
}

// Resources returns a container over the resources collection
func (c *Client) Resources() *Collection[models.Resource] {
	return NewCollection(func(ctx context.Context) ([]models.Resource, error) {
		return fetchCollection[models.Resource](ctx, c, "/functions/resources", "resources")
	})
}

// Communities returns a container over the communities collection
func (c *Client) Communities() *Collection[models.Community] {
	return NewCollection(func(ctx context.Context) ([]models.Community, error) {
		return fetchCollection[models.Community](ctx, c, "/functions/communities", "communities")
	})
}

// FetchLiveResource fetches the current petroleum snapshot. The snapshot is
// regenerated per call, so two calls may return different numbers.
func (c *Client) FetchLiveResource(ctx context.Context) (*services.LiveResourceSnapshot, error) {
	body, err := c.get(ctx, "/functions/resources/live")
	if err != nil {
		return nil, err
	}

	var snapshot services.LiveResourceSnapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("malformed snapshot payload: %w", err)
	}
	return &snapshot, nil
}

// ReportSubmission is the payload of a citizen report
type ReportSubmission struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Location     string   `json:"location"`
	EvidenceURLs []string `json:"evidence_urls"`
}

// SubmitReport submits a report through the authenticated API. An empty
// location is replaced with the "Not specified" literal before the call.
func (c *Client) SubmitReport(ctx context.Context, token string, submission ReportSubmission) (*models.Report, error) {
	if strings.TrimSpace(submission.Location) == "" {
		submission.Location = NotSpecifiedLocation
	}

	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/reports", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Code    int           `json:"code"`
		Message string        `json:"message"`
		Data    models.Report `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("malformed response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("submission rejected: %s", envelope.Message)
	}
	return &envelope.Data, nil
}
