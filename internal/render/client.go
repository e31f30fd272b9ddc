package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/promoforge/adgen-backend/internal/config"
	"github.com/promoforge/adgen-backend/internal/models"
)

const (
	renderStatusSucceeded = "succeeded"
	renderStatusFailed    = "failed"

	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 60
)

type httpClient struct {
	baseURL      string
	apiKey       string
	pollInterval time.Duration
	maxAttempts  int
	client       *http.Client
}

func NewHTTPClient(cfg *config.Config) Provider {
	pollInterval := time.Duration(cfg.Render.PollIntervalSeconds) * time.Second
	if pollInterval == 0 {
		pollInterval = defaultPollInterval
	}
	maxAttempts := cfg.Render.MaxPollAttempts
	if maxAttempts == 0 {
		maxAttempts = defaultMaxPollAttempts
	}
	timeout := time.Duration(cfg.Render.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &httpClient{
		baseURL:      cfg.Render.Endpoint,
		apiKey:       cfg.Render.APIKey,
		pollInterval: pollInterval,
		maxAttempts:  maxAttempts,
		client:       &http.Client{Timeout: timeout},
	}
}

type renderRequest struct {
	Source models.RenderDocument `json:"source"`
}

type renderState struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	URL          string `json:"url"`
	ErrorMessage string `json:"error_message"`
}

// Render submits the document and polls until the provider reports a
// terminal state. Returns the output URL on success.
func (c *httpClient) Render(ctx context.Context, doc models.RenderDocument) (string, error) {
	submitted, err := c.submit(ctx, doc)
	if err != nil {
		return "", err
	}
	return c.waitForRender(ctx, submitted.ID)
}

func (c *httpClient) submit(ctx context.Context, doc models.RenderDocument) (*renderState, error) {
	body, err := json.Marshal(renderRequest{Source: doc})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal render request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/renders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return nil, fmt.Errorf("render provider returned http %d: %s", res.StatusCode, msg)
	}

	state := &renderState{}
	if err := json.NewDecoder(res.Body).Decode(state); err != nil {
		return nil, fmt.Errorf("failed to decode render response: %w", err)
	}
	if state.ID == "" {
		return nil, fmt.Errorf("render provider returned no render id")
	}
	return state, nil
}

func (c *httpClient) waitForRender(ctx context.Context, renderID string) (string, error) {
	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		state, err := c.getRender(ctx, renderID)
		if err != nil {
			return "", err
		}

		switch state.Status {
		case renderStatusSucceeded:
			if state.URL == "" {
				return "", fmt.Errorf("render %s succeeded but returned no url", renderID)
			}
			return state.URL, nil
		case renderStatusFailed:
			return "", fmt.Errorf("render failed: %s", state.ErrorMessage)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
	return "", fmt.Errorf("render %s timed out after %d attempts", renderID, c.maxAttempts)
}

func (c *httpClient) getRender(ctx context.Context, renderID string) (*renderState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/renders/"+renderID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build render status request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("render status request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return nil, fmt.Errorf("render provider returned http %d: %s", res.StatusCode, msg)
	}

	state := &renderState{}
	if err := json.NewDecoder(res.Body).Decode(state); err != nil {
		return nil, fmt.Errorf("failed to decode render status: %w", err)
	}
	return state, nil
}
