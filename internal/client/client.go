// Package client provides an HTTP client for the stockswipe API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	apperrors "stockswipe/internal/errors"
	"stockswipe/internal/models"
)

// Health is the API's readiness report.
type Health struct {
	OK           bool `json:"ok"`
	HasOpenAIKey bool `json:"hasOpenAIKey"`
	HasGeminiKey bool `json:"hasGeminiKey"`
}

// APIClient communicates with the stockswipe API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetSnapshot fetches the merged market snapshot for ticker.
func (c *APIClient) GetSnapshot(ctx context.Context, ticker string) (models.MarketSnapshot, error) {
	var snap models.MarketSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/yahoo?symbol="+url.QueryEscape(ticker), nil, &snap); err != nil {
		return models.MarketSnapshot{}, fmt.Errorf("fetching snapshot: %w", err)
	}
	if snap.Spark == nil {
		snap.Spark = []float64{}
	}
	return snap, nil
}

// FetchRationale requests an AI insight. Every failure is reported as
// ErrInsightUnavailable so callers can offer a retry.
func (c *APIClient) FetchRationale(ctx context.Context, req models.RationaleRequest) (*models.AIInsight, error) {
	var in models.AIInsight
	if err := c.do(ctx, http.MethodPost, "/api/rationale", req, &in); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInsightUnavailable, fmt.Errorf("fetching rationale: %w", err))
	}
	return &in, nil
}

// Health fetches the API's health report.
func (c *APIClient) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &h); err != nil {
		return nil, fmt.Errorf("checking health: %w", err)
	}
	return &h, nil
}

// GeneratePicks triggers weekly picks generation and returns the count
// stored. An empty provider leaves the choice to the server.
func (c *APIClient) GeneratePicks(ctx context.Context, provider string) (int, error) {
	path := "/api/picks/generate"
	if provider != "" {
		path += "?provider=" + url.QueryEscape(provider)
	}
	var result struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return 0, fmt.Errorf("generating picks: %w", err)
	}
	return result.Count, nil
}

// DailyPicks fetches the weekly picks merged with live prices.
func (c *APIClient) DailyPicks(ctx context.Context) ([]models.DailyPick, error) {
	var result struct {
		Picks []models.DailyPick `json:"picks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/picks/daily", nil, &result); err != nil {
		return nil, fmt.Errorf("fetching daily picks: %w", err)
	}
	return result.Picks, nil
}

// do sends a JSON request and decodes a 200 response into out. Error
// responses are returned as *apperrors.AppError when the body carries one.
func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error *apperrors.AppError `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != nil && envelope.Error.Code != "" {
		envelope.Error.StatusCode = resp.StatusCode
		return envelope.Error
	}
	return fmt.Errorf("unexpected status %d", resp.StatusCode)
}
