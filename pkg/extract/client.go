// Package extract talks to the article-extraction microservice. The
// service fetches a URL, pulls out readable text, and flags hub pages
// that hold several stories instead of one.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fitellieburger/ask-better-questions/internal/model"
)

// Response is the extractor's answer for one URL. Treated as
// untrusted input: text still passes the minimum-length gate and
// candidates are surfaced verbatim for the user to pick from.
type Response struct {
	URL        string                   `json:"url"`
	ChosenURL  string                   `json:"chosen_url"`
	Title      string                   `json:"title"`
	Text       string                   `json:"text"`
	IsMulti    bool                     `json:"is_multi"`
	Candidates []model.ExtractCandidate `json:"candidates"`
}

// Extractor is the piece of the extraction service the resolver needs.
type Extractor interface {
	Extract(ctx context.Context, url string) (*Response, error)
}

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type extractRequest struct {
	URL               string `json:"url"`
	IncludeCandidates bool   `json:"include_candidates"`
}

func (c *Client) Extract(ctx context.Context, url string) (*Response, error) {
	payload, err := json.Marshal(extractRequest{URL: url, IncludeCandidates: true})
	if err != nil {
		return nil, fmt.Errorf("extractor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("extractor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Extractor-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extractor fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("extractor failed: status %d: %s", resp.StatusCode, body)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("extractor decode: %w", err)
	}

	return &out, nil
}
