package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Card is the subset of a Scryfall card used for enrichment.
type Card struct {
	Name          string   `json:"name"`
	ColorIdentity []string `json:"color_identity"`
}

type cardIdentifier struct {
	Name string `json:"name"`
}

type collectionRequest struct {
	Identifiers []cardIdentifier `json:"identifiers"`
}

type collectionResponse struct {
	Object   string           `json:"object"`
	NotFound []cardIdentifier `json:"not_found"`
	Data     []Card           `json:"data"`
}

// StatusError is returned when the collection endpoint answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("collection request failed with status %d: %s", e.StatusCode, e.Body)
}

// ScryfallClient performs rate limited /cards/collection lookups.
type ScryfallClient struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// NewScryfallClient creates a client from cfg.
func NewScryfallClient(cfg Config) *ScryfallClient {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	delay := time.Duration(cfg.DelayMs) * time.Millisecond

	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	return &ScryfallClient{
		httpClient:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
		rateLimiter: rate.NewLimiter(limit, 1),
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
	}
}

// Collection looks up one chunk of card names. Names Scryfall does not know
// are absent from the result.
func (c *ScryfallClient) Collection(ctx context.Context, names []string) ([]Card, error) {
	if len(names) == 0 {
		return nil, nil
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	identifiers := make([]cardIdentifier, len(names))
	for i, name := range names {
		identifiers[i] = cardIdentifier{Name: name}
	}
	body, err := json.Marshal(collectionRequest{Identifiers: identifiers})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/cards/collection", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	var out collectionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	return out.Data, nil
}
