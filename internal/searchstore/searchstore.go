// Package searchstore provides read access to dashboard state documents
// stored in an Elasticsearch-compatible backend.
//
// tenantd only ever reads from the backend: it fetches "index-pattern" and
// "config" documents out of a tenant's dashboard index and leaves all writes
// to the dashboard itself.
package searchstore

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
)

var (
	// ErrInvalidConfig indicates invalid configuration
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrIndexNotFound indicates the target index does not exist. This is
	// distinct from a search that matches zero documents.
	ErrIndexNotFound = errors.New("index not found")
)

// searchPageSize bounds a single fetch. Dashboard indices hold at most a few
// hundred documents per tenant.
const searchPageSize = 1000

// Searcher fetches documents of one kind from one index.
type Searcher interface {
	// Search returns all documents of the given kind in the index, in
	// backend order. A missing index yields ErrIndexNotFound, not an
	// empty response.
	Search(ctx context.Context, index, docKind string) (*Response, error)
}

// Response is the result of a Search call.
type Response struct {
	// Total is the backend-reported total hit count.
	Total int

	// Hits are the returned documents.
	Hits []Hit
}

// Hit is a single fetched document.
type Hit struct {
	// ID is the document identifier.
	ID string

	// Source is the raw document body, JSON.
	Source json.RawMessage
}

// Config holds configuration for the search client.
type Config struct {
	// URL is the backend base URL (e.g. http://localhost:9200)
	URL string

	// Timeout bounds a single search request.
	Timeout time.Duration
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%w: URL required", ErrInvalidConfig)
	}
	if _, err := url.Parse(c.URL); err != nil {
		return fmt.Errorf("%w: parsing URL: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Service implements Searcher over the backend's HTTP API.
type Service struct {
	config Config
	client *http.Client
}

// NewService creates a search client with the given configuration.
func NewService(config Config) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &Service{
		config: config,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Search fetches all documents of docKind from index.
//
// Documents are filtered on their "type" field, the way dashboard software
// stores typed documents in a single index.
func (s *Service) Search(ctx context.Context, index, docKind string) (*Response, error) {
	if index == "" {
		return nil, fmt.Errorf("%w: index required", ErrInvalidConfig)
	}
	if docKind == "" {
		return nil, fmt.Errorf("%w: document kind required", ErrInvalidConfig)
	}

	searchURL := fmt.Sprintf("%s/%s/_search?size=%d&q=%s",
		strings.TrimRight(s.config.URL, "/"),
		url.PathEscape(index),
		searchPageSize,
		url.QueryEscape("type:"+docKind))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, index)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(bodyBytes))
	}

	// Parse the standard search response envelope. "total" is a bare
	// number on older backends and an object on newer ones.
	var result struct {
		Hits struct {
			Total json.RawMessage `json:"total"`
			Hits  []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	out := &Response{
		Total: decodeTotal(result.Hits.Total),
		Hits:  make([]Hit, len(result.Hits.Hits)),
	}
	for i, h := range result.Hits.Hits {
		out.Hits[i] = Hit{ID: h.ID, Source: h.Source}
	}

	return out, nil
}

// decodeTotal handles both total formats: 42 and {"value": 42}.
func decodeTotal(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var obj struct {
		Value int `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}

	return 0
}
