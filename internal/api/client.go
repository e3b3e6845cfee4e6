package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	defaultTimeout  = 15 * time.Second
	connectTimeout  = 10 * time.Second
	idleConnTimeout = 90 * time.Second

	// The backend caches per key for five minutes; mirroring that window
	// client-side makes paging back through visited pages instant.
	cacheTTL        = 5 * time.Minute
	cacheSweep      = 10 * time.Minute
	requestIDHeader = "X-Request-ID"
)

// Client talks to the meta-search backend. All three reads are plain GETs
// with query-string parameters; responses are memoized per request key.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *gocache.Cache
	logger     *zap.Logger
}

// NewClient builds a client for the given base URL, e.g.
// "http://localhost:3000". The base URL must be non-empty; validating that
// is the caller's job (it is a fatal configuration error at startup).
func NewClient(baseURL string, logger *zap.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: connectTimeout,
		ForceAttemptHTTP2:   true,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   defaultTimeout,
		},
		cache:  gocache.New(cacheTTL, cacheSweep),
		logger: logger,
	}
}

// Search runs the main result query.
func (c *Client) Search(ctx context.Context, q SearchQuery) ([]Result, error) {
	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("page", strconv.Itoa(q.Page))
	if q.DateRange != "" {
		params.Set("date_range", q.DateRange)
	}
	if q.Region != "" {
		params.Set("region", q.Region)
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}

	var results []Result
	if err := c.get(ctx, "/api/search", params, &results); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}

// Autocomplete returns suggestion strings for the given prefix. Entries may
// embed simple markup tags around the highlighted part.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("query", query)

	var suggestions []string
	if err := c.get(ctx, "/api/autocomplete", params, &suggestions); err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}
	return suggestions, nil
}

// QuickAnswers returns definition snippets for the given query.
func (c *Client) QuickAnswers(ctx context.Context, query string) ([]QuickAnswer, error) {
	params := url.Values{}
	params.Set("query", query)

	var answers []QuickAnswer
	if err := c.get(ctx, "/api/quick-answers", params, &answers); err != nil {
		return nil, fmt.Errorf("quick answers: %w", err)
	}
	return answers, nil
}

// get performs one cached GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	cacheKey := path + "?" + params.Encode()
	if body, ok := c.cache.Get(cacheKey); ok {
		return json.Unmarshal(body.([]byte), out)
	}

	requestID := uuid.NewString()
	reqURL := c.baseURL + cacheKey

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warn("backend returned error status",
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("%s returned %s", path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	c.cache.SetDefault(cacheKey, body)
	c.logger.Debug("backend request completed",
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
