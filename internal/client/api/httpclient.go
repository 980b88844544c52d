package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/studygroups/internal/apperror"
	"github.com/dmitrijs2005/studygroups/internal/logging"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const apiPrefix = "/api/v1"

// errorMessagePaths are tried in order on a non-2xx body.
var errorMessagePaths = []string{"message", "error", "error.message", "errors.0.message"}

// Config configures HTTPClient.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// RequestsPerSecond <= 0 disables pacing.
	RequestsPerSecond float64
	Burst             int

	// Transport overrides http.DefaultTransport (tests).
	Transport http.RoundTripper
}

// HTTPClient implements Client over REST/JSON.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient validates cfg and builds a client whose requests carry the
// token returned by tokens.
func NewHTTPClient(cfg Config, tokens TokenSource, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	c := &HTTPClient{
		baseURL: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: base, tokens: tokens},
		},
		log: log.With("component", "api"),
	}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return c, nil
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + apiPrefix + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// doJSON sends in (when non-nil) as JSON and decodes the response into out
// (when non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.do(ctx, method, c.endpoint(path, query), contentType, body, out)
}

func (c *HTTPClient) do(ctx context.Context, method, target, contentType string, body io.Reader, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperror.NewTransport(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "url", target, "error", err)
		return apperror.NewTransport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug(ctx, "request rejected", "method", method, "url", target, "status", resp.StatusCode)
		return apperror.NewServer(resp.StatusCode, errorMessage(respBody))
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a readable error string from a JSON error body, or
// "" when the body has none.
func errorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, p := range errorMessagePaths {
		r := gjson.GetBytes(body, p)
		if r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return ""
}
