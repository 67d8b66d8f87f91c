package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/justsurfingit/jobby-board/internal/dtos"
)

const DefaultBaseURL = "https://apis.ccbp.in"

type Config struct {
	BaseURL string
	// Timeout of zero means requests wait as long as the caller's context allows.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// APIClient talks to the remote job API. It sends exactly one HTTP request
// per call and never retries on its own.
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func NewAPIClient(cfg Config) *APIClient {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIClient{BaseURL: base, HTTPClient: client, Logger: logger}
}

// response is a fully read upstream reply.
type response struct {
	status int
	body   []byte
}

func (r response) ok() bool {
	return r.status >= http.StatusOK && r.status < http.StatusMultipleChoices
}

// errorMessage pulls error_msg out of a failure body, if there is one.
func (r response) errorMessage() (string, bool) {
	var payload dtos.ErrorResponse
	if err := json.Unmarshal(r.body, &payload); err != nil || payload.ErrorMsg == "" {
		return "", false
	}
	return payload.ErrorMsg, true
}

func (c *APIClient) do(ctx context.Context, endpoint, method, url string, body any, token string) (response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return response{}, &RequestError{Endpoint: endpoint, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return response{}, &RequestError{Endpoint: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	upstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return response{}, &RequestError{Endpoint: endpoint, Err: fmt.Errorf("send request: %w", err)}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{}, &RequestError{Endpoint: endpoint, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	return response{status: resp.StatusCode, body: payload}, nil
}

func (c *APIClient) record(endpoint, outcome string, err error) {
	upstreamRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	if err != nil {
		c.Logger.Debug("upstream call failed",
			zap.String("endpoint", endpoint),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
	}
}
