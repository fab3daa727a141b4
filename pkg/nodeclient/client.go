// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package nodeclient talks to the node's local HTTP API. It performs single
// round trips: no retries, no queueing. Callers interpret status codes.
package nodeclient

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

	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// New returns a client for the node at address (host:port). Every request
// is bounded by timeout.
func New(address string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	base := address
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("nodeclient"),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues GET path?params and decodes the JSON response into out when out
// is non-nil.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &NetworkError{Method: http.MethodGet, Path: path, Err: err}
	}
	return c.do(req, path, out)
}

// Post issues POST path with body encoded as JSON; a nil body sends no
// payload.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s body: %w", path, err)
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, payload)
	if err != nil {
		return &NetworkError{Method: http.MethodPost, Path: path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed",
			zap.String("method", req.Method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err),
		)
		return &NetworkError{Method: req.Method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	c.log.Debug("request",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	if err != nil {
		return &NetworkError{Method: req.Method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &NetworkError{
			Method:     req.Method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	// opaque responses are kept verbatim, quoting bodies that are not JSON
	if raw, ok := out.(*json.RawMessage); ok {
		data = bytes.TrimSpace(data)
		if !json.Valid(data) {
			quoted, err := json.Marshal(string(data))
			if err != nil {
				return fmt.Errorf("decoding %s response: %w", path, err)
			}
			data = quoted
		}
		*raw = append((*raw)[:0], data...)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}
