// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-jira-kit/internal/config"
	"github.com/MKhiriev/go-jira-kit/internal/logger"
)

// apiVersion is the Jira REST API version all endpoint paths hang off.
const apiVersion = "3"

// unreadableBody substitutes the response body in error reports when the
// body could not be read.
const unreadableBody = "<unable to read response body>"

// Options controls client construction.
type Options struct {
	// ConfigDir is the start directory for the .claude/env search. Empty
	// means the directory of the running executable.
	ConfigDir string

	// Timeout bounds each outbound request. Zero leaves resty's default
	// (no timeout) in place.
	Timeout time.Duration

	// Logger receives per-request debug entries. Nil means no logging.
	Logger *logger.Logger
}

// Client is a Jira REST API client. Construction resolves configuration
// and authentication once; the resulting base URL and Authorization header
// never change for the lifetime of the client.
//
// Each verb method performs exactly one network attempt and funnels the
// response through a single handler, so every caller sees the same
// error shape. There is no retry, caching, or pagination logic here.
type Client struct {
	// BaseURL is the normalized API root, always of the form
	// "<base>/rest/api/3/" with exactly one slash at each join.
	BaseURL string

	http   *resty.Client
	scheme config.AuthScheme
	log    *logger.Logger
}

// New builds a Client by running configuration discovery, file parsing,
// and auth resolution in sequence. Failures in that chain propagate
// unchanged as a [*config.Error].
func New(opts Options) (*Client, error) {
	envPath, err := config.Locate(opts.ConfigDir)
	if err != nil {
		return nil, err
	}
	vars, err := config.ParseEnvFile(envPath)
	if err != nil {
		return nil, err
	}
	creds, err := config.ResolveAuth(vars)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	baseURL := strings.TrimRight(creds.BaseURL, "/") + "/rest/api/" + apiVersion + "/"

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", creds.Auth.AuthorizationHeader()).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{
		BaseURL: baseURL,
		http:    httpClient,
		scheme:  creds.Auth.Scheme,
		log:     log,
	}, nil
}

// AuthScheme returns the diagnostic label of the resolved authentication
// method ("pat" or "basic").
func (c *Client) AuthScheme() config.AuthScheme {
	return c.scheme
}

// Get performs a GET request against the endpoint path with optional
// query parameters.
func (c *Client) Get(ctx context.Context, path string, query map[string]string) (any, error) {
	return c.execute(ctx, http.MethodGet, path, nil, query)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.execute(ctx, http.MethodPost, path, body, nil)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.execute(ctx, http.MethodPut, path, body, nil)
}

// Delete performs a DELETE request against the endpoint path with optional
// query parameters.
func (c *Client) Delete(ctx context.Context, path string, query map[string]string) (any, error) {
	return c.execute(ctx, http.MethodDelete, path, nil, query)
}

func (c *Client) execute(ctx context.Context, method, path string, body any, query map[string]string) (any, error) {
	// A leading slash would let the path escape the versioned API root.
	endpoint := strings.TrimLeft(path, "/")
	requestID := uuid.NewString()

	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Execute(method, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", endpoint).
		Int("status", resp.StatusCode()).
		Msg("jira api call")

	return handleResponse(resp)
}

// handleResponse classifies one HTTP response into the three terminal
// outcomes: error, empty success, decoded success.
func handleResponse(resp *resty.Response) (any, error) {
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		body := unreadableBody
		if raw := resp.Body(); raw != nil {
			body = string(raw)
		}
		return nil, &APIError{
			Message:    "jira api request failed: " + resp.Status(),
			StatusCode: resp.StatusCode(),
			Body:       body,
		}
	}

	// 204 means no body by contract; never attempt a decode.
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}

	raw := resp.Body()
	// Some endpoints answer 200/201 with an empty body. Only a truly empty
	// body qualifies; whitespace is an invalid JSON document like any other.
	if len(raw) == 0 {
		return nil, nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &APIError{
			Message:    "failed to parse JSON response from jira api",
			StatusCode: resp.StatusCode(),
			Body:       string(raw),
		}
	}

	return payload, nil
}
