//
// Tencent is pleased to support the open source community by making trpc-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package client provides an HTTP client for the Pexels photo search API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trpc.group/trpc-go/trpc-agent-devkit/internal/json"
)

// maxErrorBody bounds how much of a failed response is kept as the message.
const maxErrorBody = 512

// Client talks to the Pexels search endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// New creates a client. A nil httpClient selects http.DefaultClient.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Params are the query parameters of one search.
type Params struct {
	Query       string
	Orientation string
	PerPage     int
	// Color is omitted from the request when empty.
	Color string
}

// FlexibleString unmarshals both JSON strings and numbers.
type FlexibleString string

// UnmarshalJSON implements json.Unmarshaler.
func (fs *FlexibleString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*fs = FlexibleString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %s", data)
	}
	*fs = FlexibleString(n.String())
	return nil
}

// String returns the string form.
func (fs FlexibleString) String() string {
	return string(fs)
}

// Response is the body of a successful search.
type Response struct {
	TotalResults int     `json:"total_results"`
	Page         int     `json:"page"`
	PerPage      int     `json:"per_page"`
	Photos       []Photo `json:"photos"`
}

// Photo is one search hit.
type Photo struct {
	ID           FlexibleString `json:"id"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	URL          string         `json:"url"`
	Alt          string         `json:"alt"`
	Photographer string         `json:"photographer"`
	Src          Src            `json:"src"`
}

// Src lists the renditions of a photo.
type Src struct {
	Original string `json:"original"`
	Large    string `json:"large"`
	Medium   string `json:"medium"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements error.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("pexels: http status %d", e.StatusCode)
	}
	return fmt.Sprintf("pexels: http status %d: %s", e.StatusCode, e.Message)
}

// Search performs one GET against the search endpoint.
func (c *Client) Search(ctx context.Context, p Params) (*Response, error) {
	q := url.Values{}
	q.Set("query", p.Query)
	if p.Orientation != "" {
		q.Set("orientation", p.Orientation)
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Color != "" {
		q.Set("color", p.Color)
	}

	sep := "?"
	if strings.Contains(c.baseURL, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+sep+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

// errorMessage extracts the provider's message: the JSON "error" field when
// present, the trimmed body text otherwise.
func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	msg := string(bytes.TrimSpace(body))
	if len(msg) > maxErrorBody {
		msg = msg[:maxErrorBody]
	}
	return msg
}
