// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package client is a small Discord REST client. It handles
// authentication, request pacing and 429 responses so that callers only
// ever see decoded objects or an error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/TheRockettek/Sandwich-Users/events"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Discord allows 50 requests per second per bot token.
const (
	DefaultRateLimit rate.Limit = 50
	DefaultBurst                = 50
)

// Client performs authenticated REST requests. It is safe for
// concurrent use.
type Client struct {
	// Authentication token, always prefixed with "Bot "
	Token string

	// The user agent used for REST APIs
	UserAgent string

	// Base URL requests are made against, EndpointAPI by default
	BaseURL string

	// How many times a ratelimited request is retried before giving up
	MaxRestRetries int

	// The http client used for REST requests
	HTTP *http.Client

	limiter *rate.Limiter
	log     zerolog.Logger
}

// Option changes the Client built by NewClient.
type Option func(*Client)

// WithHTTPClient replaces the default http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTP = hc }
}

// WithBaseURL changes where requests are sent to.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.BaseURL = baseURL
	}
}

// WithLogger sets the logger used for ratelimit warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRateLimit changes how many requests per second are allowed through.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// WithMaxRestRetries changes how often a 429 is retried.
func WithMaxRestRetries(retries int) Option {
	return func(c *Client) { c.MaxRestRetries = retries }
}

// NewClient creates a new REST client. Bot will be prepended to the
// token if it is not added.
func NewClient(token string, opts ...Option) (c *Client, err error) {
	if token == "" {
		return nil, ErrNoTokenProvided
	}

	if !strings.HasPrefix(token, "Bot ") {
		token = "Bot " + token
	}

	c = &Client{
		Token:          token,
		UserAgent:      "DiscordBot (https://github.com/TheRockettek/Sandwich-Users, v" + VERSION + ")",
		BaseURL:        EndpointAPI,
		MaxRestRetries: 3,
		HTTP:           &http.Client{Timeout: (20 * time.Second)},
		limiter:        rate.NewLimiter(DefaultRateLimit, DefaultBurst),
		log:            zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return
}

// FetchJSON sends body as JSON and decodes the response into out. Either
// may be nil.
func (c *Client) FetchJSON(ctx context.Context, method, path string, body interface{}, out interface{}) (err error) {
	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var status int
	var header http.Header
	var response []byte

	for attempt := 0; ; attempt++ {
		if err = c.limiter.Wait(ctx); err != nil {
			return
		}

		status, header, response, err = c.do(ctx, method, path, payload)
		if err != nil {
			return
		}

		switch {
		case status >= 200 && status < 300:
			if out == nil || len(response) == 0 {
				return nil
			}
			if err = json.Unmarshal(response, out); err != nil {
				return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
			}
			return nil

		case status == http.StatusTooManyRequests:
			rl := events.TooManyRequests{}
			_ = json.Unmarshal(response, &rl)

			if attempt >= c.MaxRestRetries {
				return &RestError{Method: method, Path: path, StatusCode: status, Message: rl.Message}
			}

			retryAfter := retryAfterDuration(rl, header)
			c.log.Warn().Str("path", path).Dur("retry_after", retryAfter).Bool("global", rl.Global).
				Int("attempt", attempt+1).Msg("request was ratelimited")

			timer := time.NewTimer(retryAfter)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}

		default:
			restErr := &RestError{Method: method, Path: path, StatusCode: status}
			eb := events.ErrorBody{}
			if json.Unmarshal(response, &eb) == nil {
				restErr.Code, restErr.Message = eb.Code, eb.Message
			}
			return restErr
		}
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte) (status int, header http.Header, response []byte, err error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return
	}

	req.Header.Set("Authorization", c.Token)
	req.Header.Set("User-Agent", c.UserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		err = fmt.Errorf("%s %s: %w", method, path, err)
		return
	}

	defer func() {
		resp.Body.Close()
	}()

	response, err = ioutil.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read %s %s: %w", method, path, err)
		return
	}

	return resp.StatusCode, resp.Header, response, nil
}

// retryAfterDuration prefers the body's retry_after and falls back to
// the Retry-After header, both in seconds.
func retryAfterDuration(rl events.TooManyRequests, header http.Header) time.Duration {
	seconds := rl.RetryAfter
	if seconds <= 0 {
		seconds, _ = strconv.ParseFloat(header.Get("Retry-After"), 64)
	}
	if seconds <= 0 {
		seconds = 1
	}
	return time.Duration(seconds * float64(time.Second))
}
