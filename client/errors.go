// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoTokenProvided is when no token was passed to the Client
var ErrNoTokenProvided = errors.New("no token was provided")

// ErrUnauthorized is returned when the token used to authenticate is not valid.
var ErrUnauthorized = errors.New("invalid token passed")

// ErrForbidden is returned when the token lacks access to the resource.
var ErrForbidden = errors.New("missing access")

// ErrNotFound is returned when the requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrRateLimited is returned once a request is still limited after
// MaxRestRetries attempts.
var ErrRateLimited = errors.New("request was ratelimited")

// RestError is a failed response from the API. It matches the sentinel
// errors above with errors.Is.
type RestError struct {
	Method     string
	Path       string
	StatusCode int

	// Discord's JSON error code and message, when the body carried them.
	Code    int
	Message string
}

func (e *RestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s (code %d)", e.Method, e.Path, e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is maps the status code to its sentinel error.
func (e *RestError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}
