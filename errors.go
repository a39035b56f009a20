// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// An UnexpectedStatusError is returned when a request receives a
// status code outside the effective allow-list and the status is
// either 404 or not an HTTP error status (for example a disallowed
// 201 or 302). Disallowed 4xx and 5xx statuses other than 404 are
// instead surfaced as a *url.Error from the transport layer; see the
// Session documentation.
//
// The session logs the error at error level before returning it.
type UnexpectedStatusError struct {
	// URL is the URL the request was issued against.
	URL string
	// StatusCode is the disallowed HTTP status code.
	StatusCode int
	// Reason is the status text accompanying the status code.
	Reason string
	// Body is the response body, buffered in full.
	Body string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("httpsess: unexpected status code for %q: received status code %d, reason %q, body %q",
		e.URL, e.StatusCode, e.Reason, e.Body)
}

// An UnexpectedResultError is returned by Response.JSON when the
// response body cannot be parsed as JSON. It carries the status code
// and reason of the response the body came from, along with the raw
// body and the underlying decode error.
//
// The error is logged at error level before being returned.
type UnexpectedResultError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Reason is the status text accompanying the status code.
	Reason string
	// Body is the unparseable response body.
	Body string
	// Cause is the underlying decode error.
	Cause error
}

func (e *UnexpectedResultError) Error() string {
	return fmt.Sprintf("httpsess: unexpected request result: received %d - %s: %v",
		e.StatusCode, e.Reason, e.Cause)
}

// Unwrap returns the underlying decode error.
func (e *UnexpectedResultError) Unwrap() error { return e.Cause }

// A RateLimitedError is returned whenever a request receives HTTP 429,
// regardless of the allow-list in effect. Rate limiting is an expected
// and usually recoverable outcome, so the session logs it at debug
// level only and the default retry policy retries it.
type RateLimitedError struct {
	// URL is the URL the request was issued against.
	URL string
	// StatusCode is always 429.
	StatusCode int
	// Reason is the status text accompanying the status code.
	Reason string
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("httpsess: rate limited on %q: received status code %d, reason %q",
		e.URL, e.StatusCode, e.Reason)
}

// An HTTPStatusError reports a disallowed 4xx or 5xx status code other
// than 404. The session wraps it in a *url.Error, mirroring how the
// transport layer itself reports request failures, so callers handle
// both with a single errors.As.
type HTTPStatusError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the full status line text, e.g. "503 Service Unavailable".
	Status string
}

func (e *HTTPStatusError) Error() string {
	if e.Status != "" {
		return "httpsess: server returned " + e.Status
	}
	return "httpsess: server returned status code " + strconv.Itoa(e.StatusCode)
}

// statusReason extracts the reason phrase from a response status line,
// falling back to the standard text for the code.
func statusReason(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	if resp.Status != "" {
		return resp.Status
	}
	return http.StatusText(resp.StatusCode)
}
