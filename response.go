// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"encoding/json"
	"net/http"
)

// A Response is a read-only view of one completed HTTP exchange whose
// status code was judged acceptable. The body has already been read in
// full and the underlying connection released, so a Response may be
// kept and inspected at leisure.
type Response struct {
	url    string
	raw    *http.Response
	body   []byte
	logger Logger
}

func newResponse(url string, raw *http.Response, body []byte, logger Logger) *Response {
	return &Response{url: url, raw: raw, body: body, logger: logger}
}

// URL returns the URL the request was issued against.
func (r *Response) URL() string { return r.url }

// Header returns the response headers.
func (r *Response) Header() http.Header { return r.raw.Header }

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int { return r.raw.StatusCode }

// Reason returns the reason phrase accompanying the status code, e.g.
// "OK" for a 200.
func (r *Response) Reason() string { return statusReason(r.raw) }

// Bytes returns the buffered response body. The returned slice must
// not be modified.
func (r *Response) Bytes() []byte { return r.body }

// Text returns the response body as a string.
func (r *Response) Text() string { return string(r.body) }

// JSON unmarshals the response body into dst. If the body is not valid
// JSON, JSON logs at error level and returns an
// *UnexpectedResultError carrying the response's status code, reason
// and raw body.
func (r *Response) JSON(dst any) error {
	err := json.Unmarshal(r.body, dst)
	if err == nil {
		return nil
	}
	resErr := &UnexpectedResultError{
		StatusCode: r.StatusCode(),
		Reason:     r.Reason(),
		Body:       r.Text(),
		Cause:      err,
	}
	r.logger.Error("unexpected request result",
		"url", r.url,
		"status", r.StatusCode(),
		"reason", r.Reason(),
		"error", err)
	return resErr
}

// String returns the text body.
func (r *Response) String() string { return r.Text() }
