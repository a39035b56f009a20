// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"errors"
	"io"
	"net/http"
	"net/url"
)

// Options carries the per-call settings accepted by every verb method.
// A nil *Options is equivalent to the zero value. Each field is
// optional; an unset field falls back to the session default, and
// failing that to the package default. Fallback is per field, not a
// merge: a non-empty Header replaces the session's default headers
// outright.
type Options struct {
	// Header contains the headers to send. If empty, the session's
	// default headers are sent instead.
	Header http.Header

	// Auth supplies HTTP basic authentication credentials.
	Auth *BasicAuth

	// FollowRedirects overrides the verb's redirect default (Head does
	// not follow redirects, the other verbs do). Only effective when
	// the underlying doer is an *http.Client.
	FollowRedirects *bool

	// Timeouts overrides the session's connect/read timeout pair for
	// this call.
	Timeouts *Timeouts

	// StatusCodes overrides the session's allow-list for this call.
	// Use AnyStatus to accept every status code.
	StatusCodes AllowList
}

// BasicAuth is an HTTP basic authentication credential pair.
type BasicAuth struct {
	Username string
	Password string
}

const badBodyTypeMsg = "httpsess: invalid body type (use nil, string, " +
	"[]byte, url.Values, io.Reader or io.ReadCloser)"

// BodyBytes converts a generic body parameter to a byte slice for use
// as a request body, along with the content type implied by the body's
// form, if any.
//
// The body parameter may be nil (empty body), a string, a []byte, a
// url.Values (form-encoded, with content type
// application/x-www-form-urlencoded), an io.Reader, or an
// io.ReadCloser. A reader is read to the end and, if it implements
// Closer, closed. Any other type is an error.
func BodyBytes(body any) ([]byte, string, error) {
	switch x := body.(type) {
	case nil:
		return nil, "", nil
	case string:
		return []byte(x), "", nil
	case []byte:
		return x, "", nil
	case url.Values:
		return []byte(x.Encode()), "application/x-www-form-urlencoded", nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, "", err
		}
		if err = x.Close(); err != nil {
			return nil, "", err
		}
		return b, "", nil
	case io.Reader:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, "", err
		}
		return b, "", nil
	default:
		return nil, "", errors.New(badBodyTypeMsg)
	}
}
