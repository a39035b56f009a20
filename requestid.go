// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import "github.com/google/uuid"

// RequestIDConfig controls correlation id propagation. When Header is
// non-empty, the session stamps every outgoing request with a fresh id
// under that header, unless the caller already set one.
type RequestIDConfig struct {
	// Header is the header name carrying the id, e.g. "X-Request-ID".
	// If empty, request id injection is disabled.
	Header string

	// New generates an id. If nil, DefaultRequestID is used.
	New func() string
}

// DefaultRequestID returns a random UUID string.
func DefaultRequestID() string {
	return uuid.NewString()
}
