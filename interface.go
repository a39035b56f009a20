// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import "context"

// A Requester groups the verb methods implemented by Session. Code
// that consumes a session should usually depend on Requester so tests
// can substitute a fake.
//
// Any other Requester implementation must behave substantially the
// same as Session: apply a status code allow-list, never return a
// Response for a disallowed status, and fail every 429 with
// *RateLimitedError.
type Requester interface {
	Get(ctx context.Context, url string, opts *Options) (*Response, error)
	Post(ctx context.Context, url string, body any, opts *Options) (*Response, error)
	Head(ctx context.Context, url string, opts *Options) (*Response, error)
	Patch(ctx context.Context, url string, body any, opts *Options) (*Response, error)
}

var _ Requester = (*Session)(nil)
