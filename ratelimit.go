// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"context"

	"golang.org/x/time/rate"
)

// A RateLimiter throttles outgoing requests. Wait blocks until an
// attempt may proceed or the context is done. The session consults it
// before every attempt, including retries. *rate.Limiter from
// golang.org/x/time/rate satisfies the interface.
type RateLimiter interface {
	Wait(ctx context.Context) error
}

// NewRateLimiter returns a token-bucket RateLimiter allowing rps
// requests per second with the given burst size.
func NewRateLimiter(rps float64, burst int) RateLimiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}
