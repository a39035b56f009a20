// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"sync"
	"time"
)

// A Waiter specifies how long to wait before retrying a failed
// request attempt.
//
// Implementations of Waiter must be safe for concurrent use by
// multiple goroutines.
//
// The session will not call the Waiter on a retry policy if the
// policy's Decider returned false.
type Waiter interface {
	Wait(a Attempt) time.Duration
}

// DefaultWaiter is the default retry wait policy. It uses a jittered
// exponential backoff formula with a base wait of 250 milliseconds and
// a maximum wait of 5 seconds.
var DefaultWaiter = NewExpWaiter(250*time.Millisecond, 5*time.Second, rand.NewSource(time.Now().UnixNano()))

// NewFixedWaiter constructs a Waiter that always returns the given
// duration.
//
// Use NewFixedWaiter to obtain a constant retry backoff.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ Attempt) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing an exponential backoff
// formula with optional jitter.
//
// The formula implemented is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// Parameters base and max control the exponential calculation of the
// ceiling:
//
//	ceil := min(base * 2**attempt, max)
//
// Base and max must be positive, and max must be at least base.
//
// Parameter src is used to generate a random wait between 0 and ceil.
// Pass nil to disable jitter and simply wait ceil on each retry.
func NewExpWaiter(base, max time.Duration, src rand.Source) Waiter {
	if base < 1 {
		panic("httpsess/retry: base must be positive")
	}
	if max < base {
		panic("httpsess/retry: max must be at least base")
	}
	w := &expWaiter{
		base: base,
		max:  max,
	}
	if src != nil {
		w.rand = rand.New(src)
	}
	return w
}

type expWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *expWaiter) Wait(a Attempt) time.Duration {
	exp := int64(1) << a.N
	if exp < 1 {
		exp = 1<<63 - 1
	}

	ceil := int64(w.base) * exp
	if ceil < int64(w.base) || int64(w.max) < ceil {
		ceil = int64(w.max)
	}

	duration := ceil
	if ceil > 0 && w.rand != nil {
		w.lock.Lock()
		defer w.lock.Unlock()
		duration = w.rand.Int63n(ceil)
	}

	return time.Duration(duration)
}
