// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import "time"

// An Attempt is the state of one finished request attempt, handed to
// retry policies to make their decision.
type Attempt struct {
	// N is the zero-based index of the attempt: zero for the initial
	// attempt, one for the first retry, and so on.
	N int

	// StatusCode is the HTTP status code received, or zero if the
	// attempt ended before a response arrived.
	StatusCode int

	// Err is the error the attempt ended with. It is never nil:
	// policies are only consulted after a failed attempt.
	Err error
}

// A Policy controls if and how a failed request is retried. After
// every failed attempt, the Policy decides whether a retry should be
// done and, if so, how long to wait before retrying.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
//
// A Policy is composed of the Decider and Waiter interfaces. While you
// can implement Policy yourself, it is usually easier to assemble one
// with NewPolicy from existing Decider and Waiter implementations, or
// to use one of the built-in policies, DefaultPolicy or Never.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy is a general-purpose retry policy suitable for common
// use cases. It is a composition of DefaultDecider for retry decisions
// and DefaultWaiter for wait time calculations.
var DefaultPolicy Policy = policy{DefaultDecider, DefaultWaiter}

// Never is a policy that never retries. It is useful if you want the
// session's other features but no retries.
var Never Policy = policy{Times(0), DefaultWaiter}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a retry Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(a Attempt) bool {
	return p.decider.Decide(a)
}

func (p policy) Wait(a Attempt) time.Duration {
	return p.waiter.Wait(a)
}
