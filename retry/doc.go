// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides flexible policies deciding whether a failed
// request should be retried, and how long to wait before retrying.
//
// The interface Policy defines a retry policy. A Policy instance can
// be constructed with NewPolicy by providing a decision-maker,
// Decider, and a wait time calculator, Waiter. Both have constructors
// for common use cases, so a useful policy can be quickly assembled:
//
//	decider := retry.Times(3).
//	               And(retry.StatusCode(429, 503).Or(retry.TransientErr))
//	waiter := retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, nil)
//	policy := retry.NewPolicy(decider, waiter)
//
// If the built-in functionality is insufficient, fully custom retry
// policies can be created via custom implementations of Decider,
// Waiter, or Policy.
package retry
