// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import "time"

// Timeouts is the connect/read timeout pair applied to a request.
//
// Connect bounds the time spent establishing a TCP connection. It is
// honored by the session's built-in transport; when a custom HTTPDoer
// is installed, connection timing is that doer's responsibility.
//
// Read bounds the time from sending the request until the response
// body has been fully read, enforced as the deadline on each
// individual attempt. Retries get a fresh read deadline; the caller's
// context still bounds the call as a whole.
//
// A zero field falls back to the corresponding default.
type Timeouts struct {
	Connect time.Duration
	Read    time.Duration
}

// DefaultTimeouts returns the timeout pair used when neither the call
// nor the session supplies one: 10 seconds to connect, 15 to read.
func DefaultTimeouts() Timeouts {
	return Timeouts{Connect: 10 * time.Second, Read: 15 * time.Second}
}

// withDefaults fills zero fields from DefaultTimeouts.
func (t Timeouts) withDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Connect <= 0 {
		t.Connect = d.Connect
	}
	if t.Read <= 0 {
		t.Read = d.Read
	}
	return t
}
