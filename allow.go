// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import "net/http"

// An AllowList is the set of status codes treated as a successful
// outcome for a request. A nil or empty AllowList means "use the next
// fallback": the session default, or DefaultAllowList if the session
// has none.
type AllowList []int

// anyStatus is the wildcard entry; it matches every status code.
const anyStatus = -1

// AnyStatus is an AllowList that accepts every status code. A 429
// still fails with *RateLimitedError, since rate limiting is detected
// before the allow-list is consulted.
var AnyStatus = AllowList{anyStatus}

// DefaultAllowList returns the allow-list in effect when neither the
// call nor the session supplies one: only 200 is a success.
func DefaultAllowList() AllowList {
	return AllowList{http.StatusOK}
}

// Contains reports whether code is in the allow-list, or the list
// contains the wildcard.
func (l AllowList) Contains(code int) bool {
	for _, c := range l {
		if c == code || c == anyStatus {
			return true
		}
	}
	return false
}
