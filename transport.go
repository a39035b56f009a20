// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// DefaultTransport returns the transport backing the session's
// built-in HTTP client: a pooled cleanhttp transport with the given
// connect timeout on the dialer. Connection reuse, TLS and proxy
// behavior are whatever cleanhttp configures.
func DefaultTransport(connect time.Duration) *http.Transport {
	t := cleanhttp.DefaultPooledTransport()
	if connect > 0 {
		t.DialContext = (&net.Dialer{
			Timeout:   connect,
			KeepAlive: 30 * time.Second,
		}).DialContext
	}
	return t
}

// doerFor returns the doer to use for one attempt, honoring the
// follow-redirects flag. Redirect policy lives on http.Client, so the
// flag can only be forced off when the doer is an *http.Client; a
// custom HTTPDoer of another type owns its own redirect behavior.
func doerFor(d HTTPDoer, follow bool) HTTPDoer {
	if follow {
		return d
	}
	hc, ok := d.(*http.Client)
	if !ok {
		return d
	}
	c2 := *hc
	c2.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c2
}
