// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpsess provides a convenience session over a generic HTTP
transport: verb methods with sensible defaults, a status code
allow-list, structured logging of every call, typed errors, and
transparent retry with jittered backoff.

Create a Session to begin making requests. The zero value is usable:

	sess := &httpsess.Session{}
	resp, err := sess.Get(ctx, "https://api.example.com/users", nil)
	...
	var users []User
	err = resp.JSON(&users)

A Session holds defaults applied to every request: headers, a connect
and read timeout pair, and the set of status codes treated as success
(just 200 unless configured otherwise). Per-call values are supplied
through Options and win over session defaults:

	sess := &httpsess.Session{
		BaseURL:     "https://api.example.com",
		Header:      http.Header{"Accept": {"application/json"}},
		StatusCodes: httpsess.AllowList{200, 204},
	}
	resp, err := sess.Post(ctx, "/widgets", body, &httpsess.Options{
		StatusCodes: httpsess.AllowList{201},
	})

Responses with a disallowed status code never produce a Response.
A 429 always fails with *RateLimitedError, a 404 (and any disallowed
non-error status) fails with *UnexpectedStatusError, and any other
disallowed 4xx or 5xx surfaces as a *url.Error from the transport
layer. See the Session documentation for the full classification.

Failed calls are retried according to the session's retry.Policy.
The default policy retries transient transport errors and the 429,
502, 503 and 504 status codes, sleeping for a jittered exponential
backoff interval between attempts:

	sess := &httpsess.Session{
		RetryPolicy: retry.NewPolicy(
			retry.Times(2).And(retry.StatusCode(429).Or(retry.TransientErr)),
			retry.NewFixedWaiter(time.Second),
		),
	}

For control over how requests are actually sent (redirect policy,
TLS, connection pooling), install a custom HTTPDoer, for example a
tuned http.Client. The session delegates all wire behavior to it.
*/
package httpsess
