// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cgault/httpsess/retry"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client from the net/http package. The doer is
// responsible for all details of sending the HTTP request and
// receiving the response: redirects, cookies, TLS, proxies and
// connection pooling.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// the contract documented on http.Client from the net/http
	// package.
	Do(r *http.Request) (*http.Response, error)
}

// A Session issues HTTP requests with consistent defaults, status code
// policy enforcement, and logging on top of an underlying HTTPDoer.
// Its zero value is a valid configuration.
//
// The zero value session uses a built-in pooled HTTP client as the
// HTTPDoer, slog.Default() for logging, DefaultTimeouts() as the
// timeout pair, DefaultAllowList() as the status code allow-list, and
// retry.DefaultPolicy as the retry policy.
//
// Sessions hold cached TCP connections through their HTTPDoer, so
// reuse one Session across calls instead of creating them as needed.
// Issuing requests from multiple goroutines is safe as long as no
// field is mutated after the first request; synchronizing field
// mutation, or keeping one Session per goroutine, is the caller's
// responsibility.
//
// Every verb method classifies the response status code:
//
// 1. A 429 always fails with *RateLimitedError, logged at debug level,
// before the allow-list is consulted. The default retry policy retries
// it.
//
// 2. A status inside the effective allow-list (the call's, else the
// session's, else just 200), or a 200 regardless of allow-list, or any
// status when the allow-list is AnyStatus, is accepted and wrapped in
// a Response.
//
// 3. A disallowed 4xx or 5xx other than 404 surfaces as a *url.Error
// wrapping an *HTTPStatusError, the same error family the transport
// itself produces.
//
// 4. Any other disallowed status, 404 included, fails with
// *UnexpectedStatusError carrying the buffered body, logged at error
// level.
type Session struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses.
	//
	// If HTTPDoer is nil, a built-in http.Client backed by
	// DefaultTransport is used, with the session's connect timeout
	// applied at dial time. With a custom HTTPDoer the connect timeout
	// is that doer's responsibility and only the read timeout applies.
	HTTPDoer HTTPDoer

	// Logger receives a debug record for every request issued, every
	// outcome, and every acceptance decision, and an error record for
	// each typed error before it is returned.
	//
	// If Logger is nil, slog.Default() is used. Install NopLogger to
	// disable tracing.
	Logger Logger

	// BaseURL, when non-empty, is the base against which relative
	// request URLs are resolved. Absolute request URLs are used as
	// given.
	BaseURL string

	// Header contains the default headers sent with every request.
	// A call that supplies its own non-empty Options.Header replaces
	// them entirely.
	Header http.Header

	// Timeouts is the default connect/read timeout pair. Zero fields
	// fall back to DefaultTimeouts().
	Timeouts Timeouts

	// StatusCodes is the default allow-list. If nil or empty,
	// DefaultAllowList() is used.
	StatusCodes AllowList

	// RetryPolicy decides when to retry failed calls and how long to
	// sleep before retrying.
	//
	// If RetryPolicy is nil, retry.DefaultPolicy is used. Use
	// retry.Never to disable retries.
	RetryPolicy retry.Policy

	// RateLimiter, when non-nil, is waited on before every attempt,
	// retries included.
	RateLimiter RateLimiter

	// RequestID configures correlation id stamping on outgoing
	// requests. The zero value disables it.
	RequestID RequestIDConfig

	defaultOnce sync.Once
	defaultDoer HTTPDoer
}

// Get issues a GET to the specified URL, following the session's
// timeout, allow-list and retry policies. Redirects are followed
// unless opts says otherwise.
func (s *Session) Get(ctx context.Context, url string, opts *Options) (*Response, error) {
	s.logCall(http.MethodGet, url, opts)
	return s.do(ctx, http.MethodGet, url, nil, opts, true)
}

// Post issues a POST to the specified URL, following the session's
// timeout, allow-list and retry policies. Redirects are followed
// unless opts says otherwise.
//
// The body parameter may be nil for an empty body, or any of the types
// supported by BodyBytes: string, []byte, url.Values (form-encoded),
// io.Reader, or io.ReadCloser.
func (s *Session) Post(ctx context.Context, url string, body any, opts *Options) (*Response, error) {
	s.logCall(http.MethodPost, url, opts)
	return s.do(ctx, http.MethodPost, url, body, opts, true)
}

// Head issues a HEAD to the specified URL, following the session's
// timeout, allow-list and retry policies. Unlike the other verbs,
// Head does not follow redirects unless opts says otherwise.
func (s *Session) Head(ctx context.Context, url string, opts *Options) (*Response, error) {
	s.logCall(http.MethodHead, url, opts)
	return s.do(ctx, http.MethodHead, url, nil, opts, false)
}

// Patch issues a PATCH to the specified URL, following the session's
// timeout, allow-list and retry policies. Redirects are followed
// unless opts says otherwise.
//
// The body parameter accepts the same types as Post.
func (s *Session) Patch(ctx context.Context, url string, body any, opts *Options) (*Response, error) {
	s.logCall(http.MethodPatch, url, opts)
	return s.do(ctx, http.MethodPatch, url, body, opts, true)
}

func (s *Session) logCall(method, url string, opts *Options) {
	s.logger().Debug("making request",
		"method", method,
		"url", url,
		"auth", opts != nil && opts.Auth != nil)
}

// do runs the attempt/retry loop for one verb call. The wait between
// attempts is sequential and context-aware; attempts never race.
func (s *Session) do(ctx context.Context, method, rawurl string, body any, opts *Options, followDefault bool) (*Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts == nil {
		opts = &Options{}
	}

	b, bodyType, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	target, err := s.resolveURL(rawurl)
	if err != nil {
		return nil, err
	}

	follow := followDefault
	if opts.FollowRedirects != nil {
		follow = *opts.FollowRedirects
	}

	var id string
	if s.RequestID.Header != "" {
		gen := s.RequestID.New
		if gen == nil {
			gen = DefaultRequestID
		}
		id = gen()
	}

	policy := s.retryPolicy()
	for n := 0; ; n++ {
		resp, status, err := s.attempt(ctx, method, target, b, bodyType, opts, follow, id)
		if err == nil {
			return resp, nil
		}
		a := retry.Attempt{N: n, StatusCode: status, Err: err}
		if ctx.Err() != nil || !policy.Decide(a) {
			return nil, err
		}
		wait := policy.Wait(a)
		s.logger().Debug("retrying request",
			"method", method,
			"url", target,
			"attempt", n+1,
			"wait", wait)
		if werr := sleep(ctx, wait); werr != nil {
			return nil, urlErrorWrap(method, target, werr)
		}
	}
}

// attempt performs a single request/response round trip and classifies
// the outcome. The returned status code is zero when no response
// arrived; it feeds the retry decision even when err is non-nil.
func (s *Session) attempt(ctx context.Context, method, target string, body []byte, bodyType string, opts *Options, follow bool, id string) (*Response, int, error) {
	t := s.Timeouts
	if opts.Timeouts != nil {
		t = *opts.Timeouts
	}
	t = t.withDefaults()

	actx, cancel := context.WithTimeout(ctx, t.Read)
	defer cancel()

	var rd io.Reader
	if len(body) > 0 {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(actx, method, target, rd)
	if err != nil {
		return nil, 0, err
	}

	hdr := opts.Header
	if len(hdr) == 0 {
		hdr = s.Header
	}
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if bodyType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", bodyType)
	}
	if id != "" && req.Header.Get(s.RequestID.Header) == "" {
		req.Header.Set(s.RequestID.Header, id)
	}
	if opts.Auth != nil {
		req.SetBasicAuth(opts.Auth.Username, opts.Auth.Password)
	}

	lg := s.logger()
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(actx); err != nil {
			return nil, 0, urlErrorWrap(method, target, err)
		}
	}

	raw, err := doerFor(s.doer(t.Connect), follow).Do(req)
	if err != nil {
		lg.Debug("request failed",
			"method", method,
			"url", target,
			"error", err)
		return nil, 0, urlErrorWrap(method, target, err)
	}
	defer raw.Body.Close()

	buf, err := io.ReadAll(raw.Body)
	if err != nil {
		lg.Debug("reading response body failed",
			"method", method,
			"url", target,
			"error", err)
		return nil, raw.StatusCode, urlErrorWrap(method, target, err)
	}

	status := raw.StatusCode
	reason := statusReason(raw)
	lg.Debug("request completed",
		"method", method,
		"status", status,
		"url", target)

	if status == http.StatusTooManyRequests {
		lg.Debug("rate limited",
			"url", target,
			"status", status,
			"reason", reason)
		return nil, status, &RateLimitedError{URL: target, StatusCode: status, Reason: reason}
	}

	allow := opts.StatusCodes
	if len(allow) == 0 {
		allow = s.StatusCodes
	}
	if len(allow) == 0 {
		allow = DefaultAllowList()
	}
	if !allow.Contains(status) && status != http.StatusOK {
		if status >= 400 && status != http.StatusNotFound {
			return nil, status, &url.Error{
				Op:  urlErrorOp(method),
				URL: target,
				Err: &HTTPStatusError{StatusCode: status, Status: raw.Status},
			}
		}
		lg.Error("unexpected status code",
			"url", target,
			"status", status,
			"reason", reason,
			"body", string(buf))
		return nil, status, &UnexpectedStatusError{URL: target, StatusCode: status, Reason: reason, Body: string(buf)}
	}

	lg.Debug("acceptable status code",
		"method", method,
		"status", status,
		"url", target)
	return newResponse(target, raw, buf, lg), status, nil
}

func (s *Session) resolveURL(rawurl string) (string, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return "", err
	}
	if u.IsAbs() || s.BaseURL == "" {
		return rawurl, nil
	}
	base, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(u).String(), nil
}

// doer returns the configured HTTPDoer, or lazily builds the built-in
// client. The connect timeout of the first call wins for the built-in
// client's dialer.
func (s *Session) doer(connect time.Duration) HTTPDoer {
	if s.HTTPDoer != nil {
		return s.HTTPDoer
	}
	s.defaultOnce.Do(func() {
		s.defaultDoer = &http.Client{Transport: DefaultTransport(connect)}
	})
	return s.defaultDoer
}

func (s *Session) retryPolicy() retry.Policy {
	if s.RetryPolicy != nil {
		return s.RetryPolicy
	}
	return retry.DefaultPolicy
}

func (s *Session) logger() Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func urlErrorWrap(method, target string, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}
	return &url.Error{
		Op:  urlErrorOp(method),
		URL: target,
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
