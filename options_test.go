// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestBodyBytes(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		b, ct, err := BodyBytes(nil)
		require.NoError(t, err)
		assert.Nil(t, b)
		assert.Empty(t, ct)
	})
	t.Run("string", func(t *testing.T) {
		b, ct, err := BodyBytes("ham and eggs")
		require.NoError(t, err)
		assert.Equal(t, []byte("ham and eggs"), b)
		assert.Empty(t, ct)
	})
	t.Run("bytes", func(t *testing.T) {
		b, ct, err := BodyBytes([]byte{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3}, b)
		assert.Empty(t, ct)
	})
	t.Run("form values", func(t *testing.T) {
		b, ct, err := BodyBytes(url.Values{"ham": {"eggs", "spam"}})
		require.NoError(t, err)
		assert.Equal(t, []byte("ham=eggs&ham=spam"), b)
		assert.Equal(t, "application/x-www-form-urlencoded", ct)
	})
	t.Run("reader", func(t *testing.T) {
		b, ct, err := BodyBytes(strings.NewReader("foo"))
		require.NoError(t, err)
		assert.Equal(t, []byte("foo"), b)
		assert.Empty(t, ct)
	})
	t.Run("read closer", func(t *testing.T) {
		rc := &closeRecorder{Reader: strings.NewReader("bar")}
		b, ct, err := BodyBytes(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("bar"), b)
		assert.Empty(t, ct)
		assert.True(t, rc.closed, "read closer should be closed after buffering")
	})
	t.Run("bad type", func(t *testing.T) {
		_, _, err := BodyBytes(42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid body type")
	})
}
