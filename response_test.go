// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResponse(body string, logger Logger) *Response {
	raw := &http.Response{
		StatusCode: 200,
		Status:     "200 OK",
		Header:     http.Header{"Content-Type": {"application/json"}},
	}
	if logger == nil {
		logger = NopLogger
	}
	return newResponse("https://api.example.com/x", raw, []byte(body), logger)
}

func TestResponseAccessors(t *testing.T) {
	r := testResponse(`{"a":1}`, nil)
	assert.Equal(t, "https://api.example.com/x", r.URL())
	assert.Equal(t, 200, r.StatusCode())
	assert.Equal(t, "OK", r.Reason())
	assert.Equal(t, "application/json", r.Header().Get("Content-Type"))
	assert.Equal(t, `{"a":1}`, r.Text())
	assert.Equal(t, []byte(`{"a":1}`), r.Bytes())
	assert.Equal(t, `{"a":1}`, r.String())
}

func TestResponseJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := testResponse(`{"a":1}`, nil)
		var got map[string]any
		require.NoError(t, r.JSON(&got))
		assert.Equal(t, map[string]any{"a": float64(1)}, got)
	})
	t.Run("invalid body", func(t *testing.T) {
		logger := &recordingLogger{}
		r := testResponse("ham and eggs", logger)
		var got map[string]any
		err := r.JSON(&got)
		require.Error(t, err)
		var resErr *UnexpectedResultError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, 200, resErr.StatusCode)
		assert.Equal(t, "OK", resErr.Reason)
		assert.Equal(t, "ham and eggs", resErr.Body)
		assert.Error(t, resErr.Cause)
		assert.True(t, logger.has("ERROR", "unexpected request result"))
	})
	t.Run("empty body", func(t *testing.T) {
		r := testResponse("", nil)
		var got map[string]any
		assert.Error(t, r.JSON(&got))
	})
}

func TestResponseJSONErrorIsTyped(t *testing.T) {
	r := testResponse("{broken", nil)
	var got any
	err := r.JSON(&got)
	var resErr *UnexpectedResultError
	assert.True(t, errors.As(err, &resErr))
	var statusErr *UnexpectedStatusError
	assert.False(t, errors.As(err, &statusErr))
}
