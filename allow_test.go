// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowListContains(t *testing.T) {
	l := AllowList{200, 204}
	assert.True(t, l.Contains(200))
	assert.True(t, l.Contains(204))
	assert.False(t, l.Contains(201))
	assert.False(t, l.Contains(404))
}

func TestAllowListNil(t *testing.T) {
	var l AllowList
	assert.False(t, l.Contains(200))
}

func TestAnyStatus(t *testing.T) {
	for _, code := range []int{100, 200, 201, 301, 404, 429, 500, 599} {
		assert.True(t, AnyStatus.Contains(code), "AnyStatus should contain %d", code)
	}
}

func TestDefaultAllowList(t *testing.T) {
	l := DefaultAllowList()
	assert.True(t, l.Contains(200))
	assert.False(t, l.Contains(204))
	assert.False(t, l.Contains(404))
}
