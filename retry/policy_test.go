// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPolicy(t *testing.T) {
	p := NewPolicy(Times(1), NewFixedWaiter(7*time.Millisecond))
	a := Attempt{N: 0, Err: errors.New("x")}
	assert.True(t, p.Decide(a))
	assert.Equal(t, 7*time.Millisecond, p.Wait(a))
	a.N = 1
	assert.False(t, p.Decide(a))
}

func TestNever(t *testing.T) {
	assert.False(t, Never.Decide(Attempt{N: 0, StatusCode: 429, Err: errors.New("x")}))
	assert.False(t, Never.Decide(Attempt{N: 0, Err: timeoutErr{}}))
}

func TestDefaultPolicy(t *testing.T) {
	assert.True(t, DefaultPolicy.Decide(Attempt{N: 0, StatusCode: 429, Err: errors.New("x")}))
	assert.False(t, DefaultPolicy.Decide(Attempt{N: DefaultTimes, StatusCode: 429, Err: errors.New("x")}))
	assert.False(t, DefaultPolicy.Decide(Attempt{N: 0, StatusCode: 404, Err: errors.New("x")}))
	wait := DefaultPolicy.Wait(Attempt{N: 0})
	assert.GreaterOrEqual(t, wait, time.Duration(0))
	assert.LessOrEqual(t, wait, 250*time.Millisecond)
}
