// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package limits

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTolerance(t *testing.T) {
	assert.Equal(t, Eps, Tolerance(0))
	assert.Greater(t, Tolerance(1e12), Eps)
	assert.Equal(t, Eps, Tolerance(math.Inf(1)))
	assert.Less(t, Tolerance(20), Eps*(1+Eps))
}

func TestDoubleNeg(t *testing.T) {
	t.Run("WithinTolerance", func(t *testing.T) {
		assert.False(t, DoubleNeg(0, 0))
		assert.False(t, DoubleNeg(-Eps/2, 0))
		assert.False(t, DoubleNeg(-Eps, 0))
	})

	t.Run("BeyondTolerance", func(t *testing.T) {
		assert.True(t, DoubleNeg(-2*Eps, 0))
		assert.True(t, DoubleNeg(-1, 100))
	})

	t.Run("Boundary", func(t *testing.T) {
		qty, unit := 10.0, 2.0
		minDiff := Eps * (1 + Eps)
		cap := qty*unit - minDiff
		assert.True(t, DoubleNeg(cap-qty*unit, qty*unit))
	})

	t.Run("LargeMagnitudeNoise", func(t *testing.T) {
		big := 1e12
		noise := -(big - math.Nextafter(big, 0))
		assert.False(t, DoubleNeg(noise, big))
	})
}

func TestDoubleEq(t *testing.T) {
	assert.True(t, DoubleEq(1, 1+Eps/2))
	assert.False(t, DoubleEq(1, 1+2*Eps))
	assert.True(t, DoubleEq(0.1+0.2, 0.3))
}
