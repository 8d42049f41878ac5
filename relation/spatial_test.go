// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbperception/pbp/feature"
)

func TestLeftOfRelActiveWhenLeft(t *testing.T) {
	a := shapeAt("a", 10, 50, 1)
	b := shapeAt("b", 60, 50, 1)
	ctx := &stubContext{}
	assert.Greater(t, leftOfRel(a, b, ctx, "").Activity(), 0.5)
	assert.Less(t, rightOfRel(a, b, ctx, "").Activity(), 0.5)
}

func TestAboveRelActiveWhenSmallerY(t *testing.T) {
	a := shapeAt("a", 50, 10, 1) // smaller Y, so "above"
	b := shapeAt("b", 50, 60, 1)
	ctx := &stubContext{}
	assert.Greater(t, aboveRel(a, b, ctx, "").Activity(), 0.5)
	assert.Less(t, belowRel(a, b, ctx, "").Activity(), 0.5)
}

func TestDirectionalMembershipLevelReadsZeroBothWays(t *testing.T) {
	a := shapeAt("a", 50, 50, 1)
	b := shapeAt("b", 50.01, 50, 1)
	ctx := &stubContext{}
	left := leftOfRel(a, b, ctx, "").Activity()
	right := rightOfRel(a, b, ctx, "").Activity()
	assert.Less(t, left, 0.1)
	assert.Less(t, right, 0.1)
}

func TestBesideRelIsMaxOfLeftOfAndRightOf(t *testing.T) {
	a := shapeAt("a", 20, 50, 1)
	b := shapeAt("b", 25, 50, 1)
	ctx := &stubContext{}
	want := feature.Max(leftOfRel(a, b, ctx, "").Activity(), rightOfRel(a, b, ctx, "").Activity())
	assert.InDelta(t, want, besideRel(a, b, ctx, "").Activity(), 1e-9)
}

func TestBesideRelLowWhenStacked(t *testing.T) {
	a := shapeAt("a", 20, 10, 1)
	b := shapeAt("b", 20, 90, 1)
	ctx := &stubContext{}
	assert.Less(t, besideRel(a, b, ctx, "").Activity(), 0.5)
}

func TestBesideRelSymmetric(t *testing.T) {
	a := shapeAt("a", 20, 50, 1)
	b := shapeAt("b", 25, 50, 1)
	ctx := &stubContext{}
	assert.True(t, besideRel(a, b, ctx, "").Symmetric())
}
