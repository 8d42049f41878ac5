// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbperception/pbp/geometry"
)

func TestLeftPosAttrHighOnLeftEdge(t *testing.T) {
	shape := square("a", 5, 50)
	p := leftPosAttr(shape, &stubContext{}, "")
	assert.Greater(t, p.Activity(), 0.5)
}

func TestRightPosAttrHighOnRightEdge(t *testing.T) {
	shape := square("a", 95, 50)
	p := rightPosAttr(shape, &stubContext{}, "")
	assert.Greater(t, p.Activity(), 0.5)
}

func TestTopPosAttrHighNearTop(t *testing.T) {
	shape := square("a", 50, 5)
	ctx := &stubContext{}
	p := topPosAttr(shape, ctx, "")
	assert.Greater(t, p.Activity(), 0.5)
}

func TestBottomPosAttrUsesGroundMaxY(t *testing.T) {
	ground := square("ground", 50, 100)
	ctx := &stubContext{ground: ground, hasGround: true}
	shape := square("a", 50, 95) // near ground's bottom edge
	p := bottomPosAttr(shape, ctx, "")
	assert.Greater(t, p.Activity(), 0.5)
}

func TestLeftMostAttrHighestForLeftmostShape(t *testing.T) {
	a := square("a", 5, 50)
	b := square("b", 50, 50)
	c := square("c", 90, 50)
	ctx := &stubContext{shapes: []geometry.Shape{a, b, c}}

	pa := leftMostAttr(a, ctx, "")
	pc := leftMostAttr(c, ctx, "")
	assert.Greater(t, pa.Activity(), pc.Activity())
}

func TestRightMostAttrHighestForRightmostShape(t *testing.T) {
	a := square("a", 5, 50)
	b := square("b", 50, 50)
	c := square("c", 90, 50)
	ctx := &stubContext{shapes: []geometry.Shape{a, b, c}}

	pa := rightMostAttr(a, ctx, "")
	pc := rightMostAttr(c, ctx, "")
	assert.Greater(t, pc.Activity(), pa.Activity())
}

func TestTopMostAttrHighestForTopmostShape(t *testing.T) {
	a := square("a", 50, 5)
	b := square("b", 50, 50)
	c := square("c", 50, 90)
	ctx := &stubContext{shapes: []geometry.Shape{a, b, c}}

	pa := topMostAttr(a, ctx, "")
	pc := topMostAttr(c, ctx, "")
	assert.Greater(t, pa.Activity(), pc.Activity())
}

func TestSingleAttrHighWithNoNeighbor(t *testing.T) {
	shape := square("a", 50, 50) // no physics body, no oracle neighbor found
	p := singleAttr(shape, &stubContext{}, "")
	assert.Greater(t, p.Activity(), 0.9)
}
