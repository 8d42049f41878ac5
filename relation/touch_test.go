// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
	"github.com/pbperception/pbp/physics"
)

// stubContext satisfies feature.Context with just enough behavior for
// relation constructors that only need Oracle()/Shapes()/Collisions().
type stubContext struct {
	oracle      physics.Oracle
	shapes      []geometry.Shape
	collisions  []feature.SceneCollision
	ground      geometry.Shape
	hasGround   bool
}

func (c *stubContext) Percept(string, string, string, string) (feature.Percept, bool) { return nil, false }
func (c *stubContext) Oracle() physics.Oracle                                         { return c.oracle }
func (c *stubContext) MaxDist() float64                                               { return 0.06 }
func (c *stubContext) ActivationThreshold() float64                                   { return 0.5 }
func (c *stubContext) Shapes() []geometry.Shape                                       { return c.shapes }
func (c *stubContext) ShapeByID(id string) (geometry.Shape, bool) {
	for _, s := range c.shapes {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}
func (c *stubContext) Ground() (geometry.Shape, bool) { return c.ground, c.hasGround }
func (c *stubContext) Frame() (geometry.Shape, bool)  { return nil, false }
func (c *stubContext) Collisions() []feature.SceneCollision { return c.collisions }

func shapeAt(id string, x, y, radius float64) geometry.Shape {
	body := physics.NewBody(id, 1, physics.Vec2{X: x, Y: y}, true)
	body.SetRadius(radius)
	shape := geometry.NewCircle(id, geometry.Vec2{X: x, Y: y}, radius, true, body, 1)
	body.SetOwnerShape(shape)
	return shape
}

func TestTouchRelActiveWhenWithinTolerance(t *testing.T) {
	a := shapeAt("a", 0, 0, 1)
	b := shapeAt("b", 2.2, 0, 1)
	ctx := &stubContext{}
	p := touchRel(a, b, ctx, "")
	assert.Equal(t, 1.0, p.Activity())
}

func TestTouchRelInactiveBeyondTolerance(t *testing.T) {
	a := shapeAt("a", 0, 0, 1)
	b := shapeAt("b", 10, 0, 1)
	ctx := &stubContext{}
	p := touchRel(a, b, ctx, "")
	assert.Equal(t, 0.0, p.Activity())
}

func TestCloseRelGradesDistance(t *testing.T) {
	a := shapeAt("a", 0, 0, 1)
	near := shapeAt("b", 3, 0, 1)
	far := shapeAt("c", 80, 0, 1)
	ctx := &stubContext{}
	pNear := closeRel(a, near, ctx, "")
	pFar := closeRel(a, far, ctx, "")
	assert.Greater(t, pNear.Activity(), pFar.Activity())
}

func TestFarRelOppositeOfClose(t *testing.T) {
	a := shapeAt("a", 0, 0, 1)
	far := shapeAt("c", 90, 0, 1)
	ctx := &stubContext{}
	assert.Greater(t, farRel(a, far, ctx, "").Activity(), 0.5)
}

func TestOnTopOfRequiresTouchAndAbove(t *testing.T) {
	below := shapeAt("below", 0, 5, 1)
	above := shapeAt("above", 0, 2.9, 1) // smaller Y == "above" since Y grows downward
	ctx := &stubContext{}
	p := onTopOfRel(above, below, ctx, "")
	assert.Equal(t, 1.0, p.Activity())

	pReversed := onTopOfRel(below, above, ctx, "")
	assert.Equal(t, 0.0, pReversed.Activity())
}

func TestTouchRelSymmetric(t *testing.T) {
	a := shapeAt("a", 0, 0, 1)
	b := shapeAt("b", 2, 0, 1)
	ctx := &stubContext{}
	assert.True(t, touchRel(a, b, ctx, "").Symmetric())
}
