// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
	"github.com/pbperception/pbp/physics"
)

// stubContext satisfies feature.Context for attribute constructors under
// test, without pulling in the full node/SceneNode wiring.
type stubContext struct {
	oracle     physics.Oracle
	shapes     []geometry.Shape
	collisions []feature.SceneCollision
	ground     geometry.Shape
	hasGround  bool
	frame      geometry.Shape
	hasFrame   bool
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
func (c *stubContext) Ground() (geometry.Shape, bool)             { return c.ground, c.hasGround }
func (c *stubContext) Frame() (geometry.Shape, bool)              { return c.frame, c.hasFrame }
func (c *stubContext) Collisions() []feature.SceneCollision       { return c.collisions }

// bodyShapeIn builds a circle shape backed by a physics.Body registered in
// space, mirroring how the geometry layer wires the two together.
func bodyShapeIn(space *physics.Space, id string, x, y float64, static bool) geometry.Shape {
	body := physics.NewBody(id, 1, physics.Vec2{X: x, Y: y}, true)
	body.SetRadius(1)
	if static {
		body.SetType(physics.Static)
	}
	space.AddBody(body)
	shape := geometry.NewCircle(id, geometry.Vec2{X: x, Y: y}, 1, true, body, 1)
	body.SetOwnerShape(shape)
	return shape
}

func square(id string, cx, cy float64) geometry.Shape {
	half := 5.0
	return geometry.NewPolygon(id, []geometry.Vec2{
		{X: cx - half, Y: cy - half}, {X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half}, {X: cx - half, Y: cy + half},
	}, true, true, nil, 1)
}

func triangle(id string, cx, cy float64) geometry.Shape {
	return geometry.NewPolygon(id, []geometry.Vec2{
		{X: cx, Y: cy - 5}, {X: cx + 5, Y: cy + 5}, {X: cx - 5, Y: cy + 5},
	}, true, true, nil, 1)
}
