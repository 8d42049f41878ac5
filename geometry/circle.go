// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

// Circle is a round shape defined by center and radius.
type Circle struct {
	base
	center Vec2
	radius float64
}

// NewCircle creates a circle shape at center with the given radius, in
// scene units.
func NewCircle(id string, center Vec2, radius float64, movable bool, physBody interface{}, physScale float64) *Circle {
	return &Circle{
		base:   base{id: id, movable: movable, physBody: physBody, physScale: physScale},
		center: center,
		radius: radius,
	}
}

func (c *Circle) Kind() Kind      { return KindCircle }
func (c *Circle) Position() Vec2  { return c.center }
func (c *Circle) Radius() float64 { return c.radius }
func (c *Circle) Area() float64   { return 3.141592653589793 * c.radius * c.radius }

func (c *Circle) BoundingBox() Box {
	return Box{
		MinX: c.center.X - c.radius, MinY: c.center.Y - c.radius,
		MaxX: c.center.X + c.radius, MaxY: c.center.Y + c.radius,
	}
}

// The remaining Shape methods are polygon-only; a Circle answers them with
// its zero value, per the Shape interface's documented contract.
func (c *Circle) Closed() bool                      { return false }
func (c *Circle) Vertices() []Vec2                  { return nil }
func (c *Circle) OrderedVertices() []Vec2           { return nil }
func (c *Circle) EdgeLengths(sorted bool) []float64 { return nil }
func (c *Circle) Angle(i int) float64               { return 0 }
