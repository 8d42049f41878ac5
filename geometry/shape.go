// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry provides the concrete Shape contract an externally
// owned geometry layer supplies: polygons and circles with position, area,
// bounding box, and — for polygons — vertex/edge/angle queries. SVG
// parsing and rendering, and vertex-ordering/bbox/angle algorithms more
// elaborate than the ones perception actually consumes, stay out of scope;
// this package is the minimal concrete stand-in needed to exercise and
// test the rest of the module.
package geometry

import "math"

// Vec2 is a 2D point or vector in scene units. The scene is normalized to
// 100x100; Y grows downward, matching top_pos/bottom_pos.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Length() float64      { return math.Hypot(v.X, v.Y) }

// DistanceTo is the Euclidean distance between two points.
func (v Vec2) DistanceTo(o Vec2) float64 { return v.Sub(o).Length() }

// Box is an axis-aligned bounding box in scene units.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Box) Width() float64  { return b.MaxX - b.MinX }
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Kind distinguishes the two shape families.
type Kind int

const (
	KindPolygon Kind = iota
	KindCircle
)

func (k Kind) String() string {
	if k == KindCircle {
		return "circle"
	}
	return "polygon"
}

// GroundID and FrameID are the reserved shape ids the ground plane and
// the enclosing frame are known by: distinguished by id, not by a
// dedicated type.
const (
	GroundID = "_"
	FrameID  = "|"
)

// Shape is the geometry contract perception is built against. A Shape
// wraps one physics.Body (its phys_obj) and knows the phys_scale mapping
// physics units to the 100x100 scene.
type Shape interface {
	ID() string
	Movable() bool

	Position() Vec2
	Area() float64
	BoundingBox() Box
	Kind() Kind

	// Polygon-only queries. A Circle answers them with its zero value
	// (false / empty / 0) rather than panicking, since targetType
	// dispatch in the attribute layer already gates on Kind().
	Closed() bool
	Vertices() []Vec2
	OrderedVertices() []Vec2
	EdgeLengths(sorted bool) []float64
	Angle(i int) float64

	PhysBody() interface{} // concrete *physics.Body; interface{} here to avoid import cycles with callers that only need the id
	PhysScale() float64

	// OwnerNode is the opaque node.ObjectNode back-reference, mirroring
	// core.Node.userData's pattern to avoid an import cycle between
	// geometry and node.
	OwnerNode() interface{}
	SetOwnerNode(interface{})
}

// base holds the fields every Shape implementation shares.
type base struct {
	id        string
	movable   bool
	physBody  interface{}
	physScale float64
	ownerNode interface{}
}

func (b *base) ID() string               { return b.id }
func (b *base) Movable() bool             { return b.movable }
func (b *base) PhysBody() interface{}     { return b.physBody }
func (b *base) PhysScale() float64        { return b.physScale }
func (b *base) OwnerNode() interface{}    { return b.ownerNode }
func (b *base) SetOwnerNode(n interface{}) { b.ownerNode = n }
