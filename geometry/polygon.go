// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"sort"
)

// Polygon is a (generally convex) shape defined by an ordered vertex loop.
type Polygon struct {
	base
	pts    []Vec2
	closed bool
}

// NewPolygon creates a polygon from pts, given in scene units.
func NewPolygon(id string, pts []Vec2, movable bool, closed bool, physBody interface{}, physScale float64) *Polygon {
	return &Polygon{
		base:   base{id: id, movable: movable, physBody: physBody, physScale: physScale},
		pts:    pts,
		closed: closed,
	}
}

func (p *Polygon) Kind() Kind { return KindPolygon }
func (p *Polygon) Closed() bool { return p.closed }

func (p *Polygon) Vertices() []Vec2 { return p.pts }

// OrderedVertices returns the vertex loop ordered counter-clockwise around
// the centroid, so that Area/Angle/EdgeLengths see a consistent winding
// regardless of how pts was supplied.
func (p *Polygon) OrderedVertices() []Vec2 {
	if len(p.pts) < 3 {
		return p.pts
	}
	c := p.centroid()
	ordered := make([]Vec2, len(p.pts))
	copy(ordered, p.pts)
	sort.Slice(ordered, func(i, j int) bool {
		return math.Atan2(ordered[i].Y-c.Y, ordered[i].X-c.X) < math.Atan2(ordered[j].Y-c.Y, ordered[j].X-c.X)
	})
	return ordered
}

func (p *Polygon) centroid() Vec2 {
	var sum Vec2
	for _, v := range p.pts {
		sum = sum.Add(v)
	}
	if len(p.pts) == 0 {
		return sum
	}
	return sum.Scale(1.0 / float64(len(p.pts)))
}

// Position returns the polygon's centroid as its scene position.
func (p *Polygon) Position() Vec2 { return p.centroid() }

// Area computes the shoelace-formula area of the ordered vertex loop.
func (p *Polygon) Area() float64 {
	v := p.OrderedVertices()
	n := len(v)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += v[i].X*v[j].Y - v[j].X*v[i].Y
	}
	return math.Abs(sum) / 2
}

// BoundingBox returns the axis-aligned box containing every vertex.
func (p *Polygon) BoundingBox() Box {
	if len(p.pts) == 0 {
		return Box{}
	}
	b := Box{MinX: p.pts[0].X, MinY: p.pts[0].Y, MaxX: p.pts[0].X, MaxY: p.pts[0].Y}
	for _, v := range p.pts[1:] {
		b.MinX = math.Min(b.MinX, v.X)
		b.MinY = math.Min(b.MinY, v.Y)
		b.MaxX = math.Max(b.MaxX, v.X)
		b.MaxY = math.Max(b.MaxY, v.Y)
	}
	return b
}

// EdgeLengths returns the length of every edge in the ordered vertex loop
// (wrapping the last edge back to the first vertex when Closed), optionally
// sorted ascending.
func (p *Polygon) EdgeLengths(sorted bool) []float64 {
	v := p.OrderedVertices()
	n := len(v)
	if n < 2 {
		return nil
	}
	limit := n
	if !p.closed {
		limit = n - 1
	}
	lengths := make([]float64, 0, limit)
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		lengths = append(lengths, v[i].DistanceTo(v[j]))
	}
	if sorted {
		sort.Float64s(lengths)
	}
	return lengths
}

// Angle returns the interior angle, in degrees, at ordered vertex i.
func (p *Polygon) Angle(i int) float64 {
	v := p.OrderedVertices()
	n := len(v)
	if n < 3 {
		return 0
	}
	prev := v[(i-1+n)%n]
	curr := v[i%n]
	next := v[(i+1)%n]

	u := prev.Sub(curr)
	w := next.Sub(curr)
	dot := u.X*w.X + u.Y*w.Y
	mag := u.Length() * w.Length()
	if mag == 0 {
		return 0
	}
	cos := dot / mag
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}
