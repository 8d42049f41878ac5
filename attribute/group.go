// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"sort"
	"strconv"

	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

// countAttr is the group cardinality: label is the count
// itself for n<4, else ">=4"; activity is always 1.
func countAttr(shapes []geometry.Shape, _ feature.Context, _ string) feature.Percept {
	n := len(shapes)
	label := strconv.Itoa(n)
	if n >= 4 {
		label = ">=4"
	}
	return feature.Simple{KeyName: "count", IsConstant: true, Act: 1, Lbl: label}
}

// pairDistance is the surface gap in scene percent between two shapes,
// sharing relation.distancePercent's definition (surface distance * phys
// scale), duplicated here to avoid an import cycle between attribute and
// relation.
func pairDistance(a, b geometry.Shape) float64 {
	ba, bb := feature.Body(a), feature.Body(b)
	if ba == nil || bb == nil {
		return 100
	}
	return ba.SurfaceDistanceTo(bb) * a.PhysScale()
}

// mstCriticalEdge runs Kruskal's algorithm over every pairwise surface
// distance and returns the length of the last edge added to the minimum
// spanning tree: the group-diameter measure close/touching grade, so a
// group reads as close/touching only once every member is reachable
// through others at that distance, not merely the nearest pair. Groups
// smaller than 2 have no edges; callers treat that as "no measure" via the
// ok return.
func mstCriticalEdge(shapes []geometry.Shape) (float64, bool) {
	n := len(shapes)
	if n < 2 {
		return 0, false
	}
	type edge struct {
		i, j int
		d    float64
	}
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{i, j, pairDistance(shapes[i], shapes[j])})
		}
	}
	sort.Slice(edges, func(a, b int) bool { return edges[a].d < edges[b].d })

	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	critical := 0.0
	joined := 0
	for _, e := range edges {
		ri, rj := find(e.i), find(e.j)
		if ri == rj {
			continue
		}
		parent[ri] = rj
		critical = e.d
		joined++
		if joined == n-1 {
			break
		}
	}
	return critical, true
}

// closeGroupAttr and touchingGroupAttr grade the MST's critical edge
// against the close/touch memberships: a group reads as
// close/touching only once every member is within reach of the rest, not
// merely the nearest pair.
func closeGroupAttr(shapes []geometry.Shape, _ feature.Context, _ string) feature.Percept {
	act := 0.0
	if d, ok := mstCriticalEdge(shapes); ok {
		act = 1 - feature.Sigmoid(30, 0.2, d/100)
	}
	return feature.Simple{KeyName: "close", Act: act, Lbl: "close"}
}

func touchingGroupAttr(shapes []geometry.Shape, _ feature.Context, _ string) feature.Percept {
	act := 0.0
	if d, ok := mstCriticalEdge(shapes); ok {
		act = feature.TouchMembership(d/100)
	}
	return feature.Simple{KeyName: "touching", Act: act, Lbl: "touching"}
}

// farGroupAttr grades the *smallest* pairwise surface distance: a group only reads as "far apart" once even its closest two
// members are spread out.
func farGroupAttr(shapes []geometry.Shape, _ feature.Context, _ string) feature.Percept {
	act := 0.0
	n := len(shapes)
	if n >= 2 {
		smallest := pairDistance(shapes[0], shapes[1])
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d := pairDistance(shapes[i], shapes[j]); d < smallest {
					smallest = d
				}
			}
		}
		act = feature.Sigmoid(20, 0.25, smallest/100)
	}
	return feature.Simple{KeyName: "far", Act: act, Lbl: "far"}
}

func init() {
	config.RegisterGroupAttr(feature.GroupDescriptor{Key: "count", Constant: true, New: countAttr})
	config.RegisterGroupAttr(feature.GroupDescriptor{Key: "close", New: closeGroupAttr})
	config.RegisterGroupAttr(feature.GroupDescriptor{Key: "touching", New: touchingGroupAttr})
	config.RegisterGroupAttr(feature.GroupDescriptor{Key: "far", New: farGroupAttr})
}
