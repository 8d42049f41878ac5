// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attribute implements the object-attribute library: one small
// Percept constructor per feature, registered into package config's
// object-attribute registry at init time. Small, single-purpose types (one
// file per related group of Body/Geometry fields) over one monolithic
// feature switch.
package attribute

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

// shapeLabel classifies shape into one of circle/triangle/square/rectangle
// by vertex count, corner angles, and edge-length ratio, falling back to
// "unknown" when nothing matches cleanly.
func shapeLabel(shape geometry.Shape) string {
	if shape.Kind() == geometry.KindCircle {
		return "circle"
	}
	if !shape.Closed() {
		return "unknown"
	}
	verts := shape.OrderedVertices()
	switch len(verts) {
	case 3:
		return "triangle"
	case 4:
		for i := range verts {
			a := shape.Angle(i)
			if a < 70 || a > 110 {
				return "unknown"
			}
		}
		edges := shape.EdgeLengths(true)
		if len(edges) < 2 || edges[0] <= 0 {
			return "rectangle"
		}
		ratio := edges[0] / edges[len(edges)-1]
		if ratio >= 0.7 {
			return "square"
		}
		return "rectangle"
	default:
		return "unknown"
	}
}

func shapeAttr(shape geometry.Shape, _ feature.Context, _ string) feature.Percept {
	label := shapeLabel(shape)
	act := 0.0
	if label != "unknown" {
		act = 1
	}
	return feature.Simple{KeyName: "shape", IsConstant: true, Act: act, Lbl: label}
}

// classBoolAttr builds the constant boolean-membership attributes (circle,
// square, rect, triangle), which give partial credit when the shape's
// exact label is a close relative.
func classBoolAttr(key, wantLabel, softLabel string) feature.AttrConstructor {
	return func(shape geometry.Shape, _ feature.Context, _ string) feature.Percept {
		label := shapeLabel(shape)
		act := 0.0
		switch label {
		case wantLabel:
			act = 1
		case softLabel:
			act = 0.4
		}
		return feature.Simple{KeyName: key, IsConstant: true, Act: act, Lbl: key}
	}
}

func init() {
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "shape", Constant: true, New: shapeAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "circle", Constant: true, New: classBoolAttr("circle", "circle", "")})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "triangle", Constant: true, New: classBoolAttr("triangle", "triangle", "")})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "rect", Constant: true, New: classBoolAttr("rect", "rectangle", "square")})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "square", Constant: true, New: classBoolAttr("square", "square", "rectangle")})
}
