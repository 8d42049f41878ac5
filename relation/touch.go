// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package relation implements the object-relation library: one
// RelConstructor per pairwise feature, registered into package config's
// object-relation registry at init time. Mirrors package attribute's
// layout and registration style.
package relation

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

// distancePercent is the surface gap between a and b's bodies, expressed as
// a percentage of the 100-unit scene span.
func distancePercent(a, b geometry.Shape) float64 {
	ba, bb := feature.Body(a), feature.Body(b)
	if ba == nil || bb == nil {
		return 100
	}
	return ba.SurfaceDistanceTo(bb) * a.PhysScale()
}

func touchRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := 0.0
	if feature.Touching(shape, other) {
		act = 1
	}
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "touch", Act: act, Lbl: "touch"},
		OtherShape: other, Sym: true,
	}
}

// closeRel grades how near shape and other are relative to the scene span,
// sharing its sigmoid shape with feature.CloseMembership (k=30, m=0.2).
func closeRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := 1 - feature.Sigmoid(30, 0.2, distancePercent(shape, other)/100)
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "close", Act: act, Lbl: "close"},
		OtherShape: other, Sym: true,
	}
}

// farRel is close's wide-threshold counterpart: shapes read as far apart
// only once the gap is a substantial fraction of the scene, not merely
// "not close".
func farRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := feature.Sigmoid(20, 0.25, distancePercent(shape, other)/100)
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "far", Act: act, Lbl: "far"},
		OtherShape: other, Sym: true,
	}
}

// onTopOfRel holds when shape touches other and sits above it (smaller Y,
// since scene Y grows downward).
func onTopOfRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := 0.0
	if feature.Touching(shape, other) && shape.Position().Y < other.Position().Y {
		act = 1
	}
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "on_top_of", Act: act, Lbl: "on_top_of"},
		OtherShape: other, Sym: false,
	}
}

func init() {
	config.RegisterObjRel(feature.RelDescriptor{Key: "touch", Symmetric: true, New: touchRel})
	config.RegisterObjRel(feature.RelDescriptor{Key: "close", Symmetric: true, New: closeRel})
	config.RegisterObjRel(feature.RelDescriptor{Key: "far", Symmetric: true, New: farRel})
	config.RegisterObjRel(feature.RelDescriptor{Key: "on_top_of", Symmetric: false, New: onTopOfRel})
}
