// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

// gapNorm is the signed gap between two positions along one axis,
// normalized to the 100-unit scene span: positive when b is further along
// the axis than a.
func gapNorm(a, b float64) float64 { return (b - a) / 100 }

// spatialTolerance is the "roughly level" slack the ordering relations
// grade against, as a fraction of the scene span.
const spatialTolerance = 0.02

// directionalMembership grades a signed gap along one direction as
// max(0, this_direction_best - opposite_direction_best), so that two
// objects nearly level on an axis don't both read as strongly ordered in
// either direction.
func directionalMembership(gap float64) float64 {
	this := feature.Sigmoid(15, spatialTolerance, gap)
	opposite := feature.Sigmoid(15, spatialTolerance, -gap)
	v := this - opposite
	if v < 0 {
		return 0
	}
	return v
}

func leftOfRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := directionalMembership(gapNorm(shape.Position().X, other.Position().X))
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "left_of", Act: act, Lbl: "left_of"},
		OtherShape: other, Sym: false,
	}
}

func rightOfRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := directionalMembership(gapNorm(other.Position().X, shape.Position().X))
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "right_of", Act: act, Lbl: "right_of"},
		OtherShape: other, Sym: false,
	}
}

// above/below compare Y; scene Y grows downward, so "above" means a smaller
// Y than other.
func aboveRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := directionalMembership(gapNorm(shape.Position().Y, other.Position().Y))
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "above", Act: act, Lbl: "above"},
		OtherShape: other, Sym: false,
	}
}

func belowRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	act := directionalMembership(gapNorm(other.Position().Y, shape.Position().Y))
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "below", Act: act, Lbl: "below"},
		OtherShape: other, Sym: false,
	}
}

// besideRel is the max of left_of and right_of: whichever side shape reads
// as being on relative to other. Symmetric because swapping shape/other
// swaps which of the two terms is which, not their max.
func besideRel(shape, other geometry.Shape, _ feature.Context, _ string) feature.RelationPercept {
	left := directionalMembership(gapNorm(shape.Position().X, other.Position().X))
	right := directionalMembership(gapNorm(other.Position().X, shape.Position().X))
	act := feature.Max(left, right)
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "beside", Act: act, Lbl: "beside"},
		OtherShape: other, Sym: true,
	}
}

func init() {
	config.RegisterObjRel(feature.RelDescriptor{Key: "left_of", Symmetric: false, New: leftOfRel})
	config.RegisterObjRel(feature.RelDescriptor{Key: "right_of", Symmetric: false, New: rightOfRel})
	config.RegisterObjRel(feature.RelDescriptor{Key: "above", Symmetric: false, New: aboveRel})
	config.RegisterObjRel(feature.RelDescriptor{Key: "below", Symmetric: false, New: belowRel})
	config.RegisterObjRel(feature.RelDescriptor{Key: "beside", Symmetric: true, New: besideRel})
}
