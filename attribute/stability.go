// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
	"github.com/pbperception/pbp/physics"
)

// probeDt is how far the sandbox steps after a stability push before
// measuring displacement.
const probeDt = 0.2

// stabilityDisplaceThreshold is the scene-unit displacement past which a
// push counts as having destabilized the object.
const stabilityDisplaceThreshold = 1.0

// pushDisplacement applies mag to shape's body in both horizontal
// directions inside its own sandbox frame and returns the larger resulting
// displacement, in scene units.
func pushDisplacement(ctx feature.Context, body *physics.Body, physScale float64, mag physics.Magnitude) float64 {
	worst := 0.0
	for _, dir := range [2]physics.Direction{physics.Left, physics.Right} {
		before := func() { ctx.Oracle().ApplyCentralImpulse(body, dir, mag) }
		after := func() interface{} { return body.DistanceMoved() * physScale }
		d, _ := ctx.Oracle().AnalyzeFuture(probeDt, before, after).(float64)
		if d > worst {
			worst = d
		}
	}
	return worst
}

// stabilityAttr classifies the object into one of four mutually exclusive
// labels by how little force it takes to move it: already moving, toppled
// by a gentle nudge (unstable), toppled only by a harder push (slightly
// unstable), or resists both (stable).
func stabilityAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	body := feature.Body(shape)
	if body == nil {
		return feature.Simple{KeyName: "stability", Act: 0, Lbl: "unknown"}
	}
	physScale := shape.PhysScale()
	if velocityMembership(body.LinearVelocityLength()*physScale) > 0.5 {
		return feature.Simple{KeyName: "stability", Act: 1, Lbl: "moving"}
	}
	if pushDisplacement(ctx, body, physScale, physics.Small) > stabilityDisplaceThreshold {
		return feature.Simple{KeyName: "stability", Act: 1, Lbl: "unstable"}
	}
	if pushDisplacement(ctx, body, physScale, physics.Medium) > stabilityDisplaceThreshold {
		return feature.Simple{KeyName: "stability", Act: 1, Lbl: "slightly_unstable"}
	}
	return feature.Simple{KeyName: "stability", Act: 1, Lbl: "stable"}
}

func init() {
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "stability", New: stabilityAttr})
}
