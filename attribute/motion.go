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

// futureDt is the lookahead window moves/is_supported probe: the max over
// present and +0.1s future linear velocity.
const futureDt = 0.1

// velocityMembership is the σ(40, 0.1, |v|) curve both moves and
// is_supported grade their measured velocity through.
func velocityMembership(v float64) float64 {
	return feature.Sigmoid(40, 0.1, v)
}

// futureVelocity steps the oracle forward by futureDt, running freeze first
// (if non-nil), and returns body's resulting velocity in scene units/s.
func futureVelocity(ctx feature.Context, body *physics.Body, physScale float64, freeze func()) float64 {
	v := ctx.Oracle().AnalyzeFuture(futureDt, freeze, func() interface{} {
		return body.LinearVelocityLength()
	})
	vf, _ := v.(float64)
	return vf * physScale
}

func movesAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	body := feature.Body(shape)
	act := 0.0
	if body != nil {
		present := body.LinearVelocityLength() * shape.PhysScale()
		future := futureVelocity(ctx, body, shape.PhysScale(), nil)
		act = velocityMembership(feature.Max(present, future))
	}
	return feature.Simple{KeyName: "moves", Act: act, Lbl: "moves"}
}

// isSupportedAttr shares moves' exact σ(40,0.1,|v|) curve over the same
// present/future-max velocity reading, isolated from every other dynamic
// body's own motion by freezing them (type-converting to static, not
// deactivating) for the lookahead step, inside the sandbox frame.
func isSupportedAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	body := feature.Body(shape)
	act := 0.0
	if body != nil {
		present := body.LinearVelocityLength() * shape.PhysScale()
		freeze := func() {
			for _, other := range ctx.Shapes() {
				if other.ID() == shape.ID() {
					continue
				}
				if ob := feature.Body(other); ob != nil {
					ob.SetType(physics.Static)
				}
			}
		}
		future := futureVelocity(ctx, body, shape.PhysScale(), freeze)
		act = velocityMembership(feature.Max(present, future))
	}
	return feature.Simple{KeyName: "is_supported", Act: act, Lbl: "is_supported"}
}

func onGroundAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	act := 0.0
	if ground, ok := ctx.Ground(); ok && feature.Touching(shape, ground) {
		act = 1
	}
	return feature.Simple{KeyName: "on_ground", Act: act, Lbl: "on_ground"}
}

func init() {
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "moves", New: movesAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "is_supported", New: isSupportedAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "on_ground", New: onGroundAttr})
}
