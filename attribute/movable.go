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

// canMoveUpForce is the upward-lift force the counterfactual probe applies,
// as a multiple of body mass (12·mass, per the lift-probe magnitude this
// attribute is defined against).
const canMoveUpForce = 12.0

// canMoveUpDt is how long the upward lift runs before checking whether the
// object reached the frame.
const canMoveUpDt = 2.5

// frameTopTolerance is how close a contact point's Y must be to 0 (the
// frame's top edge, scene Y growing downward) to count as "reached the
// top".
const frameTopTolerance = 0.1

// touchesFrameNearTop reports whether body, after the lift, has a contact
// point against the frame body within frameTopTolerance of the frame's top
// edge.
func touchesFrameNearTop(ctx feature.Context, body, frameBody *physics.Body) bool {
	for _, t := range ctx.Oracle().GetTouchedBodiesWithPos(body) {
		if t.Body != frameBody {
			continue
		}
		for _, pt := range t.Pts {
			if pt.Y < frameTopTolerance {
				return true
			}
		}
	}
	return false
}

// canMoveUpAttr lifts the object with a sustained upward force (disabling
// sleep so the probe isn't cut short) and reports whether it reaches the
// frame's top edge within canMoveUpDt seconds.
func canMoveUpAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	body := feature.Body(shape)
	frame, hasFrame := ctx.Frame()
	if body == nil || !hasFrame {
		return feature.Simple{KeyName: "can_move_up", Act: 0, Lbl: "can_move_up"}
	}
	frameBody := feature.Body(frame)
	if frameBody == nil {
		return feature.Simple{KeyName: "can_move_up", Act: 0, Lbl: "can_move_up"}
	}

	before := func() {
		body.SetSleepingAllowed(false)
		body.ApplyForce(physics.Vec2{X: 0, Y: -canMoveUpForce * body.GetMass()}, body.GetWorldCenter())
	}
	after := func() interface{} { return touchesFrameNearTop(ctx, body, frameBody) }
	reached, _ := ctx.Oracle().AnalyzeFuture(canMoveUpDt, before, after).(bool)

	act := 0.0
	if reached {
		act = 1
	}
	return feature.Simple{KeyName: "can_move_up", Act: act, Lbl: "can_move_up"}
}

func init() {
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "can_move_up", New: canMoveUpAttr})
}
