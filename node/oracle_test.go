// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"errors"

	"github.com/pbperception/pbp/physics"
)

// stubOracle is a minimal physics.Oracle double for exercising SceneNode
// and the ObjectNode/GroupNode cache/resolution rules without a real
// simulator.
type stubOracle struct {
	curr         string
	hasCurr      bool
	gotoErr      error
	collisions   []physics.Collision
	observeCalls int
	groups       [][]*physics.Body
}

func (o *stubOracle) GotoState(name string) error {
	if o.gotoErr != nil {
		return o.gotoErr
	}
	o.curr, o.hasCurr = name, true
	return nil
}

func (o *stubOracle) AnalyzeFuture(dt float64, before func(), after func() interface{}) interface{} {
	if before != nil {
		before()
	}
	if after != nil {
		return after()
	}
	return nil
}

func (o *stubOracle) ApplyCentralImpulse(body *physics.Body, dir physics.Direction, mag physics.Magnitude) {
}
func (o *stubOracle) IsStatic(body *physics.Body) bool { return false }
func (o *stubOracle) WakeUp()                          {}
func (o *stubOracle) ForEachDynamicBody(f func(*physics.Body)) {}
func (o *stubOracle) GetBodyDistance(body *physics.Body) float64 { return 0 }
func (o *stubOracle) GetClosestBodyWithDist(body *physics.Body) (*physics.Body, float64, bool) {
	return nil, 0, false
}
func (o *stubOracle) GetTouchedBodiesWithPos(body *physics.Body) []physics.TouchedBody { return nil }
func (o *stubOracle) GetSpatialGroups(maxDist float64, bodies []*physics.Body) [][]*physics.Body {
	return o.groups
}
func (o *stubOracle) ObserveCollisions() []physics.Collision {
	o.observeCalls++
	return o.collisions
}
func (o *stubOracle) CurrState() (string, bool) { return o.curr, o.hasCurr }

var errUnknownState = errors.New("stub: unknown state")
