// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "fmt"

// frame is one entry of the LIFO sandbox stack AnalyzeFuture pushes.
// Restoring a frame snapshots every body exactly as it was when the frame
// was pushed, undoing whatever before/after mutated. Frames cannot be
// popped out of order: popFrame always pops the top of the stack, and
// AnalyzeFuture pairs each pushFrame with a deferred popFrame.
type frame struct {
	snapshots map[*Body]bodySnapshot
}

// SandboxOracle is the reference Oracle implementation: a Space plus named
// checkpoints and a nestable sandbox stack.
type SandboxOracle struct {
	space *Space

	namedStates map[string]map[*Body]bodySnapshot
	currState   string
	hasState    bool

	frames []frame
}

// NewSandboxOracle wraps space in an Oracle.
func NewSandboxOracle(space *Space) *SandboxOracle {
	return &SandboxOracle{
		space:       space,
		namedStates: make(map[string]map[*Body]bodySnapshot),
	}
}

func (o *SandboxOracle) snapshotAll() map[*Body]bodySnapshot {
	out := make(map[*Body]bodySnapshot, len(o.space.bodies))
	for _, b := range o.space.bodies {
		out[b] = b.snapshot()
	}
	return out
}

func (o *SandboxOracle) restoreAll(snap map[*Body]bodySnapshot) {
	for _, b := range o.space.bodies {
		if s, ok := snap[b]; ok {
			b.restore(s)
		}
	}
}

// SaveState captures the current body configuration under name. Used by
// the harness that builds a scene to record "start" and, after letting
// time elapse, "end".
func (o *SandboxOracle) SaveState(name string) {
	o.namedStates[name] = o.snapshotAll()
	o.currState = name
	o.hasState = true
}

// GotoState implements Oracle.GotoState. It always restores the named
// snapshot, so calling it again for the same name leaves the same state.
func (o *SandboxOracle) GotoState(name string) error {
	snap, ok := o.namedStates[name]
	if !ok {
		return fmt.Errorf("physics: unknown state %q", name)
	}
	o.restoreAll(snap)
	for _, b := range o.space.bodies {
		b.checkpoint()
	}
	o.currState = name
	o.hasState = true
	return nil
}

// CurrState implements Oracle.CurrState.
func (o *SandboxOracle) CurrState() (string, bool) { return o.currState, o.hasState }

// AnalyzeFuture implements Oracle.AnalyzeFuture.
func (o *SandboxOracle) AnalyzeFuture(dt float64, before func(), after func() interface{}) interface{} {
	o.pushFrame()
	defer o.popFrame()

	for _, b := range o.space.bodies {
		b.checkpoint()
	}
	if before != nil {
		before()
	}
	if dt > 0 {
		o.space.Step(dt)
	}
	var result interface{}
	if after != nil {
		result = after()
	}
	return result
}

func (o *SandboxOracle) pushFrame() {
	o.frames = append(o.frames, frame{snapshots: o.snapshotAll()})
}

// popFrame restores the most recently pushed frame. Popping with no frame
// pushed is a programmer error, so it panics rather than silently
// corrupting state.
func (o *SandboxOracle) popFrame() {
	n := len(o.frames)
	if n == 0 {
		panic("physics: popFrame called with no pushed frame")
	}
	top := o.frames[n-1]
	o.frames = o.frames[:n-1]
	o.restoreAll(top.snapshots)
}

// ApplyCentralImpulse implements Oracle.ApplyCentralImpulse.
func (o *SandboxOracle) ApplyCentralImpulse(body *Body, dir Direction, mag Magnitude) {
	scale := impulseScale[mag] * body.mass
	var impulse Vec2
	switch dir {
	case Left:
		impulse = Vec2{X: -scale, Y: 0}
	case Right:
		impulse = Vec2{X: scale, Y: 0}
	case Up:
		impulse = Vec2{X: 0, Y: -scale}
	case Down:
		impulse = Vec2{X: 0, Y: scale}
	}
	body.ApplyLinearImpulse(impulse)
}

// IsStatic implements Oracle.IsStatic.
func (o *SandboxOracle) IsStatic(body *Body) bool { return body.bodyType == Static }

// WakeUp implements Oracle.WakeUp: marks every dynamic body active.
func (o *SandboxOracle) WakeUp() {
	for _, b := range o.space.bodies {
		if b.bodyType == Dynamic {
			b.active = true
		}
	}
}

// ForEachDynamicBody implements Oracle.ForEachDynamicBody.
func (o *SandboxOracle) ForEachDynamicBody(f func(*Body)) {
	for _, b := range o.space.bodies {
		if b.bodyType == Dynamic {
			f(b)
		}
	}
}

// GetBodyDistance implements Oracle.GetBodyDistance.
func (o *SandboxOracle) GetBodyDistance(body *Body) float64 { return body.DistanceMoved() }

// GetClosestBodyWithDist implements Oracle.GetClosestBodyWithDist.
func (o *SandboxOracle) GetClosestBodyWithDist(body *Body) (*Body, float64, bool) {
	var best *Body
	bestDist := 0.0
	for _, b := range o.space.bodies {
		if b == body {
			continue
		}
		d := surfaceDistance(body, b)
		if best == nil || d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, bestDist, best != nil
}

// GetTouchedBodiesWithPos implements Oracle.GetTouchedBodiesWithPos.
func (o *SandboxOracle) GetTouchedBodiesWithPos(body *Body) []TouchedBody {
	var out []TouchedBody
	for _, b := range o.space.bodies {
		if b == body {
			continue
		}
		if touching(body, b) {
			mid := body.position.Add(b.position).Scale(0.5)
			out = append(out, TouchedBody{Body: b, Pts: []Vec2{mid}})
		}
	}
	return out
}

// GetSpatialGroups implements Oracle.GetSpatialGroups via union-find over
// the surface-distance graph thresholded at maxDist (expressed, like
// pbpSettings.max_dist, as a fraction of the 100-unit scene span).
func (o *SandboxOracle) GetSpatialGroups(maxDist float64, bodies []*Body) [][]*Body {
	if len(bodies) == 0 {
		bodies = o.space.bodies
	}
	parent := make(map[*Body]*Body, len(bodies))
	var find func(*Body) *Body
	find = func(b *Body) *Body {
		if parent[b] != b {
			parent[b] = find(parent[b])
		}
		return parent[b]
	}
	union := func(a, b *Body) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for _, b := range bodies {
		parent[b] = b
	}
	thresholdUnits := maxDist * 100
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if surfaceDistance(bodies[i], bodies[j]) <= thresholdUnits {
				union(bodies[i], bodies[j])
			}
		}
	}
	groups := make(map[*Body][]*Body)
	for _, b := range bodies {
		root := find(b)
		groups[root] = append(groups[root], b)
	}
	out := make([][]*Body, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}

// ObserveCollisions implements Oracle.ObserveCollisions: goes to "start",
// steps 0.1s, records every pair that was not touching before the step and
// is touching after it, with its relative speed, then restores "start".
func (o *SandboxOracle) ObserveCollisions() []Collision {
	if err := o.GotoState("start"); err != nil {
		return nil
	}
	o.pushFrame()
	defer o.popFrame()

	wasTouching := make(map[[2]*Body]bool)
	bodies := o.space.bodies
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			wasTouching[[2]*Body{bodies[i], bodies[j]}] = touching(bodies[i], bodies[j])
		}
	}

	o.space.Step(0.1)

	var collisions []Collision
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			key := [2]*Body{bodies[i], bodies[j]}
			if touching(bodies[i], bodies[j]) && !wasTouching[key] {
				collisions = append(collisions, Collision{
					A: bodies[i], B: bodies[j], Dv: relativeSpeed(bodies[i], bodies[j]),
				})
			}
		}
	}
	return collisions
}
