// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

// Direction is one of the four cardinal pushes applyCentralImpulse accepts.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Magnitude scales the stock impulse applyCentralImpulse applies, relative
// to body mass.
type Magnitude string

const (
	Small  Magnitude = "small"
	Medium Magnitude = "medium"
)

// impulseScale is the mag·mass multiplier table backing
// ApplyCentralImpulse. Values are tuned so that a Medium push on a
// resting body is enough to destabilize an object that is not well
// supported, per the thresholds stability checks against.
var impulseScale = map[Magnitude]float64{
	Small:  1.0,
	Medium: 3.0,
}

// Collision is one contact observed by ObserveCollisions: two bodies and
// the relative speed at the moment of contact.
type Collision struct {
	A, B *Body
	Dv   float64
}

// TouchedBody is one entry of GetTouchedBodiesWithPos: a body currently
// touching the query body, plus the contact points.
type TouchedBody struct {
	Body *Body
	Pts  []Vec2
}

// Oracle is the abstract handle to the physics simulator.
// It is single-threaded and non-reentrant outside of AnalyzeFuture's LIFO
// sandbox nesting.
type Oracle interface {
	// GotoState deterministically restores the simulator to a previously
	// named snapshot. Idempotent when already in that state.
	GotoState(name string) error

	// AnalyzeFuture pushes a sandbox frame, runs before (if non-nil),
	// steps the simulator by dt seconds, runs after and captures its
	// return value, then restores the prior simulator state exactly.
	// Every side effect before applied (forces, type changes, impulses,
	// sleep flags) is rolled back. Returns after's value.
	AnalyzeFuture(dt float64, before func(), after func() interface{}) interface{}

	// ApplyCentralImpulse applies the stock impulse for mag·body.mass in
	// the given direction.
	ApplyCentralImpulse(body *Body, dir Direction, mag Magnitude)

	IsStatic(body *Body) bool
	WakeUp()
	ForEachDynamicBody(f func(*Body))
	// GetBodyDistance is the distance body has moved since the last
	// checkpoint (the last GotoState, or sandbox frame entry).
	GetBodyDistance(body *Body) float64
	GetClosestBodyWithDist(body *Body) (*Body, float64, bool)
	GetTouchedBodiesWithPos(body *Body) []TouchedBody
	GetSpatialGroups(maxDist float64, bodies []*Body) [][]*Body

	// ObserveCollisions steps forward from "start", recording every pair
	// that comes into contact with its relative speed, and returns to
	// "start".
	ObserveCollisions() []Collision

	// CurrState is the currently named state, or ("", false) if unset.
	CurrState() (string, bool)
}
