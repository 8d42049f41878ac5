// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFallingOracle() (*SandboxOracle, *Body) {
	space := NewSpace()
	b := NewBody("falling", 1, Vec2{}, false)
	b.SetRadius(1)
	space.AddBody(b)
	oracle := NewSandboxOracle(space)
	oracle.SaveState("start")
	return oracle, b
}

func TestGotoStateRestoresPosition(t *testing.T) {
	oracle, b := newFallingOracle()
	space := oracle.space
	space.Step(1.0)
	assert.NotEqual(t, 0.0, b.GetPosition().Y)

	err := oracle.GotoState("start")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, b.GetPosition().Y)
}

func TestGotoStateUnknownNameErrors(t *testing.T) {
	oracle, _ := newFallingOracle()
	err := oracle.GotoState("nonexistent")
	assert.Error(t, err)
}

func TestGotoStateIdempotent(t *testing.T) {
	oracle, _ := newFallingOracle()
	assert.NoError(t, oracle.GotoState("start"))
	name, ok := oracle.CurrState()
	assert.True(t, ok)
	assert.Equal(t, "start", name)
}

func TestAnalyzeFutureRestoresStateAfterProbe(t *testing.T) {
	oracle, b := newFallingOracle()
	before := func() { b.ApplyLinearImpulse(Vec2{X: 10, Y: 0}) }
	after := func() interface{} { return b.GetPosition().X }
	moved, _ := oracle.AnalyzeFuture(0.5, before, after).(float64)
	assert.Greater(t, moved, 0.0)
	assert.Equal(t, 0.0, b.GetPosition().X) // rolled back
	assert.Equal(t, 0.0, b.LinearVelocityLength())
}

func TestAnalyzeFutureNestsLIFO(t *testing.T) {
	oracle, b := newFallingOracle()
	outer := func() interface{} {
		inner := func() interface{} { return b.GetPosition().X }
		innerBefore := func() { b.ApplyLinearImpulse(Vec2{X: 5, Y: 0}) }
		return oracle.AnalyzeFuture(0.1, innerBefore, inner)
	}
	result := oracle.AnalyzeFuture(0.1, nil, func() interface{} { return outer() })
	assert.NotNil(t, result)
	assert.Equal(t, 0.0, b.GetPosition().X)
}

func TestPopFrameWithoutPushPanics(t *testing.T) {
	space := NewSpace()
	oracle := NewSandboxOracle(space)
	assert.Panics(t, func() { oracle.popFrame() })
}

func TestApplyCentralImpulseDirections(t *testing.T) {
	oracle, b := newFallingOracle()
	oracle.ApplyCentralImpulse(b, Right, Small)
	assert.Greater(t, b.GetPosition().X+b.velocity.X, 0.0)
}

func TestGetClosestBodyWithDist(t *testing.T) {
	space := NewSpace()
	a := NewBody("a", 1, Vec2{X: 0, Y: 0}, true)
	a.SetRadius(1)
	b := NewBody("b", 1, Vec2{X: 5, Y: 0}, true)
	b.SetRadius(1)
	c := NewBody("c", 1, Vec2{X: 50, Y: 0}, true)
	c.SetRadius(1)
	space.AddBody(a)
	space.AddBody(b)
	space.AddBody(c)
	oracle := NewSandboxOracle(space)

	closest, dist, ok := oracle.GetClosestBodyWithDist(a)
	assert.True(t, ok)
	assert.Same(t, b, closest)
	assert.InDelta(t, 3.0, dist, 1e-9)
}

func TestGetSpatialGroupsClustersByDistance(t *testing.T) {
	space := NewSpace()
	a := NewBody("a", 1, Vec2{X: 0, Y: 0}, true)
	a.SetRadius(1)
	b := NewBody("b", 1, Vec2{X: 2, Y: 0}, true)
	b.SetRadius(1)
	far := NewBody("far", 1, Vec2{X: 100, Y: 0}, true)
	far.SetRadius(1)
	space.AddBody(a)
	space.AddBody(b)
	space.AddBody(far)
	oracle := NewSandboxOracle(space)

	groups := oracle.GetSpatialGroups(0.1, []*Body{a, b, far})
	assert.Len(t, groups, 2)
}

func TestObserveCollisionsDetectsNewContact(t *testing.T) {
	space := NewSpace()
	// a is the static floor below; b sits just far enough above it that
	// a single 0.1s fall closes the gap to within touch tolerance.
	a := NewBody("a", 1, Vec2{X: 0, Y: 3}, true)
	a.SetRadius(1)
	a.SetType(Static)
	b := NewBody("b", 1, Vec2{X: 0, Y: 0.45}, true)
	b.SetRadius(1)
	space.AddBody(a)
	space.AddBody(b)
	oracle := NewSandboxOracle(space)
	oracle.SaveState("start")

	collisions := oracle.ObserveCollisions()
	assert.NotEmpty(t, collisions)

	// start must be restored after the probe.
	assert.Equal(t, 0.45, b.GetPosition().Y)
}

func TestWakeUpReactivatesDynamicBodies(t *testing.T) {
	oracle, b := newFallingOracle()
	b.SetActive(false)
	oracle.WakeUp()
	assert.True(t, b.Active())
}
