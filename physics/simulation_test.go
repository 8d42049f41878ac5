// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepAppliesGravity(t *testing.T) {
	space := NewSpace()
	b := NewBody("falling", 1, Vec2{}, false)
	space.AddBody(b)
	space.Step(1.0)
	assert.InDelta(t, Gravity, b.GetPosition().Y, 1e-9)
}

func TestStepIgnoresStaticBodies(t *testing.T) {
	space := NewSpace()
	b := NewBody("ground", 1, Vec2{X: 0, Y: 50}, false)
	b.SetType(Static)
	space.AddBody(b)
	space.Step(1.0)
	assert.Equal(t, Vec2{X: 0, Y: 50}, b.GetPosition())
}

func TestStepIgnoresInactiveBodies(t *testing.T) {
	space := NewSpace()
	b := NewBody("frozen", 1, Vec2{}, false)
	b.SetActive(false)
	space.AddBody(b)
	space.Step(1.0)
	assert.Equal(t, Vec2{}, b.GetPosition())
}

func TestAddBodyDeduplicates(t *testing.T) {
	space := NewSpace()
	b := NewBody("a", 1, Vec2{}, false)
	space.AddBody(b)
	space.AddBody(b)
	assert.Len(t, space.Bodies(), 1)
}

func TestSurfaceDistanceToFlooredAtZero(t *testing.T) {
	a := NewBody("a", 1, Vec2{X: 0, Y: 0}, true)
	a.SetRadius(5)
	b := NewBody("b", 1, Vec2{X: 1, Y: 0}, true)
	b.SetRadius(5)
	assert.Equal(t, 0.0, a.SurfaceDistanceTo(b))
}

func TestSurfaceDistanceToPositiveGap(t *testing.T) {
	a := NewBody("a", 1, Vec2{X: 0, Y: 0}, true)
	a.SetRadius(1)
	b := NewBody("b", 1, Vec2{X: 5, Y: 0}, true)
	b.SetRadius(1)
	assert.InDelta(t, 3.0, a.SurfaceDistanceTo(b), 1e-9)
}

func TestDistanceMovedSinceCheckpoint(t *testing.T) {
	space := NewSpace()
	b := NewBody("a", 1, Vec2{}, false)
	space.AddBody(b)
	space.Step(1.0)
	assert.Greater(t, b.DistanceMoved(), 0.0)
}

func TestApplyLinearImpulseChangesVelocity(t *testing.T) {
	b := NewBody("a", 2, Vec2{}, false)
	b.ApplyLinearImpulse(Vec2{X: 4, Y: 0})
	assert.InDelta(t, 2.0, b.LinearVelocityLength(), 1e-9)
}

func TestSetActiveFalseZeroesVelocity(t *testing.T) {
	b := NewBody("a", 1, Vec2{}, false)
	b.ApplyLinearImpulse(Vec2{X: 5, Y: 0})
	b.SetActive(false)
	assert.Equal(t, 0.0, b.LinearVelocityLength())
}

func TestOwnerShapeRoundTrip(t *testing.T) {
	b := NewBody("a", 1, Vec2{}, false)
	type marker struct{ n int }
	owner := &marker{n: 3}
	b.SetOwnerShape(owner)
	got, ok := b.OwnerShape().(*marker)
	assert.True(t, ok)
	assert.Equal(t, 3, got.n)
}
