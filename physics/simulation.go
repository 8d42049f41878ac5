// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package physics implements a minimal 2D rigid-body sandbox: the
// concrete "external simulator" the rest of this module treats as a
// collaborator through the Oracle interface. It favors the counterfactual
// probes perception needs (checkpoint, perturb, measure, restore) over a
// full contact-constraint solver.
package physics

// Gravity is a constant downward acceleration applied to every active
// dynamic body each step, in physics units/s^2. Scene Y grows downward to
// match the scene/object coordinate convention (top_pos / bottom_pos), so
// gravity is positive.
const Gravity = 9.8

// Space owns the set of bodies under simulation and advances them with
// simple semi-implicit Euler integration. Modeled on
// Simulation.Step/StepPlus's stepping loop, stripped of the 3D
// constraint-solver machinery (GJK/EPA narrowphase, Gauss-Seidel contact
// solver) this domain has no use for — it only needs bodies to move
// correctly under force/impulse, not to resolve penetration.
type Space struct {
	bodies []*Body
}

// NewSpace creates an empty simulation space.
func NewSpace() *Space { return &Space{} }

// AddBody adds a body to the simulation if not already present.
func (s *Space) AddBody(b *Body) {
	for _, existing := range s.bodies {
		if existing == b {
			return
		}
	}
	s.bodies = append(s.bodies, b)
}

// Bodies returns the bodies under simulation.
func (s *Space) Bodies() []*Body { return s.bodies }

// Step advances every active dynamic body by dt seconds.
func (s *Space) Step(dt float64) {
	for _, b := range s.bodies {
		if b.bodyType != Dynamic || !b.active {
			b.force = Vec2{}
			continue
		}
		gravityForce := Vec2{X: 0, Y: Gravity * b.mass}
		total := b.force.Add(gravityForce)
		if b.mass > 0 {
			accel := total.Scale(1.0 / b.mass)
			b.velocity = b.velocity.Add(accel.Scale(dt))
		}
		b.position = b.position.Add(b.velocity.Scale(dt))
		b.angle += b.angularV * dt
		b.force = Vec2{}
	}
}

// surfaceDistance is the approximate gap between two bodies' surfaces.
func surfaceDistance(a, b *Body) float64 { return a.SurfaceDistanceTo(b) }

// TouchTolerance is the surface-gap threshold the `touch` relation (and
// the attributes built on top of it, like on_ground) test against: 1 if
// surface distance ≤ 0.5 physics units.
const TouchTolerance = 0.5

func touching(a, b *Body) bool { return surfaceDistance(a, b) <= TouchTolerance }

func relativeSpeed(a, b *Body) float64 { return a.velocity.Sub(b.velocity).Length() }

func clampPositive(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
