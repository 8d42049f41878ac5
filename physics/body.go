// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package physics

import "math"

// Vec2 is a 2D vector in physics-engine units (see phys_scale in package
// geometry for the mapping to scene units).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Length() float64      { return math.Hypot(v.X, v.Y) }

func (v Vec2) DistanceTo(o Vec2) float64 { return v.Sub(o).Length() }

// BodyType specifies how a body is affected during simulation.
type BodyType int

const (
	// Dynamic bodies respond to forces and impulses.
	Dynamic = BodyType(iota)
	// Static bodies never move; zero velocity, infinite mass.
	Static
)

// Body represents a single rigid body in the sandbox. It is the phys_obj
// handle a geometry.Shape carries, satisfying the contract 
// requires of it (m_linearVelocity.Length, GetAngle, GetPosition, GetMass,
// GetWorldCenter, ApplyForce, SetSleepingAllowed, SetActive, SetType,
// IsCircle, distance).
type Body struct {
	name     string
	bodyType BodyType
	isCircle bool
	active   bool // false == deactivated/frozen, used by counterfactual probes

	mass     float64
	position Vec2
	velocity Vec2
	angle    float64 // radians
	angularV float64
	radius   float64 // bounding-circle extent, used for surface-distance contact checks

	force           Vec2
	sleepingAllowed bool
	startPosition   Vec2 // position at the last checkpoint, for DistanceMoved
	startAngle      float64

	// ownerShape is an opaque back-reference to the geometry.Shape that
	// wraps this body. Mirrors core.Node's userData field: a plain
	// interface{} handle rather than an import-cycle-inducing concrete
	// type.
	ownerShape interface{}
}

// NewBody creates a new dynamic body at rest.
func NewBody(name string, mass float64, pos Vec2, isCircle bool) *Body {
	return &Body{
		name:            name,
		bodyType:        Dynamic,
		isCircle:        isCircle,
		active:          true,
		mass:            mass,
		position:        pos,
		startPosition:   pos,
		sleepingAllowed: true,
	}
}

func (b *Body) Name() string { return b.name }

// Radius is the bounding-circle extent used to approximate surface
// distance for contact queries (touch, close, far). Set once by the
// geometry layer from the owning Shape's bounding box.
func (b *Body) Radius() float64 { return b.radius }

// SetRadius installs the bounding-circle extent.
func (b *Body) SetRadius(r float64) { b.radius = r }

// SurfaceDistanceTo is the approximate gap between the two bodies'
// surfaces: center distance minus both radii, floored at 0.
func (b *Body) SurfaceDistanceTo(other *Body) float64 {
	d := b.DistanceTo(other) - b.radius - other.radius
	if d < 0 {
		return 0
	}
	return d
}

// LinearVelocityLength mirrors phys_obj.m_linearVelocity.Length().
func (b *Body) LinearVelocityLength() float64 { return b.velocity.Length() }

// GetAngle mirrors phys_obj.GetAngle().
func (b *Body) GetAngle() float64 { return b.angle }

// GetPosition mirrors phys_obj.GetPosition().
func (b *Body) GetPosition() Vec2 { return b.position }

// GetWorldCenter mirrors phys_obj.GetWorldCenter(). For the simple bodies
// modeled here the center of mass coincides with position.
func (b *Body) GetWorldCenter() Vec2 { return b.position }

// GetMass mirrors phys_obj.GetMass().
func (b *Body) GetMass() float64 { return b.mass }

// ApplyForce mirrors phys_obj.ApplyForce(f, p). The application point p is
// accepted for interface fidelity; torque from off-center forces is not
// modeled since every feature in that applies a force (push,
// upward lift) applies it through the center of mass.
func (b *Body) ApplyForce(f Vec2, p Vec2) {
	if b.bodyType == Static {
		return
	}
	b.force = b.force.Add(f)
}

// ApplyLinearImpulse changes velocity directly, mass-normalized.
func (b *Body) ApplyLinearImpulse(impulse Vec2) {
	if b.bodyType == Static || b.mass <= 0 {
		return
	}
	b.velocity = b.velocity.Add(impulse.Scale(1.0 / b.mass))
}

// SetSleepingAllowed mirrors phys_obj.SetSleepingAllowed(b).
func (b *Body) SetSleepingAllowed(allowed bool) { b.sleepingAllowed = allowed }

// SetActive mirrors phys_obj.SetActive(b). Deactivating a body zeroes its
// velocity and excludes it from integration; used by the `supports`
// relation's counterfactual removal probe.
func (b *Body) SetActive(active bool) {
	b.active = active
	if !active {
		b.velocity = Vec2{}
		b.angularV = 0
	}
}

func (b *Body) Active() bool { return b.active }

// SetType mirrors phys_obj.SetType(static|dynamic).
func (b *Body) SetType(t BodyType) {
	b.bodyType = t
	if t == Static {
		b.velocity = Vec2{}
		b.angularV = 0
	}
}

func (b *Body) Type() BodyType { return b.bodyType }

// IsCircle mirrors phys_obj.IsCircle().
func (b *Body) IsCircle() bool { return b.isCircle }

// DistanceTo mirrors phys_obj.distance(other): center-to-center distance in
// physics units. Callers needing surface distance subtract radii or use
// the SandboxOracle's contact queries instead.
func (b *Body) DistanceTo(other *Body) float64 { return b.position.DistanceTo(other.position) }

// OwnerShape returns the opaque geometry.Shape back-reference, or nil.
func (b *Body) OwnerShape() interface{} { return b.ownerShape }

// SetOwnerShape installs the geometry.Shape back-reference. Called once by
// the geometry layer when a Shape is constructed around this Body.
func (b *Body) SetOwnerShape(s interface{}) { b.ownerShape = s }

func (b *Body) checkpoint() {
	b.startPosition = b.position
	b.startAngle = b.angle
}

// DistanceMoved returns the distance traveled since the last checkpoint
// (oracle.pscene.getBodyDistance).
func (b *Body) DistanceMoved() float64 { return b.position.DistanceTo(b.startPosition) }

// RotationChange returns the absolute rotation, in degrees, since the last
// checkpoint.
func (b *Body) RotationChange() float64 {
	d := math.Abs(b.angle - b.startAngle)
	return d * 180 / math.Pi
}

func (b *Body) snapshot() bodySnapshot {
	return bodySnapshot{
		bodyType: b.bodyType, active: b.active, mass: b.mass,
		position: b.position, velocity: b.velocity,
		angle: b.angle, angularV: b.angularV, force: b.force,
		sleepingAllowed: b.sleepingAllowed,
		startPosition:   b.startPosition, startAngle: b.startAngle,
	}
}

func (b *Body) restore(s bodySnapshot) {
	b.bodyType = s.bodyType
	b.active = s.active
	b.mass = s.mass
	b.position = s.position
	b.velocity = s.velocity
	b.angle = s.angle
	b.angularV = s.angularV
	b.force = s.force
	b.sleepingAllowed = s.sleepingAllowed
	b.startPosition = s.startPosition
	b.startAngle = s.startAngle
}

// bodySnapshot is the restorable state captured by SandboxOracle's named
// states (SaveState/GotoState) and by AnalyzeFuture's sandbox frames. Split out from Body itself so that
// restoring never touches identity fields (name, isCircle, ownerShape).
type bodySnapshot struct {
	bodyType        BodyType
	active          bool
	mass            float64
	position        Vec2
	velocity        Vec2
	angle           float64
	angularV        float64
	force           Vec2
	sleepingAllowed bool
	startPosition   Vec2
	startAngle      float64
}
