// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
	"github.com/pbperception/pbp/physics"
)

// namedTimes is the ordered list of named simulator states perceiveAll
// walks: "start" then "end".
var namedTimes = []string{"start", "end"}

// SceneNode owns every ObjectNode in a scene plus the ground/frame shapes
// and the oracle, and implements feature.Context so attribute/relation
// constructors can reach the rest of the scene without importing this
// package.
type SceneNode struct {
	// ID is a fresh uuid telling scenes apart across a run; cosmetic,
	// nothing downstream keys off it.
	ID string

	objects map[string]*ObjectNode
	order   []string // insertion order, for Shapes()'s stable iteration

	ground *geometry.Shape
	frame  *geometry.Shape

	oracle physics.Oracle
	cfg    *config.Settings

	groupCaches map[string]*groupCache

	collisions     []feature.SceneCollision
	collisionsDone bool

	// FitsSolution records the last Solution.check_scene outcome against
	// this scene.
	FitsSolution bool
}

// NewSceneNode builds a scene over movable, wrapping each in its own
// ObjectNode, plus optional ground and frame shapes (nil when absent).
func NewSceneNode(oracle physics.Oracle, cfg *config.Settings, movable []geometry.Shape, ground, frame geometry.Shape) *SceneNode {
	if cfg == nil {
		cfg = config.Default
	}
	s := &SceneNode{
		ID:      uuid.New().String(),
		objects: make(map[string]*ObjectNode, len(movable)),
		oracle:  oracle,
		cfg:     cfg,
	}
	for _, shape := range movable {
		s.objects[shape.ID()] = NewObjectNode(shape, s)
		s.order = append(s.order, shape.ID())
	}
	if ground != nil {
		s.ground = &ground
	}
	if frame != nil {
		s.frame = &frame
	}
	return s
}

// Object looks up the ObjectNode for a movable shape id.
func (s *SceneNode) Object(id string) (*ObjectNode, bool) {
	n, ok := s.objects[id]
	return n, ok
}

// resolveTime applies the time-resolution rule: a constant
// feature always resolves against "start"; otherwise an unspecified time
// falls back to the oracle's current named state, if any. The second
// return reports whether the result should be cached at all — a percept
// computed with no named state to anchor it (constant=false, time="" and
// the oracle has no curr_state) is returned to the caller but never
// memoized.
func (s *SceneNode) resolveTime(time string, constant bool) (string, bool) {
	if constant {
		return "start", true
	}
	if time != "" {
		return time, true
	}
	if cur, ok := s.oracle.CurrState(); ok {
		return cur, true
	}
	return "", false
}

// Percept implements feature.Context.Percept, routing through the owning
// ObjectNode's cache/resolution rule.
func (s *SceneNode) Percept(shapeID, key, time, otherID string) (feature.Percept, bool) {
	n, ok := s.objects[shapeID]
	if !ok {
		return nil, false
	}
	p, err := n.Get(key, time, otherID, false)
	if err != nil {
		return nil, false
	}
	return p, true
}

func (s *SceneNode) Oracle() physics.Oracle        { return s.oracle }
func (s *SceneNode) MaxDist() float64              { return s.cfg.MaxDist }
func (s *SceneNode) ActivationThreshold() float64  { return s.cfg.ActivationThreshold }

// Shapes returns every movable shape, in the order they were added to the
// scene. This is the set *_most/single scan over: ground and frame are
// never "most" candidates.
func (s *SceneNode) Shapes() []geometry.Shape {
	out := make([]geometry.Shape, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.objects[id].shape)
	}
	return out
}

// ShapeByID implements feature.Context.ShapeByID: movable shapes only.
func (s *SceneNode) ShapeByID(id string) (geometry.Shape, bool) {
	n, ok := s.objects[id]
	if !ok {
		return nil, false
	}
	return n.shape, true
}

// AnyShapeByID additionally resolves the ground and frame ids, for
// relations (touch, on_top_of) that take either as a partner.
func (s *SceneNode) AnyShapeByID(id string) (geometry.Shape, bool) {
	if shape, ok := s.ShapeByID(id); ok {
		return shape, true
	}
	if s.ground != nil && (*s.ground).ID() == id {
		return *s.ground, true
	}
	if s.frame != nil && (*s.frame).ID() == id {
		return *s.frame, true
	}
	return nil, false
}

// AllShapes is Shapes() plus ground/frame when present, the partner set
// ObjectNode.GetAll iterates over.
func (s *SceneNode) AllShapes() []geometry.Shape {
	out := s.Shapes()
	if s.ground != nil {
		out = append(out, *s.ground)
	}
	if s.frame != nil {
		out = append(out, *s.frame)
	}
	return out
}

func (s *SceneNode) Ground() (geometry.Shape, bool) {
	if s.ground == nil {
		return nil, false
	}
	return *s.ground, true
}

func (s *SceneNode) Frame() (geometry.Shape, bool) {
	if s.frame == nil {
		return nil, false
	}
	return *s.frame, true
}

// Collisions implements feature.Context.Collisions, computing and caching
// the scene's collision set on first use via perceiveCollisions.
func (s *SceneNode) Collisions() []feature.SceneCollision {
	if !s.collisionsDone {
		s.perceiveCollisions()
	}
	return s.collisions
}

// perceiveCollisions runs the oracle's start/end collision sweep once and
// rewrites each physics-body pair into the owning shapes, using the
// body->shape back-reference the geometry layer installs.
func (s *SceneNode) perceiveCollisions() {
	s.collisionsDone = true
	for _, c := range s.oracle.ObserveCollisions() {
		shapeA, okA := c.A.OwnerShape().(geometry.Shape)
		shapeB, okB := c.B.OwnerShape().(geometry.Shape)
		if !okA || !okB {
			continue
		}
		s.collisions = append(s.collisions, feature.SceneCollision{A: shapeA, B: shapeB, Dv: c.Dv})
	}
}

// PerceiveAll first runs perceiveCollisions once, then walks every named
// time ("start" then "end"), goes to that state, and perceives every
// ObjectNode.
func (s *SceneNode) PerceiveAll() error {
	if !s.collisionsDone {
		s.perceiveCollisions()
	}
	for _, time := range namedTimes {
		if err := s.oracle.GotoState(time); err != nil {
			return err
		}
		for _, id := range s.order {
			s.objects[id].Perceive(time)
		}
	}
	return nil
}

// DebugDump renders a textual summary of the scene: its id, object count,
// and every ObjectNode's own DebugDump.
func (s *SceneNode) DebugDump() string {
	out := "SceneNode{id: " + s.ID + ", objects: " + strconv.Itoa(len(s.order)) + "}\n"
	for _, id := range s.order {
		out += "  " + s.objects[id].DebugDump() + "\n"
	}
	return out
}
