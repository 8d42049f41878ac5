// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

// supportProbeDt is how far a supports-removal counterfactual steps before
// checking whether the dependent body started moving.
const supportProbeDt = 0.2

// fallVelocityThreshold is the scene-units/s velocity past which a
// dependent body counts as "started falling" once its support is pulled.
const fallVelocityThreshold = 0.3

// restingOn reports whether shape is touching other and sits beneath it:
// the geometric precondition for direct support (scene Y grows downward).
func restingOn(shape, other geometry.Shape) bool {
	return feature.Touching(shape, other) && shape.Position().Y > other.Position().Y
}

// removalCausesFall deactivates support's body for supportProbeDt seconds
// and reports whether dependent's velocity grew past fallVelocityThreshold,
// i.e. whether dependent was actually relying on support to stay put.
func removalCausesFall(ctx feature.Context, support, dependent geometry.Shape) bool {
	sb, db := feature.Body(support), feature.Body(dependent)
	if sb == nil || db == nil {
		return false
	}
	before := func() { sb.SetActive(false) }
	after := func() interface{} { return db.LinearVelocityLength() }
	v, _ := ctx.Oracle().AnalyzeFuture(supportProbeDt, before, after).(float64)
	return v*dependent.PhysScale() > fallVelocityThreshold
}

// directSupport is restingOn confirmed by the removal probe.
func directSupport(ctx feature.Context, support, dependent geometry.Shape) bool {
	return restingOn(support, dependent) && removalCausesFall(ctx, support, dependent)
}

// indirectSupport is a single-hop transitive closure over directSupport:
// support holds up some third body which in turn directly supports
// dependent. Bounded to one hop rather than a full transitive closure to
// avoid recursing back through package node's percept cache.
func indirectSupport(ctx feature.Context, support, dependent geometry.Shape) bool {
	for _, mid := range ctx.Shapes() {
		if mid.ID() == support.ID() || mid.ID() == dependent.ID() {
			continue
		}
		if directSupport(ctx, support, mid) && directSupport(ctx, mid, dependent) {
			return true
		}
	}
	return false
}

// stabilizes holds when shape touches dependent without bearing its
// weight from below, yet removing shape still destabilizes dependent (a
// lateral brace rather than a floor).
func stabilizes(ctx feature.Context, shape, dependent geometry.Shape) bool {
	if !feature.Touching(shape, dependent) || restingOn(shape, dependent) {
		return false
	}
	return removalCausesFall(ctx, shape, dependent)
}

// supportsRel classifies how shape holds dependent up, if at all: directly
// (shape is the floor it rests on), indirectly (through one intermediate
// body), stabilizes (lateral brace, not load-bearing), or not at all.
func supportsRel(shape, other geometry.Shape, ctx feature.Context, _ string) feature.RelationPercept {
	label, act := "not", 0.0
	ob := feature.Body(other)
	alreadyMoving := ob != nil && ob.LinearVelocityLength()*other.PhysScale() > fallVelocityThreshold
	switch {
	case shape.ID() == other.ID() || alreadyMoving:
		// not: a body can't support itself, and one already moving on its
		// own doesn't depend on shape to do so.
	case directSupport(ctx, shape, other):
		label, act = "directly", 1.0
	case indirectSupport(ctx, shape, other):
		label, act = "indirectly", 0.7
	case stabilizes(ctx, shape, other):
		label, act = "stabilizes", 0.4
	}
	return feature.SimpleRelation{
		Simple:     feature.Simple{KeyName: "supports", Act: act, Lbl: label},
		OtherShape: other, Sym: false,
	}
}

func init() {
	config.RegisterObjRel(feature.RelDescriptor{Key: "supports", Symmetric: false, New: supportsRel})
}
