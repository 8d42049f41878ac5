// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package relation

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

// orientation selects which recorded collisions count as evidence: look
// up the SceneNode's recorded collision list with an a->b, b->a, or
// either-direction filter.
type orientation int

const (
	orientForward orientation = iota // shape is c.A, other is c.B
	orientBackward
	orientEither
)

// maxDv scans ctx.Collisions() for every pair matching shape/other under
// orientation, returning the largest relative speed recorded and whether
// any such collision exists at all.
func maxDv(ctx feature.Context, shape, other geometry.Shape, o orientation) (float64, bool) {
	best, found := 0.0, false
	for _, c := range ctx.Collisions() {
		forward := c.A.ID() == shape.ID() && c.B.ID() == other.ID()
		backward := c.A.ID() == other.ID() && c.B.ID() == shape.ID()
		switch o {
		case orientForward:
			if !forward {
				continue
			}
		case orientBackward:
			if !backward {
				continue
			}
		default:
			if !forward && !backward {
				continue
			}
		}
		if !found || c.Dv > best {
			best = c.Dv
			found = true
		}
	}
	return best, found
}

// collisionRel is shared by hits/gets_hit/collides: all
// three are constant — the collision set is fixed once observeCollisions
// runs — and binary: activity 1 iff any matching collision exists.
func collisionRel(key string, o orientation, sym bool) feature.RelConstructor {
	return func(shape, other geometry.Shape, ctx feature.Context, _ string) feature.RelationPercept {
		act := 0.0
		if _, ok := maxDv(ctx, shape, other, o); ok {
			act = 1
		}
		return feature.SimpleRelation{
			Simple:     feature.Simple{KeyName: key, IsConstant: true, Act: act, Lbl: key},
			OtherShape: other, Sym: sym,
		}
	}
}

func init() {
	config.RegisterObjRel(feature.RelDescriptor{Key: "collides", Constant: true, Symmetric: true, New: collisionRel("collides", orientEither, true)})
	config.RegisterObjRel(feature.RelDescriptor{Key: "hits", Constant: true, Symmetric: false, New: collisionRel("hits", orientForward, false)})
	config.RegisterObjRel(feature.RelDescriptor{Key: "gets_hit", Constant: true, Symmetric: false, New: collisionRel("gets_hit", orientBackward, false)})
}
