// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package selector

import (
	"github.com/pbperception/pbp/geometry"
	"github.com/pbperception/pbp/node"
)

// TestFunc replaces a Selector's relation check entirely when supplied to
// Select/matchesObject.
type TestFunc func(n *node.ObjectNode) bool

// matchAttr reports whether p satisfies m: label equality and the
// active-polarity threshold test.
func matchAttr(p interface {
	Label() string
	Activity() float64
}, m AttrMatcher, threshold float64) bool {
	return p.Label() == m.Label && (p.Activity() >= threshold) == m.Active
}

func matchObjAttrs(n *node.ObjectNode, attrs []AttrMatcher, threshold float64) bool {
	for _, m := range attrs {
		p, err := n.Get(m.Key, m.Time, "", false)
		if err != nil || !matchAttr(p, m, threshold) {
			return false
		}
	}
	return true
}

func matchGroupAttrs(g *node.GroupNode, attrs []AttrMatcher, threshold float64) bool {
	for _, m := range attrs {
		p, err := g.Get(m.Key, m.Time, false)
		if err != nil || !matchAttr(p, m, threshold) {
			return false
		}
	}
	return true
}

// matchesObject implements matchesObject: obj_attrs.all(match) AND
// (test_fn(node) if provided else rels.all(match(node, others))).
func (s *Selector) matchesObject(n *node.ObjectNode, scene *node.SceneNode, others []geometry.Shape, test TestFunc) bool {
	threshold := scene.ActivationThreshold()
	if !matchObjAttrs(n, s.ObjAttrs, threshold) {
		return false
	}
	if test != nil {
		return test(n)
	}
	for _, rel := range s.Rels {
		if !rel.match(scene, n, others) {
			return false
		}
	}
	return true
}

// match implements RelMatcher's resolution rule:
//  1. others defaults to every other movable shape in the scene.
//  2. candidates are filtered by the partner selector's own object
//     attributes (the partner selector may not itself carry relations,
//     enforced at construction), then partitioned by whether the direct
//     percept from n to the candidate holds this key/label actively.
//  3. active=false requires zero active partners (universal negation).
//  4. otherwise, other_sel.unique requires exactly one active partner;
//     else at least one.
func (m RelMatcher) match(scene *node.SceneNode, n *node.ObjectNode, others []geometry.Shape) bool {
	threshold := scene.ActivationThreshold()
	candidates := others
	if candidates == nil {
		for _, sh := range scene.Shapes() {
			if sh.ID() != n.Shape().ID() {
				candidates = append(candidates, sh)
			}
		}
	}

	activeCount := 0
	for _, o := range candidates {
		on, ok := scene.Object(o.ID())
		if !ok {
			continue
		}
		if m.OtherSel != nil && !matchObjAttrs(on, m.OtherSel.ObjAttrs, threshold) {
			continue
		}
		p, err := n.Get(m.Key, m.Time, o.ID(), false)
		if err != nil {
			continue
		}
		if p.Label() == m.Label && p.Activity() >= threshold {
			activeCount++
		}
	}

	if !m.Active {
		return activeCount == 0
	}
	if m.OtherSel != nil && m.OtherSel.Unique {
		return activeCount == 1
	}
	return activeCount >= 1
}

// Select applies s to group_node within scene:
// blank selectors pass the group through unchanged; object/mixed types
// filter members by matchesObject; group/mixed types additionally gate the
// whole (possibly filtered) group on its own group attributes, replacing it
// with an empty group (still tagged with s) on failure. test overrides the
// relation check for every member exactly as matchesObject does.
func (s *Selector) Select(group *node.GroupNode, scene *node.SceneNode, test TestFunc) *node.GroupNode {
	if s.Type() == Blank {
		return group
	}

	members := group.Shapes()
	if s.Type() == Object || s.Type() == Mixed {
		filtered := make([]geometry.Shape, 0, len(members))
		for _, sh := range members {
			on, ok := scene.Object(sh.ID())
			if !ok {
				continue
			}
			if s.matchesObject(on, scene, nil, test) {
				on.AddSelector(s)
				filtered = append(filtered, sh)
			}
		}
		members = filtered
	}

	result := node.NewGroupNode(members, scene)
	if s.Type() == Group || s.Type() == Mixed {
		threshold := scene.ActivationThreshold()
		if !matchGroupAttrs(result, s.GrpAttrs, threshold) {
			result = node.NewGroupNode(nil, scene)
		}
	}
	result.AddSelector(s)
	return result
}
