// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node implements the perception-cache graph: ObjectNode/GroupNode
// wrap a geometry.Shape (or a set of them) with a memoized feature.Percept
// cache, and SceneNode ties the whole scene together as the feature.Context
// every attribute/relation constructor is built against. Modeled on
// core.Node's pattern: a thin wrapper owning identity plus a cache, with
// the actual computation delegated out (there, to Renderable/Material;
// here, to the attribute/relation registries).
package node

import (
	"github.com/kr/pretty"

	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
	"github.com/pbperception/pbp/perr"
)

// ObjectNode wraps one movable geometry.Shape with its percept cache.
type ObjectNode struct {
	shape geometry.Shape
	scene *SceneNode
	cache map[string]feature.Percept

	// selectors is the list of Selectors that currently describe this
	// node. Held as interface{} to avoid an import cycle
	// (package selector depends on package node, not the reverse) —
	// mirrors the Shape<->ObjectNode back-reference's own interface{}
	// escape hatch in package geometry.
	selectors []interface{}
}

// NewObjectNode wraps shape, back-referencing scene for sibling lookups.
func NewObjectNode(shape geometry.Shape, scene *SceneNode) *ObjectNode {
	n := &ObjectNode{shape: shape, scene: scene, cache: make(map[string]feature.Percept)}
	shape.SetOwnerNode(n)
	return n
}

// Shape returns the wrapped geometry.Shape.
func (n *ObjectNode) Shape() geometry.Shape { return n.shape }

// AddSelector records sel (a *selector.Selector) as one of the Selectors
// that currently describe this node.
func (n *ObjectNode) AddSelector(sel interface{}) { n.selectors = append(n.selectors, sel) }

// Selectors returns every Selector recorded via AddSelector, in order.
func (n *ObjectNode) Selectors() []interface{} { return n.selectors }

// cacheKey makes constant attributes time-independent: a constant feature
// computed once at any time is valid at every time, so it is cached under
// a single "*" time slot rather than once per distinct time string.
func cacheKey(key, time, other string, constant bool) string {
	if constant {
		time = "*"
	}
	return key + "|" + time + "|" + other
}

// Get resolves one feature value through the single cache/resolution rule
// every attribute and relation lookup in this module goes through: a cache
// hit returns immediately; cacheOnly demands one without computing;
// otherwise the matching registry entry is invoked and the result
// memoized.
func (n *ObjectNode) Get(key, time, other string, cacheOnly bool) (feature.Percept, error) {
	attrDesc, isAttr := n.scene.cfg.ObjAttrs[key]
	relDesc, isRel := n.scene.cfg.ObjRels[key]

	switch {
	case isAttr:
		if other != "" {
			return nil, perr.ErrUnknownFeature
		}
		resolved, cacheable := n.scene.resolveTime(time, attrDesc.Constant)
		if cacheable {
			ck := cacheKey(key, resolved, "", attrDesc.Constant)
			if p, ok := n.cache[ck]; ok {
				return p, nil
			}
		}
		if cacheOnly {
			return nil, perr.ErrCacheMiss
		}
		p := attrDesc.New(n.shape, n.scene, resolved)
		if cacheable {
			n.cache[cacheKey(key, resolved, "", attrDesc.Constant)] = p
		}
		return p, nil

	case isRel:
		if other == "" {
			return nil, perr.ErrMissingPartner
		}
		resolved, cacheable := n.scene.resolveTime(time, relDesc.Constant)
		if cacheable {
			ck := cacheKey(key, resolved, other, relDesc.Constant)
			if p, ok := n.cache[ck]; ok {
				return p, nil
			}
		}
		if cacheOnly {
			return nil, perr.ErrCacheMiss
		}
		otherShape, ok := n.scene.AnyShapeByID(other)
		if !ok {
			return nil, perr.ErrUnknownFeature
		}
		p := relDesc.New(n.shape, otherShape, n.scene, resolved)
		if cacheable {
			n.cache[cacheKey(key, resolved, other, relDesc.Constant)] = p
		}
		return p, nil

	default:
		return nil, perr.ErrUnknownFeature
	}
}

// GetAll resolves key against every other known shape (movable, ground,
// and frame), keyed by partner id. Relations only — get_all on an
// attribute is rejected explicitly via perr.ErrCacheOnlyAttribute.
func (n *ObjectNode) GetAll(key, time string) (map[string]feature.Percept, error) {
	if _, isRel := n.scene.cfg.ObjRels[key]; !isRel {
		return nil, perr.ErrCacheOnlyAttribute
	}
	out := make(map[string]feature.Percept)
	for _, other := range n.scene.AllShapes() {
		if other.ID() == n.shape.ID() {
			continue
		}
		p, err := n.Get(key, time, other.ID(), false)
		if err != nil {
			return nil, err
		}
		out[other.ID()] = p
	}
	return out, nil
}

// Perceive eagerly computes and caches every registered object attribute
// for shape at time, plus every registered relation against every other
// shape in the scene (ground and frame included).
func (n *ObjectNode) Perceive(time string) {
	for key := range n.scene.cfg.ObjAttrs {
		n.Get(key, time, "", false)
	}
	for key := range n.scene.cfg.ObjRels {
		for _, other := range n.scene.AllShapes() {
			if other.ID() == n.shape.ID() {
				continue
			}
			n.Get(key, time, other.ID(), false)
		}
	}
}

// DebugDump renders every cached percept for this node as a textual
// summary via kr/pretty's Sprintf.
func (n *ObjectNode) DebugDump() string {
	return pretty.Sprintf("ObjectNode{shape: %s, cache: %# v}", n.shape.ID(), n.cache)
}
