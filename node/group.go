// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"sort"
	"strings"
	"sync"

	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
	"github.com/pbperception/pbp/perr"
	"github.com/pbperception/pbp/physics"
)

// groupCache is the percept cache GroupNode clones share: two GroupNodes
// built over the same member set (regardless of construction path or
// slice order) resolve to the same cache key and so see each other's
// memoized percepts.
type groupCache struct {
	mu sync.Mutex
	m  map[string]feature.Percept
}

func newGroupCache() *groupCache { return &groupCache{m: make(map[string]feature.Percept)} }

func (c *groupCache) get(key string) (feature.Percept, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.m[key]
	return p, ok
}

func (c *groupCache) put(key string, p feature.Percept) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = p
}

// GroupNode wraps a set of shapes for group-attribute evaluation. Its
// identity for caching purposes is the sorted set of member ids, not the
// slice itself, so two GroupNodes built from the same members via
// different code paths (e.g. a spatial cluster and a hand-picked subset
// that happen to coincide) share one cache.
type GroupNode struct {
	shapes []geometry.Shape
	ids    string // sorted, joined member ids; the cache-sharing identity
	scene  *SceneNode
	cache  *groupCache

	// selectors is the list of Selectors that produced this group, held
	// opaquely for the same reason as ObjectNode's.
	selectors []interface{}
}

// NewGroupNode builds a GroupNode over shapes, keyed by their sorted ids.
func NewGroupNode(shapes []geometry.Shape, scene *SceneNode) *GroupNode {
	ids := make([]string, len(shapes))
	for i, s := range shapes {
		ids[i] = s.ID()
	}
	sort.Strings(ids)
	return &GroupNode{
		shapes: shapes,
		ids:    strings.Join(ids, ","),
		scene:  scene,
		cache:  scene.groupCacheFor(strings.Join(ids, ",")),
	}
}

// Clone returns a GroupNode over the same members sharing this one's
// cache, exercising the cache-sharing-by-pointer design. The selector list
// is copied, not shared: refining a clone's description must not
// retroactively describe the original.
func (g *GroupNode) Clone() *GroupNode {
	sels := make([]interface{}, len(g.selectors))
	copy(sels, g.selectors)
	return &GroupNode{shapes: g.shapes, ids: g.ids, scene: g.scene, cache: g.cache, selectors: sels}
}

// AddSelector records sel (a *selector.Selector) as one of the Selectors
// that produced this group.
func (g *GroupNode) AddSelector(sel interface{}) { g.selectors = append(g.selectors, sel) }

// Selectors returns every Selector recorded via AddSelector, in order.
func (g *GroupNode) Selectors() []interface{} { return g.selectors }

// Scene returns the owning SceneNode, for callers (package selector) that
// need to resolve partner ObjectNodes.
func (g *GroupNode) Scene() *SceneNode { return g.scene }

// Shapes returns the group's members.
func (g *GroupNode) Shapes() []geometry.Shape { return g.shapes }

// Get resolves a group attribute, memoized per (key, time) within the
// group's shared cache.
func (g *GroupNode) Get(key, time string, cacheOnly bool) (feature.Percept, error) {
	desc, ok := g.scene.cfg.GroupAttrs[key]
	if !ok {
		return nil, perr.ErrUnknownFeature
	}
	resolved, cacheable := g.scene.resolveTime(time, desc.Constant)
	ck := key + "|" + g.ids + "|" + resolved
	if cacheable {
		if p, ok := g.cache.get(ck); ok {
			return p, nil
		}
	}
	if cacheOnly {
		return nil, perr.ErrCacheMiss
	}
	p := desc.New(g.shapes, g.scene, resolved)
	if cacheable {
		g.cache.put(ck, p)
	}
	return p, nil
}

// groupCacheFor returns the scene-wide shared cache for a member-id set,
// creating it on first use.
func (s *SceneNode) groupCacheFor(ids string) *groupCache {
	if s.groupCaches == nil {
		s.groupCaches = make(map[string]*groupCache)
	}
	c, ok := s.groupCaches[ids]
	if !ok {
		c = newGroupCache()
		s.groupCaches[ids] = c
	}
	return c
}

// SceneGroup builds the GroupNode over every movable shape in the scene.
func SceneGroup(scene *SceneNode, keyObj ...geometry.Shape) *GroupNode {
	shapes := scene.Shapes()
	if len(keyObj) == 0 || keyObj[0] == nil {
		return NewGroupNode(shapes, scene)
	}
	excludeID := keyObj[0].ID()
	out := make([]geometry.Shape, 0, len(shapes))
	for _, s := range shapes {
		if s.ID() != excludeID {
			out = append(out, s)
		}
	}
	return NewGroupNode(out, scene)
}

// SpatialGroups partitions the scene's movable shapes into proximity
// clusters via the oracle's union-find over surface distance, mapping each
// physics.Body back to its owning geometry.Shape through the back-reference
// the geometry layer installs.
func SpatialGroups(scene *SceneNode, maxDist float64) []*GroupNode {
	shapes := scene.Shapes()
	bodies := make([]*physics.Body, 0, len(shapes))
	for _, s := range shapes {
		if b := feature.Body(s); b != nil {
			bodies = append(bodies, b)
		}
	}
	clusters := scene.oracle.GetSpatialGroups(maxDist, bodies)
	out := make([]*GroupNode, 0, len(clusters))
	for _, cluster := range clusters {
		members := make([]geometry.Shape, 0, len(cluster))
		for _, b := range cluster {
			if shape, ok := b.OwnerShape().(geometry.Shape); ok {
				members = append(members, shape)
			}
		}
		out = append(out, NewGroupNode(members, scene))
	}
	return out
}
