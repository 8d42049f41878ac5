// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

func testSettings(calls *int) *config.Settings {
	return &config.Settings{
		MaxDist:             0.06,
		ActivationThreshold: 0.5,
		ScenePairCount:      8,
		ObjAttrs: map[string]feature.AttrDescriptor{
			"tag": {Key: "tag", New: func(shape geometry.Shape, ctx feature.Context, time string) feature.Percept {
				if calls != nil {
					*calls++
				}
				return feature.Simple{KeyName: "tag", Act: 1, Lbl: shape.ID()}
			}},
			"const_tag": {Key: "const_tag", Constant: true, New: func(shape geometry.Shape, ctx feature.Context, time string) feature.Percept {
				if calls != nil {
					*calls++
				}
				return feature.Simple{KeyName: "const_tag", Act: 1, Lbl: "const"}
			}},
		},
		ObjRels: map[string]feature.RelDescriptor{
			"near": {Key: "near", New: func(shape, other geometry.Shape, ctx feature.Context, time string) feature.RelationPercept {
				return feature.SimpleRelation{Simple: feature.Simple{KeyName: "near", Act: 1, Lbl: "near"}, OtherShape: other}
			}},
		},
		GroupAttrs: map[string]feature.GroupDescriptor{},
	}
}

func square(id string, cx, cy float64) geometry.Shape {
	half := 5.0
	return geometry.NewPolygon(id, []geometry.Vec2{
		{X: cx - half, Y: cy - half}, {X: cx + half, Y: cy - half},
		{X: cx + half, Y: cy + half}, {X: cx - half, Y: cy + half},
	}, true, true, nil, 1)
}

func TestResolveTimeConstantAlwaysStart(t *testing.T) {
	s := NewSceneNode(&stubOracle{}, testSettings(nil), nil, nil, nil)
	resolved, cacheable := s.resolveTime("end", true)
	assert.Equal(t, "start", resolved)
	assert.True(t, cacheable)
}

func TestResolveTimeExplicitTimeWins(t *testing.T) {
	s := NewSceneNode(&stubOracle{}, testSettings(nil), nil, nil, nil)
	resolved, cacheable := s.resolveTime("end", false)
	assert.Equal(t, "end", resolved)
	assert.True(t, cacheable)
}

func TestResolveTimeFallsBackToCurrState(t *testing.T) {
	oracle := &stubOracle{curr: "start", hasCurr: true}
	s := NewSceneNode(oracle, testSettings(nil), nil, nil, nil)
	resolved, cacheable := s.resolveTime("", false)
	assert.Equal(t, "start", resolved)
	assert.True(t, cacheable)
}

func TestResolveTimeUncacheableWithoutAnchor(t *testing.T) {
	s := NewSceneNode(&stubOracle{}, testSettings(nil), nil, nil, nil)
	resolved, cacheable := s.resolveTime("", false)
	assert.Equal(t, "", resolved)
	assert.False(t, cacheable)
}

func TestShapesPreservesInsertionOrder(t *testing.T) {
	a, b, c := square("a", 0, 0), square("b", 10, 10), square("c", 20, 20)
	s := NewSceneNode(&stubOracle{}, testSettings(nil), []geometry.Shape{a, b, c}, nil, nil)
	ids := []string{}
	for _, sh := range s.Shapes() {
		ids = append(ids, sh.ID())
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestAnyShapeByIDResolvesGroundAndFrame(t *testing.T) {
	a := square("a", 0, 0)
	ground := square("ground", 50, 100)
	frame := square("frame", 50, 50)
	s := NewSceneNode(&stubOracle{}, testSettings(nil), []geometry.Shape{a}, ground, frame)

	_, ok := s.AnyShapeByID("a")
	assert.True(t, ok)
	_, ok = s.AnyShapeByID("ground")
	assert.True(t, ok)
	_, ok = s.AnyShapeByID("frame")
	assert.True(t, ok)
	_, ok = s.AnyShapeByID("nope")
	assert.False(t, ok)
}

func TestAllShapesIncludesGroundAndFrame(t *testing.T) {
	a := square("a", 0, 0)
	ground := square("ground", 50, 100)
	s := NewSceneNode(&stubOracle{}, testSettings(nil), []geometry.Shape{a}, ground, nil)
	assert.Len(t, s.AllShapes(), 2)
}

func TestCollisionsComputedOnceAndCached(t *testing.T) {
	oracle := &stubOracle{}
	s := NewSceneNode(oracle, testSettings(nil), nil, nil, nil)
	s.Collisions()
	s.Collisions()
	assert.Equal(t, 1, oracle.observeCalls)
}

func TestPerceiveAllWalksStartThenEndAndPopulatesCache(t *testing.T) {
	calls := 0
	a := square("a", 0, 0)
	oracle := &stubOracle{}
	s := NewSceneNode(oracle, testSettings(&calls), []geometry.Shape{a}, nil, nil)

	err := s.PerceiveAll()
	assert.NoError(t, err)
	assert.Equal(t, "end", oracle.curr)

	obj, _ := s.Object("a")
	p, err := obj.Get("tag", "start", "", true)
	assert.NoError(t, err)
	assert.Equal(t, "a", p.Label())
	p, err = obj.Get("tag", "end", "", true)
	assert.NoError(t, err)
	assert.Equal(t, "a", p.Label())
}

func TestPerceiveAllPropagatesGotoStateError(t *testing.T) {
	oracle := &stubOracle{gotoErr: errUnknownState}
	s := NewSceneNode(oracle, testSettings(nil), nil, nil, nil)
	err := s.PerceiveAll()
	assert.ErrorIs(t, err, errUnknownState)
}
