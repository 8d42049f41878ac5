// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solution implements the discriminator layer: a Solution pairs a
// Selector with a side assignment and a cardinality mode, and tracks match
// statistics across the example scene pairs a Bongard-style problem
// presents.
package solution

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/pbperception/pbp/node"
	"github.com/pbperception/pbp/selector"
)

// Mode is the post-selection cardinality test: unique/exists/all.
type Mode string

const (
	ModeUnique Mode = "unique"
	ModeExists Mode = "exists"
	ModeAll    Mode = "all"
)

// Side is which side of a scene pair a Solution is meant to fire on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideBoth  Side = "both"
	SideFail  Side = "fail"
)

// Solution wraps a Selector with a cardinality mode and the running
// left/right match statistics.
type Solution struct {
	ID   string
	Sel  *selector.Selector
	Mode Mode

	MainSide Side

	LChecks, RChecks   int
	LMatches, RMatches int

	// MatchedAgainst is the ordered list of scene-pair ids this Solution
	// has been checked against.
	MatchedAgainst []string
}

// New builds a Solution over sel with the given cardinality mode, stamped
// with a fresh id for log correlation.
func New(sel *selector.Selector, mode Mode) *Solution {
	return &Solution{ID: uuid.New().String(), Sel: sel, Mode: mode, MainSide: SideBoth}
}

// matchesScene applies Sel to scene's full movable-object group and
// reports whether any object survived.
func (s *Solution) matchesScene(scene *node.SceneNode) bool {
	group := node.SceneGroup(scene)
	result := s.Sel.Select(group, scene, nil)
	return len(result.Shapes()) > 0
}

// CheckScenePair applies Sel to both scenes of a pair, updates the running
// match counters, and recomputes MainSide per updateMainSide's table.
func (s *Solution) CheckScenePair(sceneL, sceneR *node.SceneNode, pairID string) {
	s.LChecks++
	s.RChecks++
	if s.matchesScene(sceneL) {
		s.LMatches++
	}
	if s.matchesScene(sceneR) {
		s.RMatches++
	}
	s.MatchedAgainst = append(s.MatchedAgainst, pairID)
	s.updateMainSide()
}

// updateMainSide implements the side-assignment condition table.
func (s *Solution) updateMainSide() {
	switch {
	case s.LMatches == 0 && s.RMatches == s.RChecks:
		s.MainSide = SideRight
	case s.RMatches == 0 && s.LMatches == s.LChecks:
		s.MainSide = SideLeft
	case s.LMatches == s.LChecks && s.RMatches == s.RChecks:
		s.MainSide = SideBoth
	default:
		s.MainSide = SideFail
	}
}

// IsSolution reports whether one side has matched every one of
// scenePairCount scenes and the other side has matched zero.
func (s *Solution) IsSolution(scenePairCount int) bool {
	if s.RChecks == scenePairCount && s.LMatches == 0 && s.RMatches == scenePairCount {
		return true
	}
	if s.LChecks == scenePairCount && s.RMatches == 0 && s.LMatches == scenePairCount {
		return true
	}
	return false
}

// CheckScene applies Sel to the full movable-object group of scene and
// validates the cardinality Mode against the surviving object count,
// setting scene.FitsSolution as a side effect.
func (s *Solution) CheckScene(scene *node.SceneNode) (int, bool) {
	group := node.SceneGroup(scene)
	result := s.Sel.Select(group, scene, nil)
	n := len(result.Shapes())

	var ok bool
	switch s.Mode {
	case ModeUnique:
		ok = n == 1
	case ModeExists:
		ok = n >= 1
	case ModeAll:
		ok = n == len(scene.Shapes())
	}
	scene.FitsSolution = ok
	if !ok {
		return 0, false
	}
	return n, true
}

// MatchRate reports the overall fraction of checked scenes this Solution
// matched, as the check-count-weighted mean of its left-side and
// right-side match rates (stat.Mean over the two per-side rates, weighted
// by LChecks/RChecks so an unevenly-sized pair history isn't skewed
// toward the smaller side). Returns 0 if nothing has been checked yet.
func (s *Solution) MatchRate() float64 {
	if s.LChecks+s.RChecks == 0 {
		return 0
	}
	var lRate, rRate float64
	if s.LChecks > 0 {
		lRate = float64(s.LMatches) / float64(s.LChecks)
	}
	if s.RChecks > 0 {
		rRate = float64(s.RMatches) / float64(s.RChecks)
	}
	return stat.Mean([]float64{lRate, rRate}, []float64{float64(s.LChecks), float64(s.RChecks)})
}

// CompatibleWith screens s against other for merge viability: a Solution
// that has already failed to discriminate (MainSide == fail) can only get
// weaker once ANDed with another selector, never stronger, so it is never
// compatible; and two Solutions committed to opposite definite sides
// cannot be merged into one coherent discriminator either, since the
// conjunction's match set is a subset of both and so can satisfy at most
// one side's "matches everything" half.
func (s *Solution) CompatibleWith(other *Solution) bool {
	if s.MainSide == SideFail || other.MainSide == SideFail {
		return false
	}
	if s.MainSide != SideBoth && other.MainSide != SideBoth && s.MainSide != other.MainSide {
		return false
	}
	return true
}
