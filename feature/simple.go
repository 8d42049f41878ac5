// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "github.com/pbperception/pbp/geometry"

// Simple is a Percept built from four already-computed values: every
// attribute and relation in packages attribute/relation embeds one rather
// than hand-rolling the same four getters.
type Simple struct {
	KeyName    string
	IsConstant bool
	Act        float64
	Lbl        string
}

func (s Simple) Key() string      { return s.KeyName }
func (s Simple) Constant() bool   { return s.IsConstant }
func (s Simple) Activity() float64 { return Clamp01(s.Act) }
func (s Simple) Label() string    { return s.Lbl }

// SimpleRelation is a RelationPercept built the same way, plus the partner
// shape and the relation class's symmetry flag.
type SimpleRelation struct {
	Simple
	OtherShape geometry.Shape
	Sym        bool
}

func (s SimpleRelation) Other() geometry.Shape { return s.OtherShape }
func (s SimpleRelation) Symmetric() bool       { return s.Sym }
