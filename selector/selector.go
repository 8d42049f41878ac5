// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selector implements a compositional predicate: a Selector
// conjoins object-attribute matchers, group-attribute matchers and
// relation matchers, and filters an object/group node into a refined
// GroupNode. Modeled on core.Node's small-struct, no-inheritance style
// (plain field composition) rather than a prototype-chained matcher
// hierarchy.
package selector

import (
	"sort"
	"strings"

	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/perr"
)

// AttrMatcher matches one object or group attribute.
type AttrMatcher struct {
	Key      string
	Label    string
	Active   bool
	Time     string
	Type     feature.TargetType
	Constant bool
}

// dedupKey identifies an AttrMatcher for mergedWith's add_attr dedup rule:
// (key, time, type) — later registration wins.
func (m AttrMatcher) dedupKey() string {
	return m.Key + "|" + m.Time + "|" + m.Type.String()
}

// complexity: +1 base, +1 if time != "start", +2 if active == false.
func (m AttrMatcher) complexity() int {
	c := 1
	if m.Time != "" && m.Time != "start" {
		c++
	}
	if !m.Active {
		c += 2
	}
	return c
}

// RelMatcher matches a binary relation against a nested partner selector.
// OtherSel must not itself contain RelMatchers — enforced by
// NewRelMatcher, which returns ErrIllegalNesting otherwise.
type RelMatcher struct {
	OtherSel  *Selector
	Key       string
	Label     string
	Active    bool
	Time      string
	Constant  bool
	Symmetric bool
}

func (m RelMatcher) dedupKey() string {
	return m.Key + "|" + m.Time + "|" + m.OtherSel.signature()
}

func (m RelMatcher) complexity() int {
	c := 1
	if m.Time != "" && m.Time != "start" {
		c++
	}
	if !m.Active {
		c += 2
	}
	if m.OtherSel != nil {
		c += m.OtherSel.Complexity()
	}
	return c
}

// NewRelMatcher builds a RelMatcher, rejecting an otherSel that itself
// carries RelMatchers.
func NewRelMatcher(cfg *config.Settings, key, label string, active bool, time string, otherSel *Selector) (RelMatcher, error) {
	if otherSel != nil && len(otherSel.Rels) > 0 {
		return RelMatcher{}, perr.ErrIllegalNesting
	}
	desc, ok := cfg.ObjRels[key]
	if !ok {
		return RelMatcher{}, perr.ErrUnknownFeature
	}
	return RelMatcher{
		OtherSel: otherSel, Key: key, Label: label, Active: active, Time: time,
		Constant: desc.Constant, Symmetric: desc.Symmetric,
	}, nil
}

// NewObjAttrMatcher builds an AttrMatcher for an object attribute key,
// looking up its constancy from the registry.
func NewObjAttrMatcher(cfg *config.Settings, key, label string, active bool, time string) (AttrMatcher, error) {
	desc, ok := cfg.ObjAttrs[key]
	if !ok {
		return AttrMatcher{}, perr.ErrUnknownFeature
	}
	return AttrMatcher{Key: key, Label: label, Active: active, Time: time, Type: feature.TargetObj, Constant: desc.Constant}, nil
}

// NewGroupAttrMatcher builds an AttrMatcher for a group attribute key.
func NewGroupAttrMatcher(cfg *config.Settings, key, label string, active bool, time string) (AttrMatcher, error) {
	desc, ok := cfg.GroupAttrs[key]
	if !ok {
		return AttrMatcher{}, perr.ErrUnknownFeature
	}
	return AttrMatcher{Key: key, Label: label, Active: active, Time: time, Type: feature.TargetGroup, Constant: desc.Constant}, nil
}

// Type is the four-way blank/object/group/mixed classification.
type Type int

const (
	Blank Type = iota
	Object
	Group
	Mixed
)

func (t Type) String() string {
	switch t {
	case Object:
		return "object"
	case Group:
		return "group"
	case Mixed:
		return "mixed"
	default:
		return "blank"
	}
}

// Selector is a conjunction of object-attribute matchers, group-attribute
// matchers and relation matchers, plus the unique flag, which is only
// consulted during RelMatcher partner quantification (see match.go)
// despite its name implying broader scope.
type Selector struct {
	ObjAttrs []AttrMatcher
	GrpAttrs []AttrMatcher
	Rels     []RelMatcher
	Unique   bool
}

// New builds an empty (blank) Selector.
func New() *Selector { return &Selector{} }

// Type classifies this selector per the blank/object/group/mixed rule
// table.
func (s *Selector) Type() Type {
	if s == nil || (len(s.ObjAttrs) == 0 && len(s.GrpAttrs) == 0 && len(s.Rels) == 0) {
		return Blank
	}
	if len(s.GrpAttrs) == 0 {
		return Object
	}
	if len(s.ObjAttrs) == 0 && len(s.Rels) == 0 {
		return Group
	}
	return Mixed
}

// Complexity sums every matcher's own complexity contribution, used to
// order candidate selectors from simple to complex.
func (s *Selector) Complexity() int {
	if s == nil {
		return 0
	}
	c := 0
	for _, m := range s.ObjAttrs {
		c += m.complexity()
	}
	for _, m := range s.GrpAttrs {
		c += m.complexity()
	}
	for _, m := range s.Rels {
		c += m.complexity()
	}
	return c
}

// Clone returns a structurally independent copy: mutating the
// clone's matcher slices never affects the original.
func (s *Selector) Clone() *Selector {
	if s == nil {
		return nil
	}
	out := &Selector{Unique: s.Unique}
	out.ObjAttrs = append(out.ObjAttrs, s.ObjAttrs...)
	out.GrpAttrs = append(out.GrpAttrs, s.GrpAttrs...)
	out.Rels = append(out.Rels, s.Rels...)
	return out
}

// AddAttr appends m, deduplicating by (key, time, type): an existing
// matcher with the same dedup key is replaced, not duplicated.
func (s *Selector) AddAttr(m AttrMatcher) {
	list := &s.ObjAttrs
	if m.Type == feature.TargetGroup {
		list = &s.GrpAttrs
	}
	for i, existing := range *list {
		if existing.dedupKey() == m.dedupKey() {
			(*list)[i] = m
			return
		}
	}
	*list = append(*list, m)
}

// AddRel appends m, deduplicating by (key, time, other_sel.equals): an
// existing matcher with the same dedup key is replaced.
func (s *Selector) AddRel(m RelMatcher) {
	for i, existing := range s.Rels {
		if existing.dedupKey() == m.dedupKey() {
			s.Rels[i] = m
			return
		}
	}
	s.Rels = append(s.Rels, m)
}

// MergedWith concatenates matcher lists from s and other, applying
// AddAttr/AddRel's dedup rules, and returns a new Selector. The receiver
// and other are left unmodified.
func (s *Selector) MergedWith(other *Selector) *Selector {
	out := s.Clone()
	if other == nil {
		return out
	}
	for _, m := range other.ObjAttrs {
		out.AddAttr(m)
	}
	for _, m := range other.GrpAttrs {
		out.AddAttr(m)
	}
	for _, m := range other.Rels {
		out.AddRel(m)
	}
	out.Unique = out.Unique || other.Unique
	return out
}

// Equals reports whether s and other describe the same conjunction of
// matchers, independent of slice order — used by round-trip tests.
func (s *Selector) Equals(other *Selector) bool {
	return s.signature() == other.signature()
}

// signature is a stable, order-independent string encoding of every
// matcher this selector carries, used for Equals and for RelMatcher dedup
// comparisons; unlike a generic deep-equal it ignores matcher order.
func (s *Selector) signature() string {
	if s == nil {
		return "<nil>"
	}
	objs := make([]string, len(s.ObjAttrs))
	for i, m := range s.ObjAttrs {
		objs[i] = attrSig(m)
	}
	grps := make([]string, len(s.GrpAttrs))
	for i, m := range s.GrpAttrs {
		grps[i] = attrSig(m)
	}
	rels := make([]string, len(s.Rels))
	for i, m := range s.Rels {
		rels[i] = relSig(m)
	}
	sort.Strings(objs)
	sort.Strings(grps)
	sort.Strings(rels)
	unique := "0"
	if s.Unique {
		unique = "1"
	}
	return strings.Join([]string{
		"obj:[" + strings.Join(objs, ";") + "]",
		"grp:[" + strings.Join(grps, ";") + "]",
		"rel:[" + strings.Join(rels, ";") + "]",
		"uniq:" + unique,
	}, " ")
}

func attrSig(m AttrMatcher) string {
	active := "0"
	if m.Active {
		active = "1"
	}
	return m.Key + "=" + m.Label + "@" + m.Time + "#" + m.Type.String() + "!" + active
}

func relSig(m RelMatcher) string {
	active := "0"
	if m.Active {
		active = "1"
	}
	return m.Key + "=" + m.Label + "@" + m.Time + "!" + active + "->(" + m.OtherSel.signature() + ")"
}
