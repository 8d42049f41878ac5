// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the process-wide Settings and the three feature
// registries populated at module load by package attribute and package
// relation's init() functions.
package config

import (
	"os"

	"github.com/pbperception/pbp/feature"
	"gopkg.in/yaml.v2"
)

// Settings is the process-wide configuration plus the registries every
// feature is looked up through.
type Settings struct {
	// MaxDist is the default clustering distance for spatial groups,
	// expressed as a fraction of the 100-unit scene span.
	MaxDist float64 `yaml:"max_dist"`

	// ActivationThreshold is the boundary between "active" and "inactive"
	// percepts for label matching.
	ActivationThreshold float64 `yaml:"activation_threshold"`

	// ScenePairCount is the number of scene pairs Solution.isSolution
	// requires a clean sweep across, default 8.
	ScenePairCount int `yaml:"scene_pair_count"`

	ObjAttrs   map[string]feature.AttrDescriptor  `yaml:"-"`
	GroupAttrs map[string]feature.GroupDescriptor `yaml:"-"`
	ObjRels    map[string]feature.RelDescriptor   `yaml:"-"`
}

// fileSettings mirrors the subset of Settings that can be overridden from
// YAML: the registries are populated in Go, at init time, never from a
// config file.
type fileSettings struct {
	MaxDist             *float64 `yaml:"max_dist"`
	ActivationThreshold *float64 `yaml:"activation_threshold"`
	ScenePairCount       *int     `yaml:"scene_pair_count"`
}

// Default is the package-wide singleton Settings the rest of the module
// consults when no explicit Settings is threaded through.
var Default = &Settings{
	MaxDist:             0.06,
	ActivationThreshold: 0.5,
	ScenePairCount:       8,
	ObjAttrs:             make(map[string]feature.AttrDescriptor),
	GroupAttrs:           make(map[string]feature.GroupDescriptor),
	ObjRels:              make(map[string]feature.RelDescriptor),
}

// RegisterObjAttr adds d to the default object-attribute registry. Called
// from package attribute's init(); panics on a duplicate key, since a
// clashing registration is a build-time programmer error, not a runtime
// condition.
func RegisterObjAttr(d feature.AttrDescriptor) {
	if _, exists := Default.ObjAttrs[d.Key]; exists {
		panic("config: duplicate object attribute key " + d.Key)
	}
	Default.ObjAttrs[d.Key] = d
}

// RegisterGroupAttr adds d to the default group-attribute registry.
func RegisterGroupAttr(d feature.GroupDescriptor) {
	if _, exists := Default.GroupAttrs[d.Key]; exists {
		panic("config: duplicate group attribute key " + d.Key)
	}
	Default.GroupAttrs[d.Key] = d
}

// RegisterObjRel adds d to the default object-relation registry.
func RegisterObjRel(d feature.RelDescriptor) {
	if _, exists := Default.ObjRels[d.Key]; exists {
		panic("config: duplicate object relation key " + d.Key)
	}
	Default.ObjRels[d.Key] = d
}

// Load reads path as YAML and returns a Settings that starts from Default
// and applies any of max_dist/activation_threshold/scene_pair_count the
// file overrides. Unmarshals into a struct of optional pointer fields so a
// sparse override file only touches what it mentions, the same
// unmarshal-into-struct pattern gui/builder.go uses for panel descriptors,
// repointed at process configuration.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// LoadBytes is Load without the file-read step, exposed for tests and for
// callers that already have the YAML document in memory.
func LoadBytes(data []byte) (*Settings, error) {
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, err
	}
	out := *Default
	if fs.MaxDist != nil {
		out.MaxDist = *fs.MaxDist
	}
	if fs.ActivationThreshold != nil {
		out.ActivationThreshold = *fs.ActivationThreshold
	}
	if fs.ScenePairCount != nil {
		out.ScenePairCount = *fs.ScenePairCount
	}
	return &out, nil
}
