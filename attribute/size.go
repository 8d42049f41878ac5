// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
)

// sceneArea is the normalized 100x100 scene's total area.
const sceneArea = 100.0 * 100.0

func areaPercent(shape geometry.Shape) float64 {
	return shape.Area() / sceneArea * 100
}

func smallAttr(shape geometry.Shape, _ feature.Context, _ string) feature.Percept {
	act := 1 - feature.Sigmoid(4, 1.8, areaPercent(shape))
	return feature.Simple{KeyName: "small", IsConstant: true, Act: act, Lbl: "small"}
}

func largeAttr(shape geometry.Shape, _ feature.Context, _ string) feature.Percept {
	act := feature.Sigmoid(4, 2.0, areaPercent(shape))
	return feature.Simple{KeyName: "large", IsConstant: true, Act: act, Lbl: "large"}
}

func init() {
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "small", Constant: true, New: smallAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "large", Constant: true, New: largeAttr})
}
