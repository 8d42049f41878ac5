// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"github.com/pbperception/pbp/config"
	"github.com/pbperception/pbp/feature"
	"github.com/pbperception/pbp/geometry"
	"gonum.org/v1/gonum/floats"
)

func leftPosAttr(shape geometry.Shape, _ feature.Context, _ string) feature.Percept {
	act := 1 - feature.Sigmoid(20, 0.4, shape.Position().X/100)
	return feature.Simple{KeyName: "left_pos", Act: act, Lbl: "left_pos"}
}

func rightPosAttr(shape geometry.Shape, _ feature.Context, _ string) feature.Percept {
	xFromRight := 100 - shape.Position().X
	act := 1 - feature.Sigmoid(20, 0.4, xFromRight/100)
	return feature.Simple{KeyName: "right_pos", Act: act, Lbl: "right_pos"}
}

// maxSceneY is the absolute bottom edge of the ground shape, or 100 when
// there is no ground, used to normalize vertical position.
func maxSceneY(ctx feature.Context) float64 {
	if ground, ok := ctx.Ground(); ok {
		return ground.BoundingBox().MaxY
	}
	return 100
}

func topPosAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	maxy := maxSceneY(ctx)
	act := 1 - feature.Sigmoid(20, 0.45, shape.Position().Y/maxy)
	return feature.Simple{KeyName: "top_pos", Act: act, Lbl: "top_pos"}
}

func bottomPosAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	maxy := maxSceneY(ctx)
	yFromBottom := maxy - shape.Position().Y
	act := 1 - feature.Sigmoid(20, 0.3, yFromBottom/maxy)
	return feature.Simple{KeyName: "bottom_pos", Act: act, Lbl: "bottom_pos"}
}

// extremum scans every movable shape for the min/max of axis(shape), via
// gonum/floats.Max/Min over the projected values.
func extremum(ctx feature.Context, axis func(geometry.Shape) float64, wantMax bool) (float64, bool) {
	shapes := ctx.Shapes()
	if len(shapes) == 0 {
		return 0, false
	}
	vals := make([]float64, len(shapes))
	for i, s := range shapes {
		vals[i] = axis(s)
	}
	if wantMax {
		return floats.Max(vals), true
	}
	return floats.Min(vals), true
}

func xAxis(s geometry.Shape) float64 { return s.Position().X }
func yAxis(s geometry.Shape) float64 { return s.Position().Y }

func leftMostAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	ext, ok := extremum(ctx, xAxis, false)
	act := 1.0
	if ok {
		act = feature.CloseMembership(2.5 * absf(shape.Position().X-ext))
	}
	return feature.Simple{KeyName: "left_most", Act: act, Lbl: "left_most"}
}

func rightMostAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	ext, ok := extremum(ctx, xAxis, true)
	act := 1.0
	if ok {
		act = feature.CloseMembership(2.5 * absf(shape.Position().X-ext))
	}
	return feature.Simple{KeyName: "right_most", Act: act, Lbl: "right_most"}
}

func topMostAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	ext, ok := extremum(ctx, yAxis, false)
	act := 1.0
	if ok {
		act = feature.CloseMembership(2.5 * absf(shape.Position().Y-ext))
	}
	return feature.Simple{KeyName: "top_most", Act: act, Lbl: "top_most"}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// singleAttr grades whether shape has no other object nearby.
func singleAttr(shape geometry.Shape, ctx feature.Context, _ string) feature.Percept {
	nearestPercent := 100.0 // no neighbor reads as maximally far
	if body := feature.Body(shape); body != nil {
		if _, dist, ok := ctx.Oracle().GetClosestBodyWithDist(body); ok {
			nearestPercent = dist * shape.PhysScale()
		}
	}
	act := feature.Sigmoid(40, 0.03, nearestPercent/100) - feature.TouchMembership(nearestPercent/100)
	return feature.Simple{KeyName: "single", Act: act, Lbl: "single"}
}

func init() {
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "left_pos", New: leftPosAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "right_pos", New: rightPosAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "top_pos", New: topPosAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "bottom_pos", New: bottomPosAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "left_most", New: leftMostAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "right_most", New: rightMostAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "top_most", New: topMostAttr})
	config.RegisterObjAttr(feature.AttrDescriptor{Key: "single", New: singleAttr})
}
