// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import "math"

// Sigmoid is the fuzzy membership curve every graded feature is built
// from: σ(k,m,x) = 1/(1+exp(k·(m−x))).
func Sigmoid(k, m, x float64) float64 {
	return 1 / (1 + math.Exp(k*(m-x)))
}

// Clamp01 clamps an activity value into [0,1], guarding against floating
// point drift at the boundaries of a subtraction/max combinator.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CloseMembership is the shared "how close is this value to some
// reference" membership left_most/right_most/top_most reuse
// (CloseMembership(2.5·|val−extremum|)). It shares its sigmoid
// shape with the `close` relation's own formula (k=30, m=0.2) since both
// express "small gap reads as close", but CloseMembership is applied to an
// already-scaled difference rather than to a raw percent-of-scene
// distance.
func CloseMembership(x float64) float64 {
	return 1 - Sigmoid(30, 0.2, x)
}

// TouchMembership is the graded counterpart the `single` attribute
// subtracts out (nearest-membership minus touch-membership of the same
// distance): a sharper curve than CloseMembership's, centered near zero,
// so that an object already touching its nearest neighbor does not also
// register as "single".
func TouchMembership(x float64) float64 {
	return 1 - Sigmoid(60, 0.01, x)
}

// Max / Min are small variadic max/min helpers, used for instance by the
// beside relation and by the moves/is_supported velocity reading.
func Max(vals ...float64) float64 {
	m := math.Inf(-1)
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}

func Min(vals ...float64) float64 {
	m := math.Inf(1)
	for _, v := range vals {
		if v < m {
			m = v
		}
	}
	return m
}
