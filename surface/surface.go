// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surface implements the external (patient skin) surface query
// contract: source-surface distance (SSD) and radiological depth, for the
// five surface representations the dose-fluence core supports
// consistently.
package surface

import "github.com/cpmech/dosefluence/geom"

// Surface answers SSD/depth queries for a ray from src through pos. +Inf
// (mesh, cylindrical) or NaN (linear) are reserved sentinel return values
// meaning "no surface along this ray"; they are not errors.
type Surface interface {
	SSD(pos, src geom.Point) float64
}

// Depth returns the radiological depth implied by s for the ray src->pos:
// depth = ‖pos-src‖ - SSD(pos,src). This identity holds across all surface
// variants and is never reimplemented per-variant.
func Depth(s Surface, pos, src geom.Point) float64 {
	return geom.Norm(geom.Sub(pos, src)) - s.SSD(pos, src)
}

// Constant is a fixed-SSD surface used for tests and simple bench fixtures.
type Constant struct {
	SSDValue float64
}

// SSD implements Surface.
func (s Constant) SSD(pos, src geom.Point) float64 {
	return s.SSDValue
}

// Plane is the analytic plane at distance ssd from the source along the
// source-to-isocenter ray. SSD is given by the hypotenuse formula:
//
//	SSD(pos,src) = ssd · ‖src‖·‖src-pos‖ / (src·(src-pos))
type Plane struct {
	SSDValue float64
}

// SSD implements Surface.
func (s Plane) SSD(pos, src geom.Point) float64 {
	origin := geom.Point{}
	srcVec := geom.Sub(src, origin)
	diff := geom.Sub(src, pos)
	denom := geom.Dot(srcVec, diff)
	return s.SSDValue * geom.Norm(srcVec) * geom.Norm(diff) / denom
}
