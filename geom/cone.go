// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// InsideCone is the conservative culling predicate: does a point at offset
// r = pos - src lie within a beamlet's cone of influence about unit axis a,
// with half-tangent tanHalfAngle = maxradius/SAD?
//
// Algebraic form (no sqrt, no trig):
//
//	inside ⇔ (r·r) < (r·a)² · (1 + tanHalfAngle²)
//
// This is conservative and has no special case for points behind the
// source: r·a enters squared, so a point with r·a < 0 that lies in the
// mirrored cone behind the source is admitted too, while a point with
// r·a = 0 is always rejected. Both
// passes of the CSC assembly and the dense fill must use this exact
// predicate; they are not permitted to diverge even at a boundary point.
func InsideCone(r, a Vec, tanHalfAngle float64) bool {
	ra := Dot(r, a)
	return Dot(r, r) < ra*ra*(1+tanHalfAngle*tanHalfAngle)
}

// TanHalfAngle returns the cone half-tangent for a beamlet given maxradius.
func TanHalfAngle(b Beamlet, maxradius float64) float64 {
	return maxradius / b.SAD
}
