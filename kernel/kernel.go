// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel defines the pointwise dose-kernel contract the
// dose-fluence matrix core consumes, plus the culling wrapper around it
// and one bundled reference implementation.
package kernel

import (
	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/dosefluence/surface"
)

// Kernel evaluates the dose contribution of a single beamlet at a single
// point. The core treats it as opaque: for culled pairs nothing is
// assumed, and for evaluated pairs nothing is assumed about continuity,
// positivity or symmetry.
type Kernel interface {
	PointDose(pos geom.Point, b geom.Beamlet, s surface.Surface) float64
}

// PointDose culls before ever touching k, returning exactly 0 for culled
// pairs without calling k.PointDose.
func PointDose(k Kernel, pos geom.Point, b geom.Beamlet, s surface.Surface, maxradius float64) float64 {
	r := geom.Sub(pos, b.Src)
	if !geom.InsideCone(r, b.Dir, geom.TanHalfAngle(b, maxradius)) {
		return 0
	}
	return k.PointDose(pos, b, s)
}
