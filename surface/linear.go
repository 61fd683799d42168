// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"
	"sort"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/gosl/chk"
)

// degreeSamples is the fixed table size of a Linear surface: one sample per
// integer degree, 0..360 inclusive.
const degreeSamples = 361

// tangentPlane is a local tangent-plane sample: a point on the plane and its
// outward normal.
type tangentPlane struct {
	Normal, Point geom.Point
}

// Linear is the rotating-gantry surface variant: 361 per-degree samples of
// a local tangent plane, selected at query time by linearly interpolating
// the gantry angle ϕg = atan2(src.x, src.z) mod 360° between the two
// bracketing entries.
type Linear struct {
	table [degreeSamples]tangentPlane
}

// NewLinearFromTable builds a Linear surface directly from an already
// densified 361-entry table (both 0° and 360° entries must be supplied
// and equal).
func NewLinearFromTable(normals, points []geom.Point) *Linear {
	if len(normals) != degreeSamples || len(points) != degreeSamples {
		chk.Panic("surface: Linear direct table must have exactly %d entries, got %d normals / %d points", degreeSamples, len(normals), len(points))
	}
	s := &Linear{}
	for i := 0; i < degreeSamples; i++ {
		s.table[i] = tangentPlane{Normal: normals[i], Point: points[i]}
	}
	return s
}

// NewLinearFromSamples builds a Linear surface from an irregular (ϕ, normal,
// point) table, linearly resampling it onto the regular 361-entry grid.
func NewLinearFromSamples(phis []float64, normals, points []geom.Point) *Linear {
	n := len(phis)
	if n < 2 || len(normals) != n || len(points) != n {
		chk.Panic("surface: Linear irregular table needs >=2 matching-length phi/normal/point slices")
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return phis[idx[i]] < phis[idx[j]] })
	sp := make([]float64, n)
	sn := make([]geom.Point, n)
	sm := make([]geom.Point, n)
	for i, k := range idx {
		sp[i] = phis[k]
		sn[i] = normals[k]
		sm[i] = points[k]
	}
	s := &Linear{}
	lo := 0
	for deg := 0; deg < degreeSamples; deg++ {
		phi := float64(deg)
		for lo < len(sp)-2 && sp[lo+1] < phi {
			lo++
		}
		x0, x1 := sp[lo], sp[lo+1]
		lam := 0.0
		if x1 != x0 {
			lam = (phi - x0) / (x1 - x0)
		}
		s.table[deg] = tangentPlane{
			Normal: geom.Lerp(sn[lo], sn[lo+1], lam),
			Point:  geom.Lerp(sm[lo], sm[lo+1], lam),
		}
	}
	return s
}

func gantryAngleDeg(src geom.Point) float64 {
	phi := math.Atan2(src.X, src.Z) * 180 / math.Pi
	phi = math.Mod(phi, 360)
	if phi < 0 {
		phi += 360
	}
	return phi
}

// planeAt interpolates the tangent plane at gantry angle phiDeg.
func (s *Linear) planeAt(phiDeg float64) tangentPlane {
	lo := int(math.Floor(phiDeg))
	if lo >= degreeSamples-1 {
		lo = degreeSamples - 2
	}
	lam := phiDeg - float64(lo)
	a, b := s.table[lo], s.table[lo+1]
	return tangentPlane{
		Normal: geom.Lerp(a.Normal, b.Normal, lam),
		Point:  geom.Lerp(a.Point, b.Point, lam),
	}
}

// SSD implements Surface. Returns NaN if the query ray is parallel to the
// interpolated plane; this differs from MeshBased/Cylindrical's +Inf
// sentinel, since a parallel ray is a degenerate direction rather than a
// ray that simply misses the surface.
func (s *Linear) SSD(pos, src geom.Point) float64 {
	plane := s.planeAt(gantryAngleDeg(src))
	dir := geom.Sub(pos, src)
	denom := geom.Dot(plane.Normal, dir)
	if denom == 0 {
		return math.NaN()
	}
	lam := geom.Dot(plane.Normal, geom.Sub(plane.Point, src)) / denom
	return lam * geom.Norm(dir)
}
