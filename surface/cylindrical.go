// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/gosl/chk"
)

// Cylindrical is the cylindrical-height-field surface variant: a patient
// model as a height field ρ(ϕ,y) around the patient's y-axis, sampled on a
// (ϕ, y) grid and built once by ray-casting against a triangle mesh.
type Cylindrical struct {
	phiGrid []float64   // degrees, 0..360 inclusive, strictly increasing
	yGrid   []float64   // strictly increasing
	rho     [][]float64 // [len(phiGrid)][len(yGrid)]; rho[last] == rho[0] (closure)
}

// NewCylindricalFromGrid builds a Cylindrical surface directly from a
// precomputed height field, enforcing a strictly increasing y-grid and
// ρ(360°,·) == ρ(0°,·) closure (the last ϕ row is overwritten with the
// first).
func NewCylindricalFromGrid(phiGridDeg, yGrid []float64, rho [][]float64) *Cylindrical {
	if len(phiGridDeg) < 2 || len(yGrid) < 2 {
		chk.Panic("surface: Cylindrical needs at least 2 phi samples and 2 y samples")
	}
	if len(rho) != len(phiGridDeg) {
		chk.Panic("surface: Cylindrical rho must have len(phiGrid) rows")
	}
	for _, row := range rho {
		if len(row) != len(yGrid) {
			chk.Panic("surface: Cylindrical rho rows must have len(yGrid) columns")
		}
	}
	for i := 1; i < len(yGrid); i++ {
		if yGrid[i] <= yGrid[i-1] {
			chk.Panic("surface: Cylindrical y-grid must be strictly increasing")
		}
	}
	s := &Cylindrical{phiGrid: append([]float64(nil), phiGridDeg...), yGrid: append([]float64(nil), yGrid...), rho: make([][]float64, len(rho))}
	for i := range rho {
		s.rho[i] = append([]float64(nil), rho[i]...)
	}
	// enforce closure: the last phi row equals the first
	last := len(s.rho) - 1
	copy(s.rho[last], s.rho[0])
	return s
}

// NewCylindricalFromMesh builds a Cylindrical surface by ray-casting inward
// toward the y-axis at each (ϕ,y) grid sample against mesh, with grid
// spacing dphiDeg (degrees) and dy (length units): ρ = ‖hit - axisPoint‖,
// +Inf where no intersection is found.
func NewCylindricalFromMesh(mesh *Mesh, dphiDeg, dy float64) *Cylindrical {
	if mesh == nil || len(mesh.Triangles) == 0 {
		chk.Panic("surface: Cylindrical mesh construction requires a non-empty mesh")
	}
	if dphiDeg <= 0 || dy <= 0 {
		chk.Panic("surface: Cylindrical grid spacing must be positive")
	}
	yMin, yMax := mesh.Triangles[0].A.Y, mesh.Triangles[0].A.Y
	rMax := 0.0
	for _, t := range mesh.Triangles {
		for _, p := range [3]geom.Point{t.A, t.B, t.C} {
			yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
			rMax = math.Max(rMax, math.Hypot(p.X, p.Z))
		}
	}
	nPhi := int(math.Ceil(360/dphiDeg)) + 1
	nY := int(math.Ceil((yMax-yMin)/dy)) + 1
	if nY < 2 {
		nY = 2
	}
	phiGrid := make([]float64, nPhi)
	for i := range phiGrid {
		phiGrid[i] = float64(i) * dphiDeg
	}
	phiGrid[nPhi-1] = 360
	yGrid := make([]float64, nY)
	step := (yMax - yMin) / float64(nY-1)
	for i := range yGrid {
		yGrid[i] = yMin + float64(i)*step
	}
	castDist := rMax * 4
	rho := make([][]float64, nPhi)
	for i, phiDeg := range phiGrid {
		row := make([]float64, nY)
		phi := phiDeg * math.Pi / 180
		dir := geom.Point{X: -math.Sin(phi), Y: 0, Z: -math.Cos(phi)} // inward, toward the axis
		for j, y := range yGrid {
			axisPoint := geom.Point{X: 0, Y: y, Z: 0}
			origin := geom.Point{X: axisPoint.X - dir.X*castDist, Y: y, Z: axisPoint.Z - dir.Z*castDist}
			best := math.Inf(1)
			for _, tri := range mesh.Triangles {
				if t, ok := rayTriangle(origin, geom.Scale(castDist, dir), tri); ok {
					if t < best {
						best = t
					}
				}
			}
			if math.IsInf(best, 1) {
				row[j] = math.Inf(1)
			} else {
				hit := geom.Add(origin, geom.Scale(best*castDist, dir))
				row[j] = math.Hypot(hit.X-axisPoint.X, hit.Z-axisPoint.Z)
			}
		}
		rho[i] = row
	}
	return NewCylindricalFromGrid(phiGrid, yGrid, rho)
}

// rhoAt bilinearly interpolates the height field at (phiDeg, y), clamping y
// to the sampled range.
func (s *Cylindrical) rhoAt(phiDeg, y float64) float64 {
	phiDeg = math.Mod(phiDeg, 360)
	if phiDeg < 0 {
		phiDeg += 360
	}
	y = math.Max(s.yGrid[0], math.Min(y, s.yGrid[len(s.yGrid)-1]))
	pi := bracket(s.phiGrid, phiDeg)
	yi := bracket(s.yGrid, y)
	flam := lam(s.phiGrid[pi], s.phiGrid[pi+1], phiDeg)
	ylam := lam(s.yGrid[yi], s.yGrid[yi+1], y)
	r00, r01 := s.rho[pi][yi], s.rho[pi][yi+1]
	r10, r11 := s.rho[pi+1][yi], s.rho[pi+1][yi+1]
	r0 := r00 + ylam*(r01-r00)
	r1 := r10 + ylam*(r11-r10)
	return r0 + flam*(r1-r0)
}

// bracket returns i such that grid[i] <= x <= grid[i+1], clamped to the
// valid range [0, len(grid)-2].
func bracket(grid []float64, x float64) int {
	lo, hi := 0, len(grid)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if grid[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func lam(x0, x1, x float64) float64 {
	if x1 == x0 {
		return 0
	}
	return (x - x0) / (x1 - x0)
}

// surfaceFn evaluates ρ(ϕ(r),y(r))² - (r.x²+r.z²) at r = src + λ(pos-src).
func (s *Cylindrical) surfaceFn(pos, src geom.Point, lamVal float64) float64 {
	r := geom.Lerp(src, pos, lamVal)
	phi := math.Atan2(r.X, r.Z) * 180 / math.Pi
	rho := s.rhoAt(phi, r.Y)
	return rho*rho - (r.X*r.X + r.Z*r.Z)
}

// SSD implements Surface. The distance-to-surface scalar is the root, in
// λ∈[0,1], of ρ(ϕ(r),y(r))² - (r.x²+r.z²); +Inf if both endpoints have the
// same sign (the segment does not cross the surface).
func (s *Cylindrical) SSD(pos, src geom.Point) float64 {
	f0 := s.surfaceFn(pos, src, 0)
	f1 := s.surfaceFn(pos, src, 1)
	if (f0 > 0) == (f1 > 0) {
		return math.Inf(1)
	}
	lamRoot := brent(func(l float64) float64 { return s.surfaceFn(pos, src, l) }, 0, 1, f0, f1, 1e-12, 100)
	return lamRoot * geom.Norm(geom.Sub(pos, src))
}

// IsInside reports whether pos lies within the discretized surface: its y
// falls within the sampled range and its radial offset is within ρ at that
// (ϕ,y).
func (s *Cylindrical) IsInside(pos geom.Point) bool {
	if pos.Y < s.yGrid[0] || pos.Y >= s.yGrid[len(s.yGrid)-1] {
		return false
	}
	phi := math.Atan2(pos.X, pos.Z) * 180 / math.Pi
	rho := s.rhoAt(phi, pos.Y)
	return pos.X*pos.X+pos.Z*pos.Z < rho*rho
}

// Extent returns the axis-aligned bounding box (min, max corners) of the
// discretized surface.
func (s *Cylindrical) Extent() (lo, hi geom.Point) {
	maxR := 0.0
	for _, row := range s.rho {
		for _, r := range row {
			if !math.IsInf(r, 1) && r > maxR {
				maxR = r
			}
		}
	}
	lo = geom.Point{X: -maxR, Y: s.yGrid[0], Z: -maxR}
	hi = geom.Point{X: maxR, Y: s.yGrid[len(s.yGrid)-1], Z: maxR}
	return
}

// brent finds a root of f on the bracket [a,b] with f(a)=fa, f(b)=fb of
// opposite sign, using Brent's method (bracketed, derivative-free).
func brent(f func(float64) float64, a, b, fa, fb, tol float64, maxit int) float64 {
	if math.Abs(fa) < math.Abs(fb) {
		a, b = b, a
		fa, fb = fb, fa
	}
	c, fc := a, fa
	mflag := true
	d := a
	for it := 0; it < maxit; it++ {
		if fb == 0 || math.Abs(b-a) < tol {
			return b
		}
		var s float64
		if fa != fc && fb != fc {
			s = a*fb*fc/((fa-fb)*(fa-fc)) + b*fa*fc/((fb-fa)*(fb-fc)) + c*fa*fb/((fc-fa)*(fc-fb))
		} else {
			s = b - fb*(b-a)/(fb-fa)
		}
		cond := s < (3*a+b)/4 || s > b
		if math.IsNaN(s) || cond ||
			(mflag && math.Abs(s-b) >= math.Abs(b-c)/2) ||
			(!mflag && math.Abs(s-b) >= math.Abs(c-d)/2) {
			s = (a + b) / 2
			mflag = true
		} else {
			mflag = false
		}
		fs := f(s)
		d = c
		c, fc = b, fb
		if fa*fs < 0 {
			b, fb = s, fs
		} else {
			a, fa = s, fs
		}
		if math.Abs(fa) < math.Abs(fb) {
			a, b = b, a
			fa, fb = fb, fa
		}
	}
	return b
}
