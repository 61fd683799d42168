// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"
	"testing"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/gosl/chk"
)

// cylinderGrid builds an exact circular-cylinder height field of radius
// 50, spanning y in [-100,100].
func cylinderGrid() (phiGrid, yGrid []float64, rho [][]float64) {
	for phi := 0.0; phi <= 360; phi += 10 {
		phiGrid = append(phiGrid, phi)
	}
	for y := -100.0; y <= 100; y += 10 {
		yGrid = append(yGrid, y)
	}
	rho = make([][]float64, len(phiGrid))
	for i := range rho {
		rho[i] = make([]float64, len(yGrid))
		for j := range rho[i] {
			rho[i][j] = 50
		}
	}
	return
}

// Test_cylindrical01 checks SSD on a ray crossing a uniform circular
// cylinder radially.
func Test_cylindrical01(tst *testing.T) {

	chk.PrintTitle("cylindrical01")

	phiGrid, yGrid, rho := cylinderGrid()
	s := NewCylindricalFromGrid(phiGrid, yGrid, rho)

	src := geom.Point{X: 0, Y: 0, Z: 200}
	pos := geom.Point{X: 0, Y: 0, Z: 0}
	ssd := s.SSD(pos, src)
	chk.Scalar(tst, "SSD", 1e-6, ssd, 150) // surface at z=50, src at z=200 => distance 150
}

// Test_cylindrical_miss checks the +Inf sentinel when both endpoints are on
// the same side of the surface.
func Test_cylindrical_miss(tst *testing.T) {

	chk.PrintTitle("cylindrical_miss")

	phiGrid, yGrid, rho := cylinderGrid()
	s := NewCylindricalFromGrid(phiGrid, yGrid, rho)

	src := geom.Point{X: 0, Y: 0, Z: 200}
	pos := geom.Point{X: 0, Y: 0, Z: 100}
	ssd := s.SSD(pos, src)
	if !math.IsInf(ssd, 1) {
		tst.Fatalf("expected +Inf when both endpoints are outside the cylinder, got %v", ssd)
	}
}

// Test_cylindrical_closure checks that the constructor closes the height
// field across the 0/360 seam by copying the first ϕ row onto the last.
func Test_cylindrical_closure(tst *testing.T) {

	chk.PrintTitle("cylindrical_closure")

	phiGrid, yGrid, rho := cylinderGrid()
	// perturb the first row slightly so the closure copy is observable
	rho[0][5] = 55
	s := NewCylindricalFromGrid(phiGrid, yGrid, rho)
	chk.Scalar(tst, "rho(0)==rho(360)", 1e-12, s.rho[0][5], s.rho[len(s.rho)-1][5])
}

// Test_cylindrical_isinside checks IsInside against the known cylinder.
func Test_cylindrical_isinside(tst *testing.T) {

	chk.PrintTitle("cylindrical_isinside")

	phiGrid, yGrid, rho := cylinderGrid()
	s := NewCylindricalFromGrid(phiGrid, yGrid, rho)

	if !s.IsInside(geom.Point{X: 10, Y: 0, Z: 10}) {
		tst.Fatal("point well within radius 50 should be inside")
	}
	if s.IsInside(geom.Point{X: 60, Y: 0, Z: 0}) {
		tst.Fatal("point beyond radius 50 should be outside")
	}
}
