// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dosemat

import (
	"testing"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/dosefluence/surface"
	"github.com/cpmech/gosl/chk"
)

// varyingKernel returns a dose that depends on the point and the beamlet's
// SAD (which differs per beamlet in the agreement test) so that test
// exercises more than a single constant.
type varyingKernel struct{}

func (varyingKernel) PointDose(pos geom.Point, b geom.Beamlet, s surface.Surface) float64 {
	return pos.Z*0.01 + b.SAD*0.001
}

// Test_dense_sparse_agreement checks that densifying the sparse back end
// equals the dense back end cell for cell.
func Test_dense_sparse_agreement(tst *testing.T) {

	chk.PrintTitle("dense_sparse_agreement")

	pos := make(geom.Points, 53)
	for i := range pos {
		pos[i] = geom.Point{X: float64(i%9) - 4, Y: float64(i%5) - 2, Z: float64(i) + 1}
	}
	beamlets := make(geom.Beamlets, 8)
	for j := range beamlets {
		beamlets[j] = geom.NewBeamlet(geom.Point{}, geom.Vec{0, 0, 1}, 600+float64(j)*10)
	}
	k := varyingKernel{}
	opts := Options{MaxRadius: 2.5}

	sp := buildCSC(pos, beamlets, surface.Constant{SSDValue: 50}, k, opts)
	de := buildDense(pos, beamlets, surface.Constant{SSDValue: 50}, k, opts)

	densified := sp.ToDense()
	rows, cols := densified.Dims()
	chk.IntAssert(rows, len(pos))
	chk.IntAssert(cols, len(beamlets))

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			chk.Scalar(tst, "dense vs densified-sparse", 1e-12, de.At(i, j), densified.At(i, j))
		}
	}
}

// Test_dense_culled_cells_are_zero checks that a culled (i,j) cell is left
// at the matrix's zero value rather than touched by the kernel.
func Test_dense_culled_cells_are_zero(tst *testing.T) {

	chk.PrintTitle("dense_culled_cells_are_zero")

	pos := geom.Points{{X: 5000, Y: 0, Z: 500}}
	beamlets := geom.Beamlets{geom.NewBeamlet(geom.Point{}, geom.Vec{0, 0, 1}, 1000)}
	de := buildDense(pos, beamlets, surface.Constant{SSDValue: 100}, varyingKernel{}, Options{MaxRadius: 1})
	chk.Scalar(tst, "culled cell", 1e-15, de.At(0, 0), 0)
}
