// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dosemat

import (
	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/dosefluence/kernel"
	"github.com/cpmech/dosefluence/surface"
	"gonum.org/v1/gonum/mat"
)

// gpuTile is the simulated work-group size of the 2-D grid launch: each
// goroutine plays the role of one thread block evaluating a tile of
// (i,j) cells.
const gpuTile = 64

// buildDenseGPU assembles the DenseGPU back end.
//
// The surface and kernel used on this path must be device-callable, a
// precondition on their type rather than a runtime check; callers should
// restrict this back end to analytic surfaces (Constant, Plane, Linear),
// since MeshBased/Cylindrical embed run-time dispatch (mesh ray casting,
// root finding) that is not trivially device-callable.
//
// No portable, vendor-neutral device-launch binding is used here: this
// back end is a host simulation of a 2-D grid launch (goroutines over
// gpuTile x gpuTile tiles instead of thread blocks), with the
// simulated-launch boundary kept at this file so a real device backend
// can later replace only buildDenseGPU/fillDenseGPU.
func buildDenseGPU(pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) *DenseMatrix {
	P := len(pos)
	B := len(beamlets)
	d := mat.NewDense(P, B, nil)
	fillDenseGPU(d, pos, beamlets, surf, k, opts)
	return &DenseMatrix{Dense: d}
}

func fillDenseGPU(d *mat.Dense, pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) {
	P := len(pos)
	B := len(beamlets)
	maxradius := opts.maxRadiusOrDefault()

	var tiles [][2]int // {iTileStart, jTileStart}
	for i0 := 0; i0 < P; i0 += gpuTile {
		for j0 := 0; j0 < B; j0 += gpuTile {
			tiles = append(tiles, [2]int{i0, j0})
		}
	}

	parallelRange(len(tiles), func(lo, hi int) {
		for t := lo; t < hi; t++ {
			i0, j0 := tiles[t][0], tiles[t][1]
			iEnd, jEnd := i0+gpuTile, j0+gpuTile
			if iEnd > P {
				iEnd = P
			}
			if jEnd > B {
				jEnd = B
			}
			for j := j0; j < jEnd; j++ {
				b := beamlets[j]
				tan := geom.TanHalfAngle(b, maxradius)
				for i := i0; i < iEnd; i++ {
					r := geom.Sub(pos[i], b.Src)
					if !geom.InsideCone(r, b.Dir, tan) {
						continue
					}
					d.Set(i, j, k.PointDose(pos[i], b, surf))
				}
			}
		}
	})
}
