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

func newZeroedDense(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// buildDense assembles the dense-CPU back end: a parallel nested iteration
// over (j,i) with per-worker column-block scheduling, culled cells left at
// their zero value, no allocation after the output is sized.
func buildDense(pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) *DenseMatrix {
	P := len(pos)
	B := len(beamlets)
	d := mat.NewDense(P, B, nil)
	fillDense(d, pos, beamlets, surf, k, opts)
	return &DenseMatrix{Dense: d}
}

// fillDense fills an already-sized dense matrix, partitioning the outer
// loop by column so each worker owns a disjoint set of columns (and thus a
// disjoint set of cells, since mat.Dense stores each element at a unique
// address) with no synchronization required.
func fillDense(d *mat.Dense, pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) {
	P := len(pos)
	B := len(beamlets)
	maxradius := opts.maxRadiusOrDefault()
	parallelRange(B, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			b := beamlets[j]
			tan := geom.TanHalfAngle(b, maxradius)
			for i := 0; i < P; i++ {
				r := geom.Sub(pos[i], b.Src)
				if !geom.InsideCone(r, b.Dir, tan) {
					continue
				}
				d.Set(i, j, k.PointDose(pos[i], b, surf))
			}
		}
	})
}
