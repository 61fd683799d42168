// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dosemat

import (
	"sort"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/dosefluence/kernel"
	"github.com/cpmech/dosefluence/surface"
)

// buildCSC assembles the sparse-CSC back end in four passes: parallel
// column counts, a serial prefix sum, parallel row-index fill, then
// parallel value evaluation over the flat nonzero index with a
// sequential per-worker column-lookup hint. Counting before filling lets
// every worker write to a pre-determined, disjoint slice of the output
// arrays with no atomics and no per-thread buffers.
func buildCSC(pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) *SparseMatrix {
	P := len(pos)
	B := len(beamlets)
	maxradius := opts.maxRadiusOrDefault()

	// pass 1: column counts (parallel over j)
	counts := make([]int, B)
	parallelRange(B, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			b := beamlets[j]
			tan := geom.TanHalfAngle(b, maxradius)
			n := 0
			for i := 0; i < P; i++ {
				r := geom.Sub(pos[i], b.Src)
				if geom.InsideCone(r, b.Dir, tan) {
					n++
				}
			}
			counts[j] = n
		}
	})

	// serial prefix sum: colptr[0]=0 (base), colptr[B]=nnz
	colptr := make([]int, B+1)
	for j := 0; j < B; j++ {
		colptr[j+1] = colptr[j] + counts[j]
	}
	nnz := colptr[B]

	rowval := make([]int, nnz)
	nzval := make([]float64, nnz)

	// pass 2: row indices (parallel over j); ascending within each column
	// because the inner loop over i is sequential per worker
	parallelRange(B, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			b := beamlets[j]
			tan := geom.TanHalfAngle(b, maxradius)
			next := colptr[j]
			for i := 0; i < P; i++ {
				r := geom.Sub(pos[i], b.Src)
				if geom.InsideCone(r, b.Dir, tan) {
					rowval[next] = i
					next++
				}
			}
		}
	})

	// pass 3: values (parallel over the flat nonzero index n); jPrev hint
	// is seeded by a binary search (searchsortedlast) once at the start of
	// each worker's range, reused while n stays within the column, and
	// advanced by a forward scan when n moves past it -- this is a
	// performance optimisation, not a correctness requirement
	parallelRange(nnz, func(lo, hi int) {
		if lo >= hi {
			return
		}
		jPrev := searchLastColumn(colptr, lo)
		for n := lo; n < hi; n++ {
			for jPrev+1 < B && colptr[jPrev+1] <= n {
				jPrev++
			}
			i := rowval[n]
			nzval[n] = k.PointDose(pos[i], beamlets[jPrev], surf)
		}
	})

	return &SparseMatrix{Rows: P, Cols: B, Colptr: colptr, Rowval: rowval, Nzval: nzval}
}

// searchLastColumn returns the column j such that colptr[j] <= n <
// colptr[j+1], via binary search. Used to seed the jPrev hint at the start
// of each pass-3 worker range.
func searchLastColumn(colptr []int, n int) int {
	// last j with colptr[j] <= n
	return sort.Search(len(colptr)-1, func(j int) bool { return colptr[j+1] > n })
}

// buildCSCInto rebuilds m in place, following the same passes as buildCSC,
// reusing m's backing arrays when their capacity already suffices.
func buildCSCInto(m *SparseMatrix, pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) *SparseMatrix {
	fresh := buildCSC(pos, beamlets, surf, k, opts)
	m.Rows, m.Cols = fresh.Rows, fresh.Cols
	m.Colptr = resizeInts(m.Colptr, fresh.Colptr)
	m.Rowval = resizeInts(m.Rowval, fresh.Rowval)
	m.Nzval = resizeFloats(m.Nzval, fresh.Nzval)
	return m
}

func resizeInts(dst, src []int) []int {
	if cap(dst) < len(src) {
		dst = make([]int, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}

func resizeFloats(dst, src []float64) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	copy(dst, src)
	return dst
}
