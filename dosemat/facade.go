// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dosemat

import (
	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/dosefluence/kernel"
	"github.com/cpmech/dosefluence/surface"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DoseFluenceMatrix selects the dense/sparse/GPU back end from kind and
// assembles D[i,j] = dose contribution of beamlet j at point i.
func DoseFluenceMatrix(kind Kind, pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) Matrix {
	if opts.Verbose {
		io.Pf("dosemat: assembling %s matrix (%d points x %d beamlets, maxradius=%v)\n", kind, len(pos), len(beamlets), opts.maxRadiusOrDefault())
	}
	var m Matrix
	switch kind {
	case Dense:
		m = buildDense(pos, beamlets, surf, k, opts)
	case SparseCSC:
		m = buildCSC(pos, beamlets, surf, k, opts)
	case DenseGPU:
		m = buildDenseGPU(pos, beamlets, surf, k, opts)
	default:
		chk.Panic("dosemat: unknown matrix kind %v", kind)
	}
	assertShape(m, len(pos), len(beamlets))
	return m
}

// DoseFluenceMatrixInto rebuilds an existing matrix in place, resizing its
// internal arrays as needed, and returns it. m's concrete type determines
// the back end; it must match one produced by DoseFluenceMatrix with the
// same kind.
func DoseFluenceMatrixInto(m Matrix, pos geom.Points, beamlets geom.Beamlets, surf surface.Surface, k kernel.Kernel, opts Options) Matrix {
	if opts.Verbose {
		io.Pf("dosemat: re-assembling matrix in place (%d points x %d beamlets)\n", len(pos), len(beamlets))
	}
	switch mm := m.(type) {
	case *DenseMatrix:
		P, B := len(pos), len(beamlets)
		if mm.Dense == nil || mm.Dense.RawMatrix().Rows != P || mm.Dense.RawMatrix().Cols != B {
			mm.Dense = newZeroedDense(P, B)
		} else {
			mm.Dense.Zero()
		}
		fillDense(mm.Dense, pos, beamlets, surf, k, opts)
		assertShape(mm, P, B)
		return mm
	case *SparseMatrix:
		buildCSCInto(mm, pos, beamlets, surf, k, opts)
		assertShape(mm, len(pos), len(beamlets))
		return mm
	default:
		chk.Panic("dosemat: DoseFluenceMatrixInto received an unsupported matrix type %T", m)
	}
	return nil
}

func assertShape(m Matrix, rows, cols int) {
	r, c := m.Dims()
	if r != rows || c != cols {
		chk.Panic("dosemat: assembled matrix shape (%d,%d) does not match (|pos|,|beamlets|)=(%d,%d)", r, c, rows, cols)
	}
}
