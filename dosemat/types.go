// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dosemat

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Kind selects which back end DoseFluenceMatrix assembles: a tagged entry
// point rather than an interface hierarchy per back end.
type Kind int

const (
	// Dense assembles a full row-major CPU matrix.
	Dense Kind = iota
	// SparseCSC assembles a compressed-sparse-column matrix.
	SparseCSC
	// DenseGPU assembles a full matrix via a simulated 2-D grid launch
	// (see gpu.go for why this is a host simulation).
	DenseGPU
)

func (k Kind) String() string {
	switch k {
	case Dense:
		return "Dense"
	case SparseCSC:
		return "SparseCSC"
	case DenseGPU:
		return "DenseGPU"
	default:
		return "Unknown"
	}
}

// Options configures assembly. MaxRadius defaults to 100.0 length units
// when Options is zero-valued; use DefaultOptions to make that explicit.
type Options struct {
	MaxRadius float64 // cone radius parameter, same length units as geometry
	Verbose   bool    // emit io.Pf progress notes during assembly
}

// DefaultOptions returns the facade's default options: maxradius defaults
// to 100.0 in the same length units as the geometry, typically
// millimeters.
func DefaultOptions() Options {
	return Options{MaxRadius: 100.0}
}

func (o Options) maxRadiusOrDefault() float64 {
	if o.MaxRadius <= 0 {
		return 100.0
	}
	return o.MaxRadius
}

// Matrix is the common shape query every back end satisfies; back ends
// share only the matrix-shape precondition.
type Matrix interface {
	Dims() (rows, cols int)
}

// DenseMatrix is the Dense/DenseGPU back end: a contiguous row-major matrix
// of shape (|pos|, |beamlets|), backed by gonum's mat.Dense.
type DenseMatrix struct {
	*mat.Dense
}

// SparseMatrix is the SparseCSC back end: the three parallel CSC arrays
// Colptr, Rowval, Nzval, 0-based and of length (Cols+1), NNZ, NNZ
// respectively.
type SparseMatrix struct {
	Rows, Cols int
	Colptr     []int
	Rowval     []int
	Nzval      []float64
}

// Dims implements Matrix.
func (m *SparseMatrix) Dims() (int, int) { return m.Rows, m.Cols }

// NNZ returns the number of structurally nonzero entries.
func (m *SparseMatrix) NNZ() int { return len(m.Nzval) }

// ToCSC builds a github.com/james-bowman/sparse CSC view over copies of
// m's arrays, for interop with the wider gonum sparse/dense ecosystem
// (e.g. densifying for comparison against the dense back end).
func (m *SparseMatrix) ToCSC() *sparse.CSC {
	colptr := append([]int(nil), m.Colptr...)
	rowval := append([]int(nil), m.Rowval...)
	nzval := append([]float64(nil), m.Nzval...)
	return sparse.NewCSC(m.Rows, m.Cols, colptr, rowval, nzval)
}

// ToDense densifies the sparse matrix via the gonum ecosystem.
func (m *SparseMatrix) ToDense() *mat.Dense {
	return m.ToCSC().ToDense()
}
