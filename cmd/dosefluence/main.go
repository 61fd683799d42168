// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// command dosefluence assembles a dose-fluence matrix from a synthetic
// beamlet/point configuration and reports its shape (and, for the sparse
// kind, its density), exercising the dosemat facade end to end.
package main

import (
	"flag"
	"math"
	"math/rand/v2"

	"github.com/cpmech/dosefluence/dosemat"
	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/dosefluence/kernel"
	"github.com/cpmech/dosefluence/surface"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// input data
	npoints := flag.Int("npoints", 2000, "number of synthetic dose points")
	nbeamlets := flag.Int("nbeamlets", 64, "number of synthetic beamlets")
	maxradius := flag.Float64("maxradius", 100.0, "cone culling radius [mm]")
	kind := flag.String("kind", "sparse", "matrix kind: dense|sparse|gpu")
	verbose := flag.Bool("verbose", true, "print progress")
	flag.Parse()

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.Pfred("dosefluence: fatal error: %v\n", err)
		}
	}()

	// synthetic beamlets: a fan of pencils converging on the origin from a
	// ring of sources at SAD=1000mm, the ring angles taken off a dense
	// 0..2π table (the last entry duplicates the first, so it's dropped)
	thetas := utl.LinSpace(0, 2*math.Pi, *nbeamlets+1)
	beamlets := make(geom.Beamlets, *nbeamlets)
	for _, j := range utl.IntRange(*nbeamlets) {
		theta := thetas[j]
		src := geom.Point{X: 1000 * math.Sin(theta), Y: 0, Z: 1000 * math.Cos(theta)}
		dir := geom.Unit(geom.Sub(geom.Point{}, src))
		beamlets[j] = geom.NewBeamlet(src, dir, 1000)
	}

	// synthetic dose points: a uniform cube around the isocenter
	pos := make(geom.Points, *npoints)
	for _, i := range utl.IntRange(*npoints) {
		pos[i] = geom.Point{
			X: 200 * (rand.Float64() - 0.5),
			Y: 200 * (rand.Float64() - 0.5),
			Z: 200 * (rand.Float64() - 0.5),
		}
	}

	surf := surface.Constant{SSDValue: 700}
	k := &kernel.FinitePencilBeamKernel{Sigma: 5, Amplitude: 1, MuEff: 0.01}

	opts := dosemat.Options{MaxRadius: *maxradius, Verbose: *verbose}

	var k2 dosemat.Kind
	switch *kind {
	case "dense":
		k2 = dosemat.Dense
	case "sparse":
		k2 = dosemat.SparseCSC
	case "gpu":
		k2 = dosemat.DenseGPU
	default:
		chk.Panic("unknown -kind %q, want dense|sparse|gpu", *kind)
	}

	m := dosemat.DoseFluenceMatrix(k2, pos, beamlets, surf, k, opts)
	rows, cols := m.Dims()
	io.Pforan("assembled %s matrix: %d x %d\n", k2, rows, cols)
	if sm, ok := m.(*dosemat.SparseMatrix); ok {
		density := float64(sm.NNZ()) / float64(rows*cols)
		io.Pf("nnz=%d density=%.4f%%\n", sm.NNZ(), 100*density)
	}
}
