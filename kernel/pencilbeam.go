// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/dosefluence/surface"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// FinitePencilBeamKernel is a minimal reference kernel bundled for tests,
// examples and benchmarks. The core's functional form of the kernel is
// left to callers; this is one concrete, swappable implementation of the
// Kernel contract, configured via Init([]*fun.Prm{...}).
//
// Dose falls off as a Gaussian lateral profile about the beamlet axis,
// attenuated exponentially with radiological depth -- a standard finite
// pencil-beam shape, not a claim of clinical accuracy.
type FinitePencilBeamKernel struct {
	Sigma     float64 // lateral Gaussian width (length units)
	Amplitude float64 // dose scale at depth=0 on-axis
	MuEff     float64 // effective linear attenuation coefficient
}

// Init configures the kernel from named parameters "sigma", "amplitude" and
// "mueff".
func (k *FinitePencilBeamKernel) Init(prms []*fun.Prm) {
	for _, p := range prms {
		switch p.N {
		case "sigma":
			k.Sigma = p.V
		case "amplitude":
			k.Amplitude = p.V
		case "mueff":
			k.MuEff = p.V
		default:
			chk.Panic("kernel: FinitePencilBeamKernel has no parameter named %q", p.N)
		}
	}
	if k.Sigma <= 0 {
		chk.Panic("kernel: FinitePencilBeamKernel requires sigma > 0")
	}
}

// PointDose implements Kernel.
func (k *FinitePencilBeamKernel) PointDose(pos geom.Point, b geom.Beamlet, s surface.Surface) float64 {
	r := geom.Sub(pos, b.Src)
	along := geom.Dot(r, b.Dir)
	perp2 := geom.Dot(r, r) - along*along
	depth := surface.Depth(s, pos, b.Src)
	if math.IsNaN(depth) || math.IsInf(depth, 0) || depth < 0 {
		return 0
	}
	lateral := math.Exp(-perp2 / (2 * k.Sigma * k.Sigma))
	atten := math.Exp(-k.MuEff * depth)
	return k.Amplitude * lateral * atten
}
