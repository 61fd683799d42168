// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/cpmech/gosl/chk"

// Beamlet is an immutable pencil-like radiation source record: an origin, a
// unit direction, and the distance from the source to the isocenter plane
// (SAD). All other beamlet shape (cross-section, divergence model) lives
// inside the dose kernel; the core only ever reads these three attributes.
type Beamlet struct {
	Src Point   // source_position
	Dir Vec     // direction, must be unit length
	SAD float64 // source_axis_distance, must be > 0
}

// NewBeamlet builds a Beamlet, normalising dir. It panics if dir is the zero
// vector or sad is non-positive: invalid beamlets are a caller error, not a
// recoverable data condition.
func NewBeamlet(src Point, dir Vec, sad float64) Beamlet {
	n := Norm(dir)
	if n == 0 {
		chk.Panic("geom: beamlet direction must not be the zero vector")
	}
	if sad <= 0 {
		chk.Panic("geom: beamlet source_axis_distance must be positive, got %v", sad)
	}
	return Beamlet{Src: src, Dir: Scale(1/n, dir), SAD: sad}
}

// Beamlets is an ordered, stable-indexed collection of beamlets; its indices
// define the columns of the assembled dose-fluence matrix.
type Beamlets []Beamlet

// Points is an ordered, stable-indexed collection of dose-evaluation points;
// its indices define the rows of the assembled dose-fluence matrix.
type Points []Point
