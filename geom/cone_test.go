// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_cone01 checks that a point exactly on the beamlet axis, far in
// front of the source, is always inside the cone regardless of radius.
func Test_cone01(tst *testing.T) {

	chk.PrintTitle("cone01: on-axis point")

	b := NewBeamlet(Point{}, Vec{0, 0, 1}, 1000)
	r := Sub(Point{0, 0, 500}, b.Src)
	inside := InsideCone(r, b.Dir, TanHalfAngle(b, 1.0))
	if !inside {
		tst.Fatal("on-axis point must be inside the cone for any positive maxradius")
	}
}

// Test_cone02 checks that a point well off axis is excluded by a tiny
// maxradius.
func Test_cone02(tst *testing.T) {

	chk.PrintTitle("cone02: tiny maxradius excludes off-axis point")

	b := NewBeamlet(Point{}, Vec{0, 0, 1}, 1000)
	r := Sub(Point{50, 0, 500}, b.Src)
	inside := InsideCone(r, b.Dir, TanHalfAngle(b, 1e-6))
	if inside {
		tst.Fatal("off-axis point must be excluded by a vanishingly small maxradius")
	}
}

// Test_cone03 checks the boundary: a point with a fixed perpendicular
// offset crosses from inside to outside as the cone narrows.
func Test_cone03(tst *testing.T) {

	chk.PrintTitle("cone03: boundary crossing")

	b := NewBeamlet(Point{}, Vec{0, 0, 1}, 100)
	pos := Point{10, 0, 100} // perpendicular offset 10 at axial distance 100 => tan(angle)=0.1
	r := Sub(pos, b.Src)

	wide := InsideCone(r, b.Dir, TanHalfAngle(b, 20)) // tan=0.2 > 0.1: inside
	narrow := InsideCone(r, b.Dir, TanHalfAngle(b, 5)) // tan=0.05 < 0.1: outside

	if !wide {
		tst.Fatal("wide cone should admit the point")
	}
	if narrow {
		tst.Fatal("narrow cone should exclude the point")
	}
}
