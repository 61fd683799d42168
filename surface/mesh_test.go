// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"
	"testing"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/gosl/chk"
)

// unitCube returns a closed triangle mesh of the unit cube centred at the
// origin (half-extent 0.5 on every side), two triangles per face.
func unitCube() *Mesh {
	h := 0.5
	v := func(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }

	// 8 corners
	c := [8]geom.Point{
		v(-h, -h, -h), v(h, -h, -h), v(h, h, -h), v(-h, h, -h),
		v(-h, -h, h), v(h, -h, h), v(h, h, h), v(-h, h, h),
	}
	quad := func(a, b, cc, d geom.Point) []Triangle {
		return []Triangle{{A: a, B: b, C: cc}, {A: a, B: cc, C: d}}
	}
	var tris []Triangle
	tris = append(tris, quad(c[0], c[1], c[2], c[3])...) // z=-h
	tris = append(tris, quad(c[4], c[5], c[6], c[7])...) // z=+h
	tris = append(tris, quad(c[0], c[1], c[5], c[4])...) // y=-h
	tris = append(tris, quad(c[3], c[2], c[6], c[7])...) // y=+h
	tris = append(tris, quad(c[0], c[3], c[7], c[4])...) // x=-h
	tris = append(tris, quad(c[1], c[2], c[6], c[5])...) // x=+h
	return &Mesh{Triangles: tris}
}

// Test_mesh01 checks SSD against a ray that strikes the near face of a
// unit cube.
func Test_mesh01(tst *testing.T) {

	chk.PrintTitle("mesh01")

	s := NewMesh(unitCube())
	src := geom.Point{X: 0, Y: 0, Z: 5}
	pos := geom.Point{X: 0, Y: 0, Z: 0}
	chk.Scalar(tst, "SSD", 1e-9, s.SSD(pos, src), 4.5)
}

func Test_mesh_miss(tst *testing.T) {

	chk.PrintTitle("mesh_miss")

	s := NewMesh(unitCube())
	src := geom.Point{X: 10, Y: 10, Z: 10}
	pos := geom.Point{X: 10, Y: 10, Z: 0}
	if !math.IsInf(s.SSD(pos, src), 1) {
		tst.Fatal("a ray that misses the mesh entirely must return +Inf")
	}
}

// hugeFloor returns a two-triangle mesh of a single 2000x2000 flat panel at
// z=0, so each triangle's centroid sits far from a query ray's own
// bounding-box cells even though the ray strikes the panel dead centre.
func hugeFloor() *Mesh {
	h := 1000.0
	v := func(x, y, z float64) geom.Point { return geom.Point{X: x, Y: y, Z: z} }
	return &Mesh{Triangles: []Triangle{
		{A: v(-h, -h, 0), B: v(h, -h, 0), C: v(h, h, 0)},
		{A: v(-h, -h, 0), B: v(h, h, 0), C: v(-h, h, 0)},
	}}
}

// Test_mesh_few_large_faces is a regression test for a spatial index that
// only buckets a triangle by its centroid: a ray straight down through the
// centre of a huge flat panel must still hit it even though both
// triangles' centroids sit well outside the ray's own bounding-box cells.
func Test_mesh_few_large_faces(tst *testing.T) {

	chk.PrintTitle("mesh_few_large_faces")

	s := NewMesh(hugeFloor())
	src := geom.Point{X: 0, Y: 0, Z: 100}
	pos := geom.Point{X: 0, Y: 0, Z: 0}
	chk.Scalar(tst, "SSD", 1e-9, s.SSD(pos, src), 100)
}

// Test_centroidGrid_aabb_insertion checks the spatial index directly: a
// large triangle whose centroid lies far outside a short query segment's
// own cells must still be returned as a candidate, because it is indexed
// by every cell its bounding box straddles, not just its centroid's cell.
func Test_centroidGrid_aabb_insertion(tst *testing.T) {

	chk.PrintTitle("centroidGrid_aabb_insertion")

	floor := hugeFloor()
	g := newCentroidGrid(floor.Triangles)
	src := geom.Point{X: 0, Y: 0, Z: 100}
	pos := geom.Point{X: 0, Y: 0, Z: 0}
	found := false
	for _, idx := range g.candidates(src, pos) {
		if idx == 0 || idx == 1 {
			found = true
		}
	}
	if !found {
		tst.Fatal("a large triangle straddling the query window must be a candidate")
	}
}
