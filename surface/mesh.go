// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"math"

	"github.com/cpmech/dosefluence/geom"
	"github.com/cpmech/gosl/chk"
)

// Triangle is a single triangle face of a Mesh.
type Triangle struct {
	A, B, C geom.Point
}

// Mesh is an immutable triangle-mesh model of the patient skin.
type Mesh struct {
	Triangles []Triangle
}

// centroidGrid is a coarse uniform-bucket spatial index over triangles,
// used only to narrow the candidate set before the exact ray/triangle
// test; it is not part of the surface's semantic contract. Each triangle
// is inserted into every cell its axis-aligned bounding box straddles
// (not just its centroid's cell), so the index never omits a triangle
// whose extent crosses a cell boundary.
type centroidGrid struct {
	cell  float64
	cells map[[3]int][]int
	ntris int
}

func newCentroidGrid(tris []Triangle) *centroidGrid {
	g := &centroidGrid{cells: make(map[[3]int][]int), ntris: len(tris)}
	if len(tris) == 0 {
		g.cell = 1
		return g
	}
	lo, hi := tris[0].A, tris[0].A
	for _, t := range tris {
		for _, p := range [3]geom.Point{t.A, t.B, t.C} {
			lo, hi = minPoint(lo, p), maxPoint(hi, p)
		}
	}
	span := math.Max(hi.X-lo.X, math.Max(hi.Y-lo.Y, hi.Z-lo.Z))
	if span <= 0 {
		span = 1
	}
	g.cell = span / 32
	if g.cell <= 0 {
		g.cell = 1
	}
	for i, t := range tris {
		tlo, thi := triangleBounds(t)
		k0, k1 := g.keyOf(tlo), g.keyOf(thi)
		for x := k0[0]; x <= k1[0]; x++ {
			for y := k0[1]; y <= k1[1]; y++ {
				for z := k0[2]; z <= k1[2]; z++ {
					key := [3]int{x, y, z}
					g.cells[key] = append(g.cells[key], i)
				}
			}
		}
	}
	return g
}

func (g *centroidGrid) keyOf(p geom.Point) [3]int {
	return [3]int{int(math.Floor(p.X / g.cell)), int(math.Floor(p.Y / g.cell)), int(math.Floor(p.Z / g.cell))}
}

// candidates returns triangle indices in the cells straddled by the
// segment src->pos, widened by one cell in every direction: a coarse
// pre-filter, not an exact test. If the grid holds no triangle in that
// window at all, it falls back to a full scan over every triangle rather
// than risk silently dropping an intersection.
func (g *centroidGrid) candidates(src, pos geom.Point) []int {
	lo, hi := minPoint(src, pos), maxPoint(src, pos)
	k0, k1 := g.keyOf(lo), g.keyOf(hi)
	seen := make(map[int]bool)
	var out []int
	for x := k0[0] - 1; x <= k1[0]+1; x++ {
		for y := k0[1] - 1; y <= k1[1]+1; y++ {
			for z := k0[2] - 1; z <= k1[2]+1; z++ {
				for _, idx := range g.cells[[3]int{x, y, z}] {
					if !seen[idx] {
						seen[idx] = true
						out = append(out, idx)
					}
				}
			}
		}
	}
	if len(out) == 0 && g.ntris > 0 {
		out = make([]int, g.ntris)
		for i := range out {
			out[i] = i
		}
	}
	return out
}

func triangleBounds(t Triangle) (lo, hi geom.Point) {
	lo, hi = minPoint(t.A, t.B), maxPoint(t.A, t.B)
	lo, hi = minPoint(lo, t.C), maxPoint(hi, t.C)
	return
}

func minPoint(a, b geom.Point) geom.Point {
	return geom.Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func maxPoint(a, b geom.Point) geom.Point {
	return geom.Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// MeshBased is the triangle-mesh surface variant. SSD is the distance from
// src to the nearest ray/mesh intersection along src->pos; +Inf if the ray
// misses the mesh entirely.
type MeshBased struct {
	mesh *Mesh
	grid *centroidGrid
}

// NewMesh builds a MeshBased surface from a triangle mesh, constructing the
// coarse spatial index once at construction; it is read-only thereafter.
func NewMesh(mesh *Mesh) *MeshBased {
	if mesh == nil || len(mesh.Triangles) == 0 {
		chk.Panic("surface: MeshBased requires a non-empty mesh")
	}
	return &MeshBased{mesh: mesh, grid: newCentroidGrid(mesh.Triangles)}
}

// SSD implements Surface.
func (s *MeshBased) SSD(pos, src geom.Point) float64 {
	dir := geom.Sub(pos, src)
	best := math.Inf(1)
	for _, idx := range s.grid.candidates(src, pos) {
		if t, ok := rayTriangle(src, dir, s.mesh.Triangles[idx]); ok {
			if t < best {
				best = t
			}
		}
	}
	if math.IsInf(best, 1) {
		return math.Inf(1)
	}
	return best * geom.Norm(dir)
}

// rayTriangle is the Möller-Trumbore ray/triangle intersection test. It
// returns the ray parameter t (distance along dir, in units of ‖dir‖) of
// the first forward intersection, or ok=false if the ray (treated as a
// half-line from origin) misses the triangle.
func rayTriangle(origin, dir geom.Point, tri Triangle) (t float64, ok bool) {
	const eps = 1e-12
	e1 := geom.Sub(tri.B, tri.A)
	e2 := geom.Sub(tri.C, tri.A)
	h := geom.Cross(dir, e2)
	a := geom.Dot(e1, h)
	if math.Abs(a) < eps {
		return 0, false
	}
	f := 1 / a
	s := geom.Sub(origin, tri.A)
	u := f * geom.Dot(s, h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := geom.Cross(s, e1)
	v := f * geom.Dot(dir, q)
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t = f * geom.Dot(e2, q)
	if t < eps {
		return 0, false
	}
	return t, true
}
