// Copyright 2016 The Dosefluence Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the 3-D point, vector and beamlet primitives
// shared by the surface, kernel and dosemat packages
package geom

import "github.com/cpmech/gosl/la"

// Point is a 3-vector of real numbers in the world frame
type Point struct {
	X, Y, Z float64
}

// Vec is an alias of Point used where the value plays the role of a
// direction or a difference of points rather than a location
type Vec = Point

// Sub returns a - b
func Sub(a, b Point) Vec {
	return Vec{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Add returns a + b
func Add(a, b Point) Point {
	return Point{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Scale returns s*a
func Scale(s float64, a Vec) Vec {
	return Vec{s * a.X, s * a.Y, s * a.Z}
}

// Dot returns a . b
func Dot(a, b Vec) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns a x b
func Cross(a, b Vec) Vec {
	return Vec{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Norm returns the Euclidean length of a via gosl/la.VecNorm.
func Norm(a Vec) float64 {
	return la.VecNorm([]float64{a.X, a.Y, a.Z})
}

// Unit returns a scaled to unit length; panics if a is the zero vector
func Unit(a Vec) Vec {
	n := Norm(a)
	if n == 0 {
		panic("geom: cannot normalise the zero vector")
	}
	return Scale(1/n, a)
}

// Lerp returns a linear interpolation between points p and q at parameter λ
func Lerp(p, q Point, lam float64) Point {
	return Point{
		p.X + lam*(q.X-p.X),
		p.Y + lam*(q.Y-p.Y),
		p.Z + lam*(q.Z-p.Z),
	}
}
