package main

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Add(q FPoint) FPoint {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p FPoint) Sub(q FPoint) FPoint {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p FPoint) Mul(q FPoint) FPoint {
	p.X *= q.X
	p.Y *= q.Y
	return p
}

func (p FPoint) Scale(s float64) FPoint {
	p.X *= s
	p.Y *= s
	return p
}

func (p FPoint) Eq(q FPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p FPoint) Dot(q FPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

// LengthSquared is p.Dot(p). Used as a distance metric where the
// actual length isn't needed, it skips the square root.
func (p FPoint) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p FPoint) Rotate(theta float64) FPoint {
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	return FPoint{
		X: cos*p.X - sin*p.Y,
		Y: sin*p.X + cos*p.Y,
	}
}

// =================================
// Mat2
// =================================

// Mat2 is a row-major 2x2 matrix.
type Mat2 struct {
	M00, M01 float64
	M10, M11 float64
}

// RotationMat2 returns [[cos a, sin a], [-sin a, cos a]].
// RotationMat2(0) is the identity, and RotationMat2(a) composed
// with RotationMat2(-a) is the identity.
func RotationMat2(angle float64) Mat2 {
	sin, cos := math.Sincos(angle)
	return Mat2{
		cos, sin,
		-sin, cos,
	}
}

func (m Mat2) Apply(p FPoint) FPoint {
	return FPoint{
		X: m.M00*p.X + m.M01*p.Y,
		Y: m.M10*p.X + m.M11*p.Y,
	}
}

func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		m.M00*n.M00 + m.M01*n.M10, m.M00*n.M01 + m.M01*n.M11,
		m.M10*n.M00 + m.M11*n.M10, m.M10*n.M01 + m.M11*n.M11,
	}
}

// =================================
// Mat3
// =================================

// Mat3 is a row-major 3x3 matrix.
type Mat3 struct {
	M [3][3]float64
}

func (m Mat3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m.M[0][0]*v[0] + m.M[0][1]*v[1] + m.M[0][2]*v[2],
		m.M[1][0]*v[0] + m.M[1][1]*v[1] + m.M[1][2]*v[2],
		m.M[2][0]*v[0] + m.M[2][1]*v[1] + m.M[2][2]*v[2],
	}
}

func (m Mat3) Scale(s float64) Mat3 {
	for i := range m.M {
		for j := range m.M[i] {
			m.M[i][j] *= s
		}
	}
	return m
}

// =================================
// FRectangle
// =================================

type FRectangle struct {
	Min, Max FPoint
}

func FRect(x0, y0, x1, y1 float64) FRectangle {
	return FRectangle{
		Min: FPt(x0, y0),
		Max: FPt(x1, y1),
	}
}

// =================================================
// below is copy pasted frorm go image package
// but modified to be used for FRectangle
// license is at below
// =================================================

// Dx returns r's width.
func (r FRectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r FRectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

// Add returns the rectangle r translated by p.
func (r FRectangle) Add(p FPoint) FRectangle {
	return FRectangle{
		FPoint{r.Min.X + p.X, r.Min.Y + p.Y},
		FPoint{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}

// Inset returns the rectangle r inset by n, which may be negative. If either
// of r's dimensions is less than 2*n then an empty rectangle near the center
// of r will be returned.
func (r FRectangle) Inset(n float64) FRectangle {
	if r.Dx() < 2*n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}

// Empty reports whether the rectangle contains no points.
func (r FRectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// =======================================
// end of things I copied from google
// =======================================

// =================================
// misc
// =================================

func RectWH(w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{},
		Max: image.Point{w, h},
	}
}

func FRectWH(w, h float64) FRectangle {
	return FRectangle{
		Min: FPoint{0, 0},
		Max: FPoint{w, h},
	}
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

// LinearStep is like smoothstep without the smoothing,
// a straight ramp from 0 at edge0 to 1 at edge1.
// Callers must pick edge0 != edge1.
func LinearStep(edge0, edge1, x float64) float64 {
	return Clamp((x-edge0)/(edge1-edge0), 0, 1)
}

/*
Copyright (c) 2009 The Go Authors. All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are
met:

   * Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.
   * Redistributions in binary form must reproduce the above
copyright notice, this list of conditions and the following disclaimer
in the documentation and/or other materials provided with the
distribution.
   * Neither the name of Google Inc. nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
