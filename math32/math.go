// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based 2D vector and box package
// for computing geometry in the local coordinates of SVG elements.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Most of these are thin wrappers around chewxy/math32,
// which has optimized float32 implementations.

const (
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = math.Pi

	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Atan returns the arctangent, in radians, of x.
func Atan(x float32) float32 {
	return math32.Atan(x)
}

// Atan2 returns the arctangent of y/x, using the signs
// of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Mod returns the floating-point remainder of x/y,
// with the sign of x.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// IsInf reports whether x is an infinity, according to sign.
// If sign == 0, it reports whether x is either infinity.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// IsNaN reports whether x is an IEEE 754 “not-a-number” value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// IsFinite reports whether x is neither an infinity nor NaN.
func IsFinite(x float32) bool {
	return !IsInf(x, 0) && !IsNaN(x)
}

// AngleNorm returns the angle theta in the range [0, 2Pi).
func AngleNorm(theta float32) float32 {
	theta = Mod(theta, 2*Pi)
	if theta < 0 {
		theta += 2 * Pi
	}
	// float32 rounding can land exactly on 2Pi
	if theta >= 2*Pi {
		theta = 0
	}
	return theta
}
