package invaders

import "math"

// Vec is a point or offset on the playfield.
type Vec struct {
	X, Y float64
}

// Transform rotates by Angle (radians) about the origin and then translates by (TX, TY).
// The zero value is the identity.
type Transform struct {
	TX, TY float64
	Angle  float64
}

// Apply maps a local point into playfield coordinates.
func (t Transform) Apply(v Vec) Vec {
	if t.Angle == 0 {
		return Vec{X: v.X + t.TX, Y: v.Y + t.TY}
	}
	sin, cos := math.Sincos(t.Angle)
	return Vec{
		X: v.X*cos - v.Y*sin + t.TX,
		Y: v.X*sin + v.Y*cos + t.TY,
	}
}

// Center returns the middle of a bounding box.
func Center(pos Position, size Size) Vec {
	return Vec{X: pos.X + size.W/2, Y: pos.Y + size.H/2}
}

// CirclesOverlap reports whether two circles intersect. Touching is not a hit.
func CirclesOverlap(a Vec, ra float64, b Vec, rb float64) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) < ra+rb
}

// Outline appends the vertices of shape with radius size, centered on the
// origin, to dst. Circles have no outline and append nothing.
func Outline(dst []Vec, shape Shape, size float64) []Vec {
	switch shape {
	case ShapeHexagon:
		for i := range 6 {
			sin, cos := math.Sincos(math.Pi / 3 * float64(i))
			dst = append(dst, Vec{X: size * cos, Y: size * sin})
		}
	case ShapeTriangle:
		dst = append(dst,
			Vec{X: 0, Y: -size},
			Vec{X: -size, Y: size},
			Vec{X: size, Y: size},
		)
	case ShapeSquare:
		dst = append(dst,
			Vec{X: -size, Y: -size},
			Vec{X: size, Y: -size},
			Vec{X: size, Y: size},
			Vec{X: -size, Y: size},
		)
	case ShapeStar:
		for i := range 5 {
			angle := 2*math.Pi*float64(i)/5 - math.Pi/2
			sin, cos := math.Sincos(angle)
			dst = append(dst, Vec{X: size * cos, Y: size * sin})
			sin, cos = math.Sincos(angle + math.Pi/5)
			dst = append(dst, Vec{X: size / 2 * cos, Y: size / 2 * sin})
		}
	}
	return dst
}
