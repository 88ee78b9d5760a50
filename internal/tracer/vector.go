package tracer

import "math"

// Vec3 is a 3-component vector. Every operation returns a new value.
type Vec3 [3]float64

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (a Vec3) X() float64 { return a[0] }
func (a Vec3) Y() float64 { return a[1] }
func (a Vec3) Z() float64 { return a[2] }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]} }

// Div divides component-wise. A zero divisor component yields 0 for that
// component, never Inf or NaN; the box slab test relies on it.
func (a Vec3) Div(b Vec3) Vec3 {
	var r Vec3
	for i := range r {
		if b[i] != 0 {
			r[i] = a[i] / b[i]
		}
	}
	return r
}

func (a Vec3) Scale(k float64) Vec3     { return Vec3{a[0] * k, a[1] * k, a[2] * k} }
func (a Vec3) SubScalar(k float64) Vec3 { return Vec3{a[0] - k, a[1] - k, a[2] - k} }
func (a Vec3) Neg() Vec3                { return Vec3{-a[0], -a[1], -a[2]} }

func (a Vec3) Dot(b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a Vec3) Len() float64 { return math.Sqrt(a.Dot(a)) }

// Norm returns a/|a|. The zero vector has no direction and yields NaN
// components; callers must not normalize it.
func (a Vec3) Norm() Vec3 {
	l := a.Len()
	return Vec3{a[0] / l, a[1] / l, a[2] / l}
}

// Step returns 1 in each component where x > edge, else 0.
func Step(edge, x Vec3) Vec3 {
	var r Vec3
	for i := range r {
		if x[i] > edge[i] {
			r[i] = 1
		}
	}
	return r
}

// Sign is the component-wise sign, 0 at exactly 0.
func (a Vec3) Sign() Vec3 {
	var r Vec3
	for i, c := range a {
		switch {
		case c > 0:
			r[i] = 1
		case c < 0:
			r[i] = -1
		}
	}
	return r
}

func (a Vec3) Abs() Vec3 { return Vec3{math.Abs(a[0]), math.Abs(a[1]), math.Abs(a[2])} }

// RotateY rotates a about the Y axis by angle radians.
func (a Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{a[0]*cos - a[2]*sin, a[1], a[0]*sin + a[2]*cos}
}

// RotateZ rotates a about the Z axis by angle radians.
func (a Vec3) RotateZ(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{a[0]*cos - a[1]*sin, a[0]*sin + a[1]*cos, a[2]}
}
