package tracer

import "math"

// farAway bounds the nearest hit search; anything further is ignored.
const farAway = 99999.0

// Nearest returns the closest forward hit of r among prims and its index.
// Earlier primitives win exact ties. ok is false when nothing was hit.
func Nearest(r Ray, prims []Primitive) (hit Hit, idx int, ok bool) {
	best := Hit{T: farAway}
	idx = -1
	for i, p := range prims {
		h := p.Intersect(r)
		if h.T > 0 && h.T < best.T {
			best, idx = h, i
		}
	}
	if idx < 0 {
		return Hit{T: NoHit}, -1, false
	}
	return best, idx, true
}

// Shade returns the raw luminance of r: the product of the diffuse and
// specular terms at the nearest hit, 0 when nothing is hit. light must be
// unit length.
func Shade(r Ray, light Vec3, prims []Primitive) float64 {
	var n Vec3
	if h, _, ok := Nearest(r, prims); ok {
		n = h.Normal
	}
	diffuse := math.Max(0, n.Dot(light))
	reflected := r.Dir.Sub(n.Scale(2 * n.Dot(r.Dir)))
	specular := math.Max(0, reflected.Dot(light))
	return diffuse * specular
}
