package tracer

// Ray is a half-line. Dir is unit length when built with NewRay.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// NewRay normalizes dir, which must not be the zero vector.
func NewRay(origin, dir Vec3) Ray {
	return Ray{Origin: origin, Dir: dir.Norm()}
}

// At returns origin + dir*t.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// RotateZ rotates both origin and direction about the Z axis.
func (r Ray) RotateZ(angle float64) Ray {
	return Ray{Origin: r.Origin.RotateZ(angle), Dir: r.Dir.RotateZ(angle)}
}

// RotateY rotates both origin and direction about the Y axis.
func (r Ray) RotateY(angle float64) Ray {
	return Ray{Origin: r.Origin.RotateY(angle), Dir: r.Dir.RotateY(angle)}
}
