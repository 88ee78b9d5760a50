package tracer

import (
	"fmt"
	"math"
)

// NoHit is the distance returned by primitives the ray misses.
const NoHit = -1.0

// Hit is the result of a ray/primitive test. T <= 0 means no forward hit
// and Normal must then be ignored.
type Hit struct {
	T      float64
	Normal Vec3
}

// Kind tags the closed set of primitive shapes.
type Kind int

const (
	KindPlane Kind = iota
	KindSphere
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Primitive is one of Plane, Sphere or Box, selected by Kind. Only the
// fields of that kind are read.
type Primitive struct {
	Kind Kind

	// Plane: unnormalized normal-encoding point; the plane is
	// dot(x, n) + 1 = 0 with n = P.Norm().
	P Vec3

	// Sphere.
	Center Vec3
	Radius float64
	// TrueNormal makes the sphere report normalize(hit - center) instead
	// of the hit point itself.
	TrueNormal bool

	// Box: half extents of a box centered at the origin.
	Size Vec3
}

func Plane(p Vec3) Primitive { return Primitive{Kind: KindPlane, P: p} }

func Sphere(center Vec3, radius float64) Primitive {
	return Primitive{Kind: KindSphere, Center: center, Radius: radius}
}

func Box(size Vec3) Primitive { return Primitive{Kind: KindBox, Size: size} }

// Intersect tests r against the primitive.
func (p Primitive) Intersect(r Ray) Hit {
	switch p.Kind {
	case KindPlane:
		return intersectPlane(r, p.P)
	case KindSphere:
		return intersectSphere(r, p.Center, p.Radius, p.TrueNormal)
	case KindBox:
		return intersectBox(r, p.Size)
	default:
		return Hit{T: NoHit}
	}
}

// intersectPlane does not filter: a ray parallel to the plane gets an
// infinite or NaN t, which the nearest hit selection rejects.
func intersectPlane(r Ray, p Vec3) Hit {
	n := p.Norm()
	a := -(r.Origin.Dot(n) + 1)
	b := r.Dir.Dot(n)
	return Hit{T: a / b, Normal: n}
}

// intersectSphere returns only the near root. Unless trueNormal is set the
// normal is the hit point itself, which is what gives the sphere its look.
func intersectSphere(r Ray, center Vec3, radius float64, trueNormal bool) Hit {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	h := b*b - c
	if h < 0 {
		return Hit{T: NoHit, Normal: center}
	}
	t := -b - math.Sqrt(h)
	hit := r.At(t)
	if trueNormal {
		return Hit{T: t, Normal: hit.Sub(center).Norm()}
	}
	return Hit{T: t, Normal: hit}
}

// intersectBox is the slab test for a box of half extents size centered at
// the origin.
func intersectBox(r Ray, size Vec3) Hit {
	m := Vec3{1, 1, 1}.Div(r.Dir)
	n := m.Mul(r.Origin)
	k := m.Abs().Mul(size)
	t1 := n.Neg().Sub(k)
	t2 := n.Neg().Add(k)
	// Div saturates to 0 on an axis the ray runs parallel to, which would
	// pin that slab to [0, 0]. Such an axis constrains nothing while the
	// origin is inside the slab and excludes everything otherwise.
	for i, d := range r.Dir {
		if d != 0 {
			continue
		}
		if math.Abs(r.Origin[i]) > size[i] {
			return Hit{T: NoHit}
		}
		t1[i], t2[i] = math.Inf(-1), math.Inf(1)
	}
	tNear := math.Max(math.Max(t1[0], t1[1]), t1[2])
	tFar := math.Min(math.Min(t2[0], t2[1]), t2[2])
	if tNear > tFar || tFar < 0 {
		return Hit{T: NoHit}
	}
	// The axis that produced tNear is the one whose t1 beats both cyclic
	// neighbours; on a tie no axis wins the double step.
	yzx := Vec3{t1[1], t1[2], t1[0]}
	zxy := Vec3{t1[2], t1[0], t1[1]}
	normal := r.Dir.Sign().Neg().Mul(Step(yzx, t1)).Mul(Step(zxy, t1))
	return Hit{T: tNear, Normal: normal}
}
