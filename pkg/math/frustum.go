package math

import "math"

// Plane is an infinite plane in Hessian normal form:
// Normal.Dot(p) + D == 0 for points p on the plane.
type Plane struct {
	Normal Vec3
	D      float32
}

// DistanceTo returns the signed distance from p to the plane.
// Positive values lie on the side the normal points to.
func (pl Plane) DistanceTo(p Vec3) float32 {
	return pl.Normal.Dot(p) + pl.D
}

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is a camera view volume bounded by six inward-facing planes.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromMatrix extracts the six clip planes from a combined
// projection*view matrix. The planes are normalized so the distance
// tests return world units.
func FrustumFromMatrix(m Mat4) Frustum {
	// Row i of the column-major matrix is (m[i], m[4+i], m[8+i], m[12+i]).
	row := func(i int) Vec4 {
		return Vec4{m[i], m[4+i], m[8+i], m[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	add := func(a, b Vec4) Plane { return planeFromVec4(a[0]+b[0], a[1]+b[1], a[2]+b[2], a[3]+b[3]) }
	sub := func(a, b Vec4) Plane { return planeFromVec4(a[0]-b[0], a[1]-b[1], a[2]-b[2], a[3]-b[3]) }

	var f Frustum
	f.Planes[PlaneLeft] = add(r3, r0)
	f.Planes[PlaneRight] = sub(r3, r0)
	f.Planes[PlaneBottom] = add(r3, r1)
	f.Planes[PlaneTop] = sub(r3, r1)
	f.Planes[PlaneNear] = add(r3, r2)
	f.Planes[PlaneFar] = sub(r3, r2)
	return f
}

func planeFromVec4(a, b, c, d float32) Plane {
	l := float32(math.Sqrt(float64(a*a + b*b + c*c)))
	if l == 0 {
		return Plane{Normal: Vec3{Y: 1}}
	}
	return Plane{
		Normal: Vec3{a / l, b / l, c / l},
		D:      d / l,
	}
}

// ContainsPoint reports whether p lies inside or on the frustum.
func (f *Frustum) ContainsPoint(p Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceTo(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere overlaps the frustum.
func (f *Frustum) IntersectsSphere(center Vec3, radius float32) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceTo(center) < -radius {
			return false
		}
	}
	return true
}
