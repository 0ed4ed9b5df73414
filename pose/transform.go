package pose

import "math"

// Vec3 is a 3-component vector of float32.
type Vec3 [3]float32

// Quat is a quaternion of float32 stored as x, y, z, w.
type Quat [4]float32

// IdentityQuat is the identity rotation.
var IdentityQuat = Quat{0, 0, 0, 1}

// Transform is the local-space transform of a single joint.
type Transform struct {
	Translation Vec3
	Rotation    Quat
	Scale       Vec3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		Rotation: IdentityQuat,
		Scale:    Vec3{1, 1, 1},
	}
}

// Mul sets q to contain l ⋅ r.
func (q *Quat) Mul(l, r *Quat) {
	x := l[3]*r[0] + l[0]*r[3] + l[1]*r[2] - l[2]*r[1]
	y := l[3]*r[1] + l[1]*r[3] + l[2]*r[0] - l[0]*r[2]
	z := l[3]*r[2] + l[2]*r[3] + l[0]*r[1] - l[1]*r[0]
	w := l[3]*r[3] - l[0]*r[0] - l[1]*r[1] - l[2]*r[2]
	*q = Quat{x, y, z, w}
}

// Conjugate sets q to contain the conjugate of r.
func (q *Quat) Conjugate(r *Quat) {
	*q = Quat{-r[0], -r[1], -r[2], r[3]}
}

// Dot returns q ⋅ r.
func (q *Quat) Dot(r *Quat) float32 {
	return q[0]*r[0] + q[1]*r[1] + q[2]*r[2] + q[3]*r[3]
}

// Len returns the length of q.
func (q *Quat) Len() float32 {
	return float32(math.Sqrt(float64(q.Dot(q))))
}

// Norm sets q to contain r normalized.
// A zero-length r yields the identity.
func (q *Quat) Norm(r *Quat) {
	l := r.Len()
	if l == 0 {
		*q = IdentityQuat
		return
	}
	s := 1 / l
	*q = Quat{r[0] * s, r[1] * s, r[2] * s, r[3] * s}
}

// FromAxisAngle sets q to contain a rotation of angle radians about axis.
// axis must be normalized.
func (q *Quat) FromAxisAngle(axis *Vec3, angle float32) {
	s, c := math.Sincos(float64(angle) / 2)
	fs := float32(s)
	*q = Quat{axis[0] * fs, axis[1] * fs, axis[2] * fs, float32(c)}
}
