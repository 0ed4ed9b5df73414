package generic

import (
	"math"

	"github.com/cwbudde/algo-pose/internal/estmath"
	"github.com/cwbudde/algo-pose/pose"
)

const signMask = 0x80000000

func checkLen(out, in, w int) {
	if out != in || out != w {
		panic("blend: slice length mismatch")
	}
}

// flip xors the sign bit of v with sign.
func flip(v float32, sign uint32) float32 {
	return math.Float32frombits(math.Float32bits(v) ^ sign)
}

// BlendFirst assigns out = in * w, lane by lane.
// This is the pure Go fallback implementation.
func BlendFirst(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		o, s := &out[i], &in[i]
		for l := range pose.Lanes {
			wl := w[i][l]
			o.Translation.X[l] = s.Translation.X[l] * wl
			o.Translation.Y[l] = s.Translation.Y[l] * wl
			o.Translation.Z[l] = s.Translation.Z[l] * wl
			o.Rotation.X[l] = s.Rotation.X[l] * wl
			o.Rotation.Y[l] = s.Rotation.Y[l] * wl
			o.Rotation.Z[l] = s.Rotation.Z[l] * wl
			o.Rotation.W[l] = s.Rotation.W[l] * wl
			o.Scale.X[l] = s.Scale.X[l] * wl
			o.Scale.Y[l] = s.Scale.Y[l] * wl
			o.Scale.Z[l] = s.Scale.Z[l] * wl
		}
	}
}

// BlendNext accumulates out += in * w, negating in rotations that lie in the
// opposite hemisphere of the running sum.
// This is the pure Go fallback implementation.
func BlendNext(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		o, s := &out[i], &in[i]
		for l := range pose.Lanes {
			wl := w[i][l]
			o.Translation.X[l] += s.Translation.X[l] * wl
			o.Translation.Y[l] += s.Translation.Y[l] * wl
			o.Translation.Z[l] += s.Translation.Z[l] * wl

			dot := o.Rotation.X[l]*s.Rotation.X[l] +
				o.Rotation.Y[l]*s.Rotation.Y[l] +
				o.Rotation.Z[l]*s.Rotation.Z[l] +
				o.Rotation.W[l]*s.Rotation.W[l]
			sign := math.Float32bits(dot) & signMask
			o.Rotation.X[l] += flip(s.Rotation.X[l], sign) * wl
			o.Rotation.Y[l] += flip(s.Rotation.Y[l], sign) * wl
			o.Rotation.Z[l] += flip(s.Rotation.Z[l], sign) * wl
			o.Rotation.W[l] += flip(s.Rotation.W[l], sign) * wl

			o.Scale.X[l] += s.Scale.X[l] * wl
			o.Scale.Y[l] += s.Scale.Y[l] * wl
			o.Scale.Z[l] += s.Scale.Z[l] * wl
		}
	}
}

// Normalize multiplies translation and scale by ratio and renormalizes
// rotations. Zero-length rotations become the identity.
// This is the pure Go fallback implementation.
func Normalize(out []pose.SoaTransform, ratio []pose.SoaFloat4) {
	if len(out) != len(ratio) {
		panic("blend: slice length mismatch")
	}
	for i := range out {
		o := &out[i]
		for l := range pose.Lanes {
			r := ratio[i][l]
			o.Translation.X[l] *= r
			o.Translation.Y[l] *= r
			o.Translation.Z[l] *= r
			o.Scale.X[l] *= r
			o.Scale.Y[l] *= r
			o.Scale.Z[l] *= r

			x, y, z, w := normalizeQuat(o.Rotation.X[l], o.Rotation.Y[l], o.Rotation.Z[l], o.Rotation.W[l])
			o.Rotation.X[l], o.Rotation.Y[l], o.Rotation.Z[l], o.Rotation.W[l] = x, y, z, w
		}
	}
}

// Add composes the additive layer in onto out.
// This is the pure Go fallback implementation.
func Add(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		o, s := &out[i], &in[i]
		for l := range pose.Lanes {
			wl := w[i][l]
			o.Translation.X[l] += s.Translation.X[l] * wl
			o.Translation.Y[l] += s.Translation.Y[l] * wl
			o.Translation.Z[l] += s.Translation.Z[l] * wl

			x, y, z, qw := deltaQuat(s, l, wl)
			mulLane(&o.Rotation, l, x, y, z, qw)

			one := 1 - wl
			o.Scale.X[l] *= one + s.Scale.X[l]*wl
			o.Scale.Y[l] *= one + s.Scale.Y[l]*wl
			o.Scale.Z[l] *= one + s.Scale.Z[l]*wl
		}
	}
}

// Sub removes the additive layer in from out. w holds absolute weights.
// This is the pure Go fallback implementation.
func Sub(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		o, s := &out[i], &in[i]
		for l := range pose.Lanes {
			wl := w[i][l]
			o.Translation.X[l] -= s.Translation.X[l] * wl
			o.Translation.Y[l] -= s.Translation.Y[l] * wl
			o.Translation.Z[l] -= s.Translation.Z[l] * wl

			x, y, z, qw := deltaQuat(s, l, wl)
			mulLane(&o.Rotation, l, -x, -y, -z, qw)

			one := 1 - wl
			o.Scale.X[l] *= estmath.Rcp(one + s.Scale.X[l]*wl)
			o.Scale.Y[l] *= estmath.Rcp(one + s.Scale.Y[l]*wl)
			o.Scale.Z[l] *= estmath.Rcp(one + s.Scale.Z[l]*wl)
		}
	}
}

// deltaQuat returns the normalized interpolation at wl between identity and
// the rotation in lane l of s, taken in the hemisphere of positive w.
func deltaQuat(s *pose.SoaTransform, l int, wl float32) (x, y, z, w float32) {
	sign := math.Float32bits(s.Rotation.W[l]) & signMask
	x = flip(s.Rotation.X[l], sign) * wl
	y = flip(s.Rotation.Y[l], sign) * wl
	z = flip(s.Rotation.Z[l], sign) * wl
	w = (flip(s.Rotation.W[l], sign)-1)*wl + 1
	return normalizeQuat(x, y, z, w)
}

// mulLane pre-multiplies lane l of q by (x, y, z, w).
func mulLane(q *pose.SoaQuaternion, l int, x, y, z, w float32) {
	rx, ry, rz, rw := q.X[l], q.Y[l], q.Z[l], q.W[l]
	q.X[l] = w*rx + x*rw + y*rz - z*ry
	q.Y[l] = w*ry + y*rw + z*rx - x*rz
	q.Z[l] = w*rz + z*rw + x*ry - y*rx
	q.W[l] = w*rw - x*rx - y*ry - z*rz
}

func normalizeQuat(x, y, z, w float32) (float32, float32, float32, float32) {
	n2 := x*x + y*y + z*z + w*w
	if n2 == 0 {
		return 0, 0, 0, 1
	}
	inv := estmath.Rsqrt(n2)
	return x * inv, y * inv, z * inv, w * inv
}
