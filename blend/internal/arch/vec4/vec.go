package vec4

import (
	"math"

	"github.com/cwbudde/algo-pose/internal/estmath"
	"github.com/cwbudde/algo-pose/pose"
)

type f4 = pose.SoaFloat4

// mask4 holds one sign mask per lane.
type mask4 [pose.Lanes]uint32

const signMask = 0x80000000

func splat(v float32) f4 { return f4{v, v, v, v} }

func add(a, b f4) f4 { return f4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]} }

func sub(a, b f4) f4 { return f4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]} }

func mul(a, b f4) f4 { return f4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]} }

func neg(a f4) f4 { return f4{-a[0], -a[1], -a[2], -a[3]} }

// madd returns a*b + c.
func madd(a, b, c f4) f4 {
	return f4{a[0]*b[0] + c[0], a[1]*b[1] + c[1], a[2]*b[2] + c[2], a[3]*b[3] + c[3]}
}

func signOf(v f4) mask4 {
	return mask4{
		math.Float32bits(v[0]) & signMask,
		math.Float32bits(v[1]) & signMask,
		math.Float32bits(v[2]) & signMask,
		math.Float32bits(v[3]) & signMask,
	}
}

func xor(v f4, m mask4) f4 {
	return f4{
		math.Float32frombits(math.Float32bits(v[0]) ^ m[0]),
		math.Float32frombits(math.Float32bits(v[1]) ^ m[1]),
		math.Float32frombits(math.Float32bits(v[2]) ^ m[2]),
		math.Float32frombits(math.Float32bits(v[3]) ^ m[3]),
	}
}

func rcpEst(v f4) f4 {
	return f4{estmath.Rcp(v[0]), estmath.Rcp(v[1]), estmath.Rcp(v[2]), estmath.Rcp(v[3])}
}

func add3(a, b pose.SoaFloat3) pose.SoaFloat3 {
	return pose.SoaFloat3{X: add(a.X, b.X), Y: add(a.Y, b.Y), Z: add(a.Z, b.Z)}
}

func sub3(a, b pose.SoaFloat3) pose.SoaFloat3 {
	return pose.SoaFloat3{X: sub(a.X, b.X), Y: sub(a.Y, b.Y), Z: sub(a.Z, b.Z)}
}

func mul3(a, b pose.SoaFloat3) pose.SoaFloat3 {
	return pose.SoaFloat3{X: mul(a.X, b.X), Y: mul(a.Y, b.Y), Z: mul(a.Z, b.Z)}
}

func scale3(a pose.SoaFloat3, s f4) pose.SoaFloat3 {
	return pose.SoaFloat3{X: mul(a.X, s), Y: mul(a.Y, s), Z: mul(a.Z, s)}
}

// madd3 returns a*s + c.
func madd3(a pose.SoaFloat3, s f4, c pose.SoaFloat3) pose.SoaFloat3 {
	return pose.SoaFloat3{X: madd(a.X, s, c.X), Y: madd(a.Y, s, c.Y), Z: madd(a.Z, s, c.Z)}
}

func rcp3(a pose.SoaFloat3) pose.SoaFloat3 {
	return pose.SoaFloat3{X: rcpEst(a.X), Y: rcpEst(a.Y), Z: rcpEst(a.Z)}
}

func dotQ(a, b *pose.SoaQuaternion) f4 {
	return add(add(mul(a.X, b.X), mul(a.Y, b.Y)), add(mul(a.Z, b.Z), mul(a.W, b.W)))
}

func xorQ(q pose.SoaQuaternion, m mask4) pose.SoaQuaternion {
	return pose.SoaQuaternion{X: xor(q.X, m), Y: xor(q.Y, m), Z: xor(q.Z, m), W: xor(q.W, m)}
}

func scaleQ(q pose.SoaQuaternion, s f4) pose.SoaQuaternion {
	return pose.SoaQuaternion{X: mul(q.X, s), Y: mul(q.Y, s), Z: mul(q.Z, s), W: mul(q.W, s)}
}

// maddQ returns q*s + c.
func maddQ(q pose.SoaQuaternion, s f4, c pose.SoaQuaternion) pose.SoaQuaternion {
	return pose.SoaQuaternion{X: madd(q.X, s, c.X), Y: madd(q.Y, s, c.Y), Z: madd(q.Z, s, c.Z), W: madd(q.W, s, c.W)}
}

func conjugateQ(q pose.SoaQuaternion) pose.SoaQuaternion {
	return pose.SoaQuaternion{X: neg(q.X), Y: neg(q.Y), Z: neg(q.Z), W: q.W}
}

// mulQ returns a ⋅ b.
func mulQ(a, b pose.SoaQuaternion) pose.SoaQuaternion {
	return pose.SoaQuaternion{
		X: sub(add(add(mul(a.W, b.X), mul(a.X, b.W)), mul(a.Y, b.Z)), mul(a.Z, b.Y)),
		Y: sub(add(add(mul(a.W, b.Y), mul(a.Y, b.W)), mul(a.Z, b.X)), mul(a.X, b.Z)),
		Z: sub(add(add(mul(a.W, b.Z), mul(a.Z, b.W)), mul(a.X, b.Y)), mul(a.Y, b.X)),
		W: sub(sub(sub(mul(a.W, b.W), mul(a.X, b.X)), mul(a.Y, b.Y)), mul(a.Z, b.Z)),
	}
}

// normalizeQ returns q normalized; zero-length lanes become the identity.
func normalizeQ(q pose.SoaQuaternion) pose.SoaQuaternion {
	n2 := dotQ(&q, &q)
	var inv f4
	for l := range inv {
		if n2[l] != 0 {
			inv[l] = estmath.Rsqrt(n2[l])
		}
	}
	r := scaleQ(q, inv)
	for l := range inv {
		if n2[l] == 0 {
			r.W[l] = 1
		}
	}
	return r
}
