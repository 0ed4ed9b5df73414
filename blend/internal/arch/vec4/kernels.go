// Package vec4 implements the blending kernels with whole-block operations:
// every component of a block is processed as one 4-lane vector, which is the
// shape 128-bit SSE2 and NEON registers take.
package vec4

import "github.com/cwbudde/algo-pose/pose"

func checkLen(out, in, w int) {
	if out != in || out != w {
		panic("blend: slice length mismatch")
	}
}

// BlendFirst assigns out = in * w.
func BlendFirst(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		s, wi := &in[i], w[i]
		out[i] = pose.SoaTransform{
			Translation: scale3(s.Translation, wi),
			Rotation:    scaleQ(s.Rotation, wi),
			Scale:       scale3(s.Scale, wi),
		}
	}
}

// BlendNext accumulates out += in * w, negating in rotations that lie in the
// opposite hemisphere of the running sum.
func BlendNext(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		o, s, wi := &out[i], &in[i], w[i]
		o.Translation = madd3(s.Translation, wi, o.Translation)
		sign := signOf(dotQ(&o.Rotation, &s.Rotation))
		o.Rotation = maddQ(xorQ(s.Rotation, sign), wi, o.Rotation)
		o.Scale = madd3(s.Scale, wi, o.Scale)
	}
}

// Normalize multiplies translation and scale by ratio and renormalizes
// rotations.
func Normalize(out []pose.SoaTransform, ratio []pose.SoaFloat4) {
	if len(out) != len(ratio) {
		panic("blend: slice length mismatch")
	}
	for i := range out {
		o, r := &out[i], ratio[i]
		o.Translation = scale3(o.Translation, r)
		o.Rotation = normalizeQ(o.Rotation)
		o.Scale = scale3(o.Scale, r)
	}
}

// Add composes the additive layer in onto out.
func Add(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		o, s, wi := &out[i], &in[i], w[i]
		o.Translation = madd3(s.Translation, wi, o.Translation)
		o.Rotation = mulQ(deltaQ(&s.Rotation, wi), o.Rotation)
		o.Scale = mul3(o.Scale, interpScale(&s.Scale, wi))
	}
}

// Sub removes the additive layer in from out. w holds absolute weights.
func Sub(out, in []pose.SoaTransform, w []pose.SoaFloat4) {
	checkLen(len(out), len(in), len(w))
	for i := range out {
		o, s, wi := &out[i], &in[i], w[i]
		o.Translation = sub3(o.Translation, scale3(s.Translation, wi))
		o.Rotation = mulQ(conjugateQ(deltaQ(&s.Rotation, wi)), o.Rotation)
		o.Scale = mul3(o.Scale, rcp3(interpScale(&s.Scale, wi)))
	}
}

// deltaQ interpolates between identity and q (taken with a positive w) at w,
// then normalizes.
func deltaQ(q *pose.SoaQuaternion, w pose.SoaFloat4) pose.SoaQuaternion {
	one := splat(1)
	r := xorQ(*q, signOf(q.W))
	return normalizeQ(pose.SoaQuaternion{
		X: mul(r.X, w),
		Y: mul(r.Y, w),
		Z: mul(r.Z, w),
		W: madd(sub(r.W, one), w, one),
	})
}

// interpScale returns (1-w) + s*w.
func interpScale(s *pose.SoaFloat3, w pose.SoaFloat4) pose.SoaFloat3 {
	one := sub(splat(1), w)
	return add3(scale3(*s, w), pose.SoaFloat3{X: one, Y: one, Z: one})
}
