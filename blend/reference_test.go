package blend

import (
	"math"

	"github.com/cwbudde/algo-pose/pose"
)

// referenceBlend computes the blend of j one joint at a time on unpacked
// transforms.
func referenceBlend(j *Job, joints int) []pose.Transform {
	passes, partialPasses := 0, 0
	var accumulated float32
	for _, l := range j.Layers {
		if !(l.Weight > 0) {
			continue
		}
		passes++
		if len(l.JointWeights) > 0 {
			partialPasses++
		}
		accumulated += l.Weight
	}

	res := make([]pose.Transform, joints)
	for i := range joints {
		res[i] = referenceJoint(j, i, passes, partialPasses, accumulated)
	}
	return res
}

func referenceJoint(j *Job, i, passes, partialPasses int, accumulated float32) pose.Transform {
	var out pose.Transform
	var acc float32
	first := true
	for _, l := range j.Layers {
		if !(l.Weight > 0) {
			continue
		}
		w := referenceWeight(&l, l.Weight, i)
		in := l.Pose.Joint(i)
		if first {
			out = scaleTransform(in, w)
			acc = w
			first = false
			continue
		}
		accumulateTransform(&out, in, w)
		acc += w
	}

	rest := j.RestPose.Joint(i)
	var ratio float32
	switch {
	case partialPasses > 0:
		bp := max(j.Threshold-acc, 0)
		accumulateTransform(&out, rest, bp)
		ratio = 1 / max(j.Threshold, acc)
	case passes == 0 && j.Threshold > accumulated:
		out = rest
	case j.Threshold-accumulated > 0:
		accumulateTransform(&out, rest, j.Threshold-accumulated)
		ratio = 1 / j.Threshold
	default:
		ratio = 1 / accumulated
	}
	if ratio != 0 {
		for k := range out.Translation {
			out.Translation[k] *= ratio
			out.Scale[k] *= ratio
		}
		out.Rotation.Norm(&out.Rotation)
	}

	for _, l := range j.AdditiveLayers {
		switch {
		case l.Weight > 0:
			addTransform(&out, l.Pose.Joint(i), referenceWeight(&l, l.Weight, i), false)
		case l.Weight < 0:
			addTransform(&out, l.Pose.Joint(i), referenceWeight(&l, -l.Weight, i), true)
		}
	}
	return out
}

func referenceWeight(l *Layer, weight float32, i int) float32 {
	if len(l.JointWeights) == 0 {
		return weight
	}
	return max(l.JointWeights.Weight(i), 0) * weight
}

func scaleTransform(t pose.Transform, w float32) pose.Transform {
	for k := range t.Translation {
		t.Translation[k] *= w
		t.Scale[k] *= w
	}
	for k := range t.Rotation {
		t.Rotation[k] *= w
	}
	return t
}

func accumulateTransform(out *pose.Transform, in pose.Transform, w float32) {
	if math.Signbit(float64(out.Rotation.Dot(&in.Rotation))) {
		for k := range in.Rotation {
			in.Rotation[k] = -in.Rotation[k]
		}
	}
	for k := range out.Translation {
		out.Translation[k] += in.Translation[k] * w
		out.Scale[k] += in.Scale[k] * w
	}
	for k := range out.Rotation {
		out.Rotation[k] += in.Rotation[k] * w
	}
}

func addTransform(out *pose.Transform, in pose.Transform, w float32, subtract bool) {
	q := in.Rotation
	if math.Signbit(float64(q[3])) {
		for k := range q {
			q[k] = -q[k]
		}
	}
	delta := pose.Quat{q[0] * w, q[1] * w, q[2] * w, (q[3]-1)*w + 1}
	delta.Norm(&delta)
	if subtract {
		delta.Conjugate(&delta)
	}
	rot := out.Rotation
	out.Rotation.Mul(&delta, &rot)

	for k := range out.Translation {
		s := (1 - w) + in.Scale[k]*w
		if subtract {
			out.Translation[k] -= in.Translation[k] * w
			out.Scale[k] /= s
		} else {
			out.Translation[k] += in.Translation[k] * w
			out.Scale[k] *= s
		}
	}
}
