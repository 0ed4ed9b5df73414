package testutil

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-pose/pose"
)

// DeterministicTransform draws a transform from rng: translation in
// [-1, 1], a unit rotation of up to ±π about a random axis, scale in
// [0.5, 1.5].
func DeterministicTransform(rng *rand.Rand) pose.Transform {
	axis := pose.Vec3{
		float32(rng.Float64()*2 - 1),
		float32(rng.Float64()*2 - 1),
		float32(rng.Float64()*2 - 1),
	}
	l := float32(math.Sqrt(float64(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])))
	if l < 1e-3 {
		axis = pose.Vec3{0, 1, 0}
	} else {
		axis = pose.Vec3{axis[0] / l, axis[1] / l, axis[2] / l}
	}

	var t pose.Transform
	t.Rotation.FromAxisAngle(&axis, float32((rng.Float64()*2-1)*math.Pi))
	for i := range t.Translation {
		t.Translation[i] = float32(rng.Float64()*2 - 1)
		t.Scale[i] = float32(0.5 + rng.Float64())
	}
	return t
}

// DeterministicPose generates a pose with a fixed seed for reproducibility.
// Padding lanes hold the identity.
func DeterministicPose(seed int64, joints int) pose.Pose {
	rng := rand.New(rand.NewSource(seed))
	p := pose.New(joints)
	for i := range joints {
		p.SetJoint(i, DeterministicTransform(rng))
	}
	return p
}

// Sentinel returns a pose whose every lane holds a recognizable, invalid
// pattern, so tests can prove that a buffer was not written.
func Sentinel(joints int) pose.Pose {
	p := make(pose.Pose, pose.NumBlocks(joints))
	p.Fill(pose.Transform{
		Translation: pose.Vec3{-1234.5, 6789.25, -42},
		Rotation:    pose.Quat{7, -7, 7, -7},
		Scale:       pose.Vec3{-3, -3, -3},
	})
	return p
}

// QuatNearlyEquivalent reports whether a and b encode the same rotation
// within eps, ignoring the quaternion sign.
func QuatNearlyEquivalent(a, b pose.Quat, eps float32) bool {
	same, opposite := true, true
	for i := range a {
		if abs32(a[i]-b[i]) > eps {
			same = false
		}
		if abs32(a[i]+b[i]) > eps {
			opposite = false
		}
	}
	return same || opposite
}

// RequireTransformNearlyEqual fails t if got and want differ by more than
// eps in any translation or scale component, or if their rotations are not
// equivalent within eps.
func RequireTransformNearlyEqual(t *testing.T, joint int, got, want pose.Transform, eps float32) {
	t.Helper()
	for i := range got.Translation {
		if d := abs32(got.Translation[i] - want.Translation[i]); d > eps {
			t.Fatalf("joint %d: translation got %v, want %v (diff %v > eps %v)", joint, got.Translation, want.Translation, d, eps)
		}
		if d := abs32(got.Scale[i] - want.Scale[i]); d > eps {
			t.Fatalf("joint %d: scale got %v, want %v (diff %v > eps %v)", joint, got.Scale, want.Scale, d, eps)
		}
	}
	if !QuatNearlyEquivalent(got.Rotation, want.Rotation, eps) {
		t.Fatalf("joint %d: rotation got %v, want %v (eps %v)", joint, got.Rotation, want.Rotation, eps)
	}
}

// RequirePoseNearlyEqual applies RequireTransformNearlyEqual to the first
// joints joints of got and want.
func RequirePoseNearlyEqual(t *testing.T, got, want pose.Pose, joints int, eps float32) {
	t.Helper()
	for i := range joints {
		RequireTransformNearlyEqual(t, i, got.Joint(i), want.Joint(i), eps)
	}
}

// RequireUnitRotations fails t if any of the first joints rotations of p
// is not unit length within eps.
func RequireUnitRotations(t *testing.T, p pose.Pose, joints int, eps float32) {
	t.Helper()
	for i := range joints {
		q := p.Joint(i).Rotation
		if l := q.Len(); abs32(l-1) > eps {
			t.Fatalf("joint %d: rotation %v has length %v, want 1 (eps %v)", i, q, l, eps)
		}
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
