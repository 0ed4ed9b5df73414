package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-pose/pose"
)

// components returns the ten scalar components of t.
func components(t pose.Transform) [10]float32 {
	return [10]float32{
		t.Translation[0], t.Translation[1], t.Translation[2],
		t.Rotation[0], t.Rotation[1], t.Rotation[2], t.Rotation[3],
		t.Scale[0], t.Scale[1], t.Scale[2],
	}
}

// RequireFinite fails t if any component of the first joints joints of p
// is NaN or Inf.
func RequireFinite(t *testing.T, p pose.Pose, joints int) {
	t.Helper()
	for i := range joints {
		for k, v := range components(p.Joint(i)) {
			if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
				t.Fatalf("joint %d component %d: non-finite value %v", i, k, v)
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute component difference between the
// first joints joints of a and b. Rotations are compared as stored, sign
// included. Returns an error if either pose holds fewer joints.
func MaxAbsDiff(a, b pose.Pose, joints int) (float32, error) {
	if a.Joints() < joints || b.Joints() < joints {
		return 0, fmt.Errorf("%w: %d and %d joints, need %d", pose.ErrPoseTooShort, a.Joints(), b.Joints(), joints)
	}
	var maxDiff float32
	for i := range joints {
		ca, cb := components(a.Joint(i)), components(b.Joint(i))
		for k := range ca {
			maxDiff = max(maxDiff, abs32(ca[k]-cb[k]))
		}
	}
	return maxDiff, nil
}
