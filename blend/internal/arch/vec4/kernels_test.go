package vec4

import (
	"testing"

	"github.com/cwbudde/algo-pose/blend/internal/arch/generic"
	"github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	"github.com/cwbudde/algo-pose/internal/testutil"
	"github.com/cwbudde/algo-pose/pose"
)

const (
	blocks = 9
	tol    = 1e-5
)

func inputs(seed int64) ([]pose.SoaTransform, []pose.SoaTransform, []pose.SoaFloat4) {
	joints := blocks * pose.Lanes
	out := testutil.DeterministicPose(seed, joints)
	in := testutil.DeterministicPose(seed+1, joints)
	w := make([]pose.SoaFloat4, blocks)
	for i := range w {
		for l := range w[i] {
			w[i][l] = float32((i*pose.Lanes+l)%7) / 6
		}
	}
	return out, in, w
}

func requireBlocksNearlyEqual(t *testing.T, got, want []pose.SoaTransform) {
	t.Helper()
	d, err := testutil.MaxAbsDiff(got, want, len(got)*pose.Lanes)
	if err != nil {
		t.Fatal(err)
	}
	if d > tol {
		t.Fatalf("max component difference %v > tol %v", d, tol)
	}
}

func TestKernelsMatchGeneric(t *testing.T) {
	tests := []struct {
		name      string
		got, want registry.BlendFn
	}{
		{"BlendFirst", BlendFirst, generic.BlendFirst},
		{"BlendNext", BlendNext, generic.BlendNext},
		{"Add", Add, generic.Add},
		{"Sub", Sub, generic.Sub},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, in, w := inputs(1)
			ref := append([]pose.SoaTransform(nil), out...)

			tt.got(out, in, w)
			tt.want(ref, in, w)

			requireBlocksNearlyEqual(t, out, ref)
		})
	}
}

func TestNormalizeMatchesGeneric(t *testing.T) {
	out, in, w := inputs(3)
	BlendNext(out, in, w)
	ref := append([]pose.SoaTransform(nil), out...)

	// Zero one rotation lane to cover the identity fallback.
	out[2].Rotation.X[1], out[2].Rotation.Y[1], out[2].Rotation.Z[1], out[2].Rotation.W[1] = 0, 0, 0, 0
	ref[2].Rotation = out[2].Rotation

	ratio := make([]pose.SoaFloat4, blocks)
	for i := range ratio {
		ratio[i] = pose.SoaFloat4{1, 0.5, 2, 0.25}
	}

	Normalize(out, ratio)
	generic.Normalize(ref, ratio)

	requireBlocksNearlyEqual(t, out, ref)
	if got := out[2].Rotation.W[1]; got != 1 {
		t.Fatalf("expected identity for zero rotation, got w=%v", got)
	}
}
