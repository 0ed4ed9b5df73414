//go:build arm64 && !purego

package blend

import (
	"sync"
	"testing"

	archregistry "github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	"github.com/cwbudde/algo-pose/internal/testutil"
	"github.com/cwbudde/algo-pose/pose"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func resetKernelDispatchForTest() {
	kernel = nil
	kernelInitOnce = sync.Once{}
}

func TestKernelDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "arm64",
			},
			wantImpl: "generic",
		},
		{
			name: "neon",
			features: cpu.Features{
				HasNEON:      true,
				Architecture: "arm64",
			},
			wantImpl: "neon",
		},
	}

	joints := pose.Lanes*chunkBlocks + 3

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()
			defer resetKernelDispatchForTest()
			resetKernelDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}
			if got := KernelName(); got != tt.wantImpl {
				t.Fatalf("expected KernelName %q, got %q", tt.wantImpl, got)
			}

			job := mixedJob(joints, pose.New(joints))
			runJob(t, job)

			want := referenceBlend(job, joints)
			for i := range joints {
				testutil.RequireTransformNearlyEqual(t, i, job.Output.Joint(i), want[i], eps)
			}
		})
	}
}
