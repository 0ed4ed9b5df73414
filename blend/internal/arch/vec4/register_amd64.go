//go:build amd64 && !purego

package vec4

import (
	"github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// SSE2 is the amd64 baseline, so this entry is selected on every amd64 CPU
// unless generic kernels are forced.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "sse2",
		SIMDLevel:  cpu.SIMDSSE2,
		Priority:   10,
		BlendFirst: BlendFirst,
		BlendNext:  BlendNext,
		Normalize:  Normalize,
		Add:        Add,
		Sub:        Sub,
	})
}
