// Package generic implements the blending kernels in pure Go, one joint lane
// at a time. It is the reference every other kernel is tested against.
package generic

import (
	"github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the generic (pure Go) kernels with the blend registry.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		BlendFirst: BlendFirst,
		BlendNext:  BlendNext,
		Normalize:  Normalize,
		Add:        Add,
		Sub:        Sub,
	})
}
