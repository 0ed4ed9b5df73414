//go:build arm64 && !purego

package vec4

import (
	"github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   15,
		BlendFirst: BlendFirst,
		BlendNext:  BlendNext,
		Normalize:  Normalize,
		Add:        Add,
		Sub:        Sub,
	})
}
