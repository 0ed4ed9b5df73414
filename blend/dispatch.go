package blend

import (
	"sync"

	archregistry "github.com/cwbudde/algo-pose/blend/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	kernel         *archregistry.OpEntry
	kernelInitOnce sync.Once
)

func selectedKernel() *archregistry.OpEntry {
	kernelInitOnce.Do(initKernel)
	return kernel
}

func initKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("blend: no kernel registered (missing generic fallback?)")
	}

	if entry.BlendFirst == nil || entry.BlendNext == nil || entry.Normalize == nil ||
		entry.Add == nil || entry.Sub == nil {
		panic("blend: selected kernel " + entry.Name + " is missing operations")
	}

	kernel = entry
}

// KernelName returns the name of the kernel implementation Run uses,
// for example "generic", "sse2" or "neon".
func KernelName() string {
	return selectedKernel().Name
}
