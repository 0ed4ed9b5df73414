package blend

import (
	"github.com/cwbudde/algo-pose/internal/estmath"
	"github.com/cwbudde/algo-pose/pose"
)

// normalize divides the accumulated blocks by their weight and renormalizes
// rotations. A copied rest pose is left as is.
func (p *plan) normalize(out []pose.SoaTransform, acc, ratio []pose.SoaFloat4) {
	if p.copyRest {
		return
	}

	if p.partial() {
		for b := range acc {
			for k, a := range acc[b] {
				ratio[b][k] = estmath.Rcp(a)
			}
		}
	} else {
		s := pose.Splat(1 / p.normWeight)
		for i := range ratio {
			ratio[i] = s
		}
	}
	p.kernel.Normalize(out, ratio)
}
