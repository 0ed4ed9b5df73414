package blend

import "github.com/cwbudde/algo-pose/pose"

// blendRestPose fills the weight left below the threshold with the rest pose.
func (p *plan) blendRestPose(out []pose.SoaTransform, acc, w []pose.SoaFloat4, lo, hi int) {
	rest := p.job.RestPose[lo:hi]

	if !p.partial() {
		switch {
		case p.copyRest:
			copy(out, rest)
		case p.restWeight > 0:
			s := pose.Splat(p.restWeight)
			for i := range w {
				w[i] = s
			}
			p.kernel.BlendNext(out, rest, w)
		}
		return
	}

	thr := p.job.Threshold
	for b := range acc {
		for k, a := range acc[b] {
			w[b][k] = max(thr-a, 0)
			acc[b][k] = max(thr, a)
		}
	}
	p.kernel.BlendNext(out, rest, w)
}
